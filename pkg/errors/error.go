package errors

import (
	"errors"
	"fmt"

	"github.com/KornaPhp/random/pkg/log"
	"github.com/hashicorp/go-multierror"
)

// prefixFromDepth will create the indent prefix for a certain depth
// of string, e.g. 2 will yield "  " * 2 -> "    "
func prefixFromDepth(depth int) string {
	var p []byte
	for i := 0; i < depth; i++ {
		p = append(p, "  "...)
	}
	return string(p)
}

// PrintError will traverse the error and log every FieldError found.
// If a multierror.Error is found, each nested error is printed one level deeper
func PrintError(err error, depth int) {
	var (
		merr *multierror.Error
		ferr *FieldError
	)

	if errors.As(err, &merr) {
		for _, v := range merr.Errors {
			PrintError(v, depth+1)
		}
	} else if errors.As(err, &ferr) {
		ferr.LogError(depth)
	} else {
		log.Error().Err(err).Msg(prefixFromDepth(depth) + "error")
	}
}

// FieldError describes why a single option or request parameter was rejected
type FieldError struct {
	Field string      // Field is the flag or query parameter name, e.g. "length"
	Value interface{} // Value is the rejected value
	Err   error       // Err is the underlying reason, usually wrapping random.ErrInvalidArgument
}

// Field returns a FieldError for field
func Field(field string, value interface{}, err error) *FieldError {
	return &FieldError{Field: field, Value: value, Err: err}
}

func (f *FieldError) Error() string {
	return fmt.Sprintf("invalid %s [%v]: %s", f.Field, f.Value, f.Err.Error())
}

func (f *FieldError) Unwrap() error {
	return f.Err
}

// LogError will log the field, value and reason at error level.
// the depth argument modifies the indentation depth of the pretty printed error
func (f *FieldError) LogError(depth int) {
	log.Error().
		Str("field", f.Field).
		Interface("value", f.Value).
		Err(f.Err).
		Msg(prefixFromDepth(depth) + "invalid option")
}

// Flatten returns every error contained in a multierror tree, or err itself
func Flatten(err error) []error {
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		if err == nil {
			return nil
		}
		return []error{err}
	}
	ret := make([]error, 0, len(merr.Errors))
	for _, v := range merr.Errors {
		ret = append(ret, Flatten(v)...)
	}
	return ret
}
