package generate

import (
	"fmt"
	"io"
	"os"
	"strings"

	errors2 "github.com/KornaPhp/random/pkg/errors"
	"github.com/KornaPhp/random/pkg/random"
	"github.com/hashicorp/go-multierror"
)

// Kind is the type of value to generate
type Kind string

const (
	KindNumber   Kind = "number"
	KindString   Kind = "string"
	KindOTP      Kind = "otp"
	KindLetters  Kind = "letters"
	KindToken    Kind = "token"
	KindPassword Kind = "password"
	KindDashed   Kind = "dashed"
	KindShuffle  Kind = "shuffle"
	KindPick     Kind = "pick"
	KindSingle   Kind = "single"
)

var (
	kinds = map[Kind]bool{
		KindNumber: true, KindString: true, KindOTP: true, KindLetters: true, KindToken: true,
		KindPassword: true, KindDashed: true, KindShuffle: true, KindPick: true, KindSingle: true,
	}

	ErrUnknownKind = fmt.Errorf("unknown kind")
	errTooSmall    = fmt.Errorf("%w: must be at least 1", random.ErrInvalidArgument)
)

// DefaultLength returns the length used when none is provided for k
func DefaultLength(k Kind) int {
	switch k {
	case KindOTP:
		return random.DefaultOTPLength
	case KindLetters:
		return random.DefaultLettersLength
	case KindToken:
		return random.DefaultTokenLength
	case KindPassword:
		return random.DefaultPasswordLength
	case KindDashed:
		return random.DefaultDashedLength
	}
	return random.DefaultStringLength
}

// Options configures a batch of generated values
type Options struct {
	Kind       Kind
	Count      int
	Length     int
	Classes    random.Class
	RequireAll bool

	Min int
	Max int

	Delimiter   string
	ChunkLength int
	MixedCase   bool

	Items     []string
	PickCount int

	Template string
	Output   Format
	Progress bool

	Generator *random.Generator
	Writer    io.Writer
}

type Option func(o *Options)

// NewOptions returns the options for k with every default applied before opts
func NewOptions(k Kind, opts ...Option) *Options {
	o := &Options{
		Kind:        k,
		Count:       1,
		Length:      DefaultLength(k),
		Classes:     random.AllClasses,
		Delimiter:   random.DefaultDelimiter,
		ChunkLength: random.DefaultChunkLength,
		MixedCase:   true,
		PickCount:   1,
		Output:      Pretty,
		Writer:      os.Stdout,
	}
	for _, v := range opts {
		v(o)
	}
	if o.Generator == nil {
		o.Generator = random.New()
	}
	return o
}

func Count(v int) Option {
	return func(o *Options) {
		o.Count = v
	}
}

// Length sets the generated length. A value of 0 or less keeps the default of the kind
func Length(v int) Option {
	return func(o *Options) {
		if v > 0 {
			o.Length = v
		}
	}
}

func Classes(v random.Class) Option {
	return func(o *Options) {
		o.Classes = v
	}
}

func RequireAll(v bool) Option {
	return func(o *Options) {
		o.RequireAll = v
	}
}

func Range(min, max int) Option {
	return func(o *Options) {
		o.Min = min
		o.Max = max
	}
}

func Delimiter(v string) Option {
	return func(o *Options) {
		o.Delimiter = v
	}
}

func ChunkLength(v int) Option {
	return func(o *Options) {
		o.ChunkLength = v
	}
}

func MixedCase(v bool) Option {
	return func(o *Options) {
		o.MixedCase = v
	}
}

func Items(v []string) Option {
	return func(o *Options) {
		o.Items = append(o.Items, v...)
	}
}

func PickCount(v int) Option {
	return func(o *Options) {
		o.PickCount = v
	}
}

func Template(v string) Option {
	return func(o *Options) {
		o.Template = v
	}
}

func Output(v Format) Option {
	return func(o *Options) {
		o.Output = v
	}
}

func Progress(v bool) Option {
	return func(o *Options) {
		o.Progress = v
	}
}

func WithGenerator(g *random.Generator) Option {
	return func(o *Options) {
		if g != nil {
			o.Generator = g
		}
	}
}

func Writer(w io.Writer) Option {
	return func(o *Options) {
		if w != nil {
			o.Writer = w
		}
	}
}

// Validate checks every field and returns all the problems found as a multierror of FieldErrors.
// Problems that depend on the character sets, such as requireAll with a short length, are left to the
// generator.
func (o *Options) Validate() error {
	var merr *multierror.Error
	if !kinds[o.Kind] {
		merr = multierror.Append(merr, errors2.Field("kind", o.Kind, ErrUnknownKind))
	}
	if o.Count < 1 {
		merr = multierror.Append(merr, errors2.Field("count", o.Count, errTooSmall))
	}
	if o.Length < 0 {
		merr = multierror.Append(merr, errors2.Field("length", o.Length, fmt.Errorf("%w: must not be negative", random.ErrInvalidConfiguration)))
	}

	switch o.Kind {
	case KindNumber:
		if o.Min > o.Max {
			merr = multierror.Append(merr, errors2.Field("range", fmt.Sprintf("%d-%d", o.Min, o.Max),
				fmt.Errorf("%w: min is greater than max", random.ErrInvalidArgument)))
		}
	case KindString:
		if o.Classes == random.NoClasses {
			merr = multierror.Append(merr, errors2.Field("classes", o.Classes,
				fmt.Errorf("%w: no character sets enabled", random.ErrInvalidConfiguration)))
		}
	case KindDashed:
		if o.ChunkLength < 1 {
			merr = multierror.Append(merr, errors2.Field("chunk", o.ChunkLength, errTooSmall))
		}
		if o.Delimiter == "" {
			merr = multierror.Append(merr, errors2.Field("delimiter", o.Delimiter,
				fmt.Errorf("%w: must not be empty", random.ErrInvalidArgument)))
		}
	case KindShuffle, KindSingle:
		if len(o.Items) == 0 {
			merr = multierror.Append(merr, errors2.Field("items", strings.Join(o.Items, " "), errTooSmall))
		}
	case KindPick:
		if o.PickCount < 1 {
			merr = multierror.Append(merr, errors2.Field("pick", o.PickCount, errTooSmall))
		} else if o.PickCount > len(o.Items) {
			merr = multierror.Append(merr, errors2.Field("pick", o.PickCount,
				fmt.Errorf("%w: only %d items provided", random.ErrInvalidArgument, len(o.Items))))
		}
	}
	return merr.ErrorOrNil()
}
