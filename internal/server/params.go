package server

import (
	"fmt"
	"strconv"
	"strings"

	errors2 "github.com/KornaPhp/random/pkg/errors"
	"github.com/KornaPhp/random/pkg/random"
	"github.com/hashicorp/go-multierror"
	"github.com/valyala/fasthttp"
)

var errMissing = fmt.Errorf("%w: required", random.ErrInvalidArgument)

// params reads typed query arguments, collecting every malformed argument instead of stopping
// at the first one
type params struct {
	args *fasthttp.Args
	merr *multierror.Error
}

func newParams(args *fasthttp.Args) *params {
	return &params{args: args}
}

func (p *params) has(name string) bool {
	return p.args.Has(name)
}

func (p *params) fail(name string, value interface{}, err error) {
	p.merr = multierror.Append(p.merr, errors2.Field(name, value, err))
}

func (p *params) int(name string, def int) int {
	if !p.has(name) {
		return def
	}
	raw := string(p.args.Peek(name))
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(name, raw, fmt.Errorf("%w: not an integer", random.ErrInvalidArgument))
		return def
	}
	return v
}

func (p *params) requiredInt(name string) int {
	if !p.has(name) {
		p.fail(name, "", errMissing)
		return 0
	}
	return p.int(name, 0)
}

// bool treats a present argument without a value, e.g. ?lower, as true
func (p *params) bool(name string, def bool) bool {
	if !p.has(name) {
		return def
	}
	raw := string(p.args.Peek(name))
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(name, raw, fmt.Errorf("%w: not a boolean", random.ErrInvalidArgument))
		return def
	}
	return v
}

func (p *params) string(name string, def string) string {
	if !p.has(name) {
		return def
	}
	return string(p.args.Peek(name))
}

// classes returns the classes enabled with ?lower&upper&numbers&symbols. When none are mentioned
// every class is enabled
func (p *params) classes() random.Class {
	names := map[random.Class]string{
		random.Lower:   "lower",
		random.Upper:   "upper",
		random.Numbers: "numbers",
		random.Symbols: "symbols",
	}
	var (
		ret       = random.NoClasses
		mentioned bool
	)
	for c, name := range names {
		if !p.has(name) {
			continue
		}
		mentioned = true
		if p.bool(name, false) {
			ret |= c
		}
	}
	if !mentioned {
		return random.AllClasses
	}
	return ret
}

func (p *params) err() error {
	return p.merr.ErrorOrNil()
}

// bodyItems splits the request body into one item per non blank line
func bodyItems(body []byte) []string {
	var ret []string
	for _, v := range strings.Split(string(body), "\n") {
		if v = strings.TrimSpace(v); v != "" {
			ret = append(ret, v)
		}
	}
	return ret
}
