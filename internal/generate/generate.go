package generate

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/KornaPhp/random/pkg/log"
	"github.com/KornaPhp/random/pkg/random"
	"github.com/segmentio/ksuid"
	"github.com/valyala/fasttemplate"
)

// Result is a single generated value
type Result struct {
	ID      ksuid.KSUID
	Kind    Kind
	Index   int
	Value   string
	Values  []string // Values holds the items of shuffle and pick results
	Entropy float64  // Entropy is the estimated entropy in bits, or 0 when not meaningful
}

// Text returns the value, with list results joined by a space
func (r Result) Text() string {
	if r.Values != nil {
		return strings.Join(r.Values, " ")
	}
	return r.Value
}

// Render will render the result into the template. Supported tags are {value}, {id}, {index}, {kind}
// and {entropy}. Unknown tags are left as is
func (r Result) Render(t *fasttemplate.Template) string {
	return t.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		switch tag {
		case "value":
			return w.Write([]byte(r.Text()))
		case "id":
			return w.Write([]byte(r.ID.String()))
		case "index":
			return fmt.Fprintf(w, "%d", r.Index)
		case "kind":
			return w.Write([]byte(r.Kind))
		case "entropy":
			return fmt.Fprintf(w, "%.1f", r.Entropy)
		}
		return fmt.Fprintf(w, "{%s}", tag)
	})
}

// Run validates the options, generates the batch and writes it in the configured output format
func Run(ctx context.Context, opts *Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	res, err := Generate(ctx, opts)
	if err != nil {
		return err
	}
	return Write(opts.Writer, res, opts)
}

// Generate produces opts.Count values. Generation stops early if the context is cancelled
func Generate(ctx context.Context, opts *Options) ([]Result, error) {
	var bar ProgressBar = NullProgressBar{}
	if opts.Progress {
		bar = NewProgress(os.Stderr, int64(opts.Count))
	}

	ret := make([]Result, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		select {
		case <-ctx.Done():
			log.Info().Int("generated", len(ret)).Msg("generation cancelled")
			return ret, ctx.Err()
		default:
		}

		r, err := generateOne(opts)
		if err != nil {
			log.Debug().Err(err).Str("kind", string(opts.Kind)).Msg("failed to generate value")
			return ret, err
		}
		r.ID = ksuid.New()
		r.Index = i
		ret = append(ret, r)
		bar.Incr(1)
	}
	return ret, nil
}

func generateOne(o *Options) (Result, error) {
	var (
		g   = o.Generator
		r   = Result{Kind: o.Kind}
		err error
	)

	switch o.Kind {
	case KindNumber:
		var n int
		n, err = g.Number(o.Min, o.Max)
		r.Value = fmt.Sprintf("%d", n)
		r.Entropy = math.Log2(float64(o.Max) - float64(o.Min) + 1)
	case KindString:
		r.Value, err = g.String(o.Length, o.Classes, o.RequireAll)
		r.Entropy = g.Entropy(o.Length, o.Classes)
	case KindOTP:
		r.Value, err = g.OTP(o.Length)
		r.Entropy = g.Entropy(o.Length, random.Numbers)
	case KindLetters:
		r.Value, err = g.Letters(o.Length)
		r.Entropy = g.Entropy(o.Length, random.Lower|random.Upper)
	case KindToken:
		r.Value, err = g.Token(o.Length)
		r.Entropy = g.Entropy(o.Length, random.Lower|random.Upper|random.Numbers)
	case KindPassword:
		r.Value, err = g.Password(o.Length, o.RequireAll)
		r.Entropy = g.Entropy(o.Length, random.AllClasses)
	case KindDashed:
		classes := random.Upper | random.Numbers
		if o.MixedCase {
			classes |= random.Lower
		}
		r.Value, err = g.Dashed(o.Length, o.Delimiter, o.ChunkLength, o.MixedCase)
		r.Entropy = g.Entropy(o.Length, classes)
	case KindShuffle:
		r.Values = random.ShuffleSlice(g, o.Items)
		r.Entropy = log2Factorial(len(o.Items))
	case KindPick:
		r.Values, err = random.PickSlice(g, o.Items, o.PickCount)
	case KindSingle:
		r.Value, err = random.SingleOf(g, o.Items)
		r.Entropy = math.Log2(float64(len(o.Items)))
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownKind, o.Kind)
	}
	if err != nil {
		return Result{}, err
	}
	return r, nil
}

// log2Factorial is the entropy in bits of a uniform permutation of n items
func log2Factorial(n int) float64 {
	ret := 0.0
	for i := 2; i <= n; i++ {
		ret += math.Log2(float64(i))
	}
	return ret
}
