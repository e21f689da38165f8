package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"

	errors2 "github.com/KornaPhp/random/pkg/errors"
	"github.com/KornaPhp/random/pkg/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasttemplate"
)

func TestNewOptions_Defaults(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		length int
	}{
		{"otp", KindOTP, 6},
		{"letters", KindLetters, 32},
		{"token", KindToken, 32},
		{"password", KindPassword, 16},
		{"dashed", KindDashed, 25},
		{"string", KindString, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOptions(tt.kind, Length(0))
			assert.Equal(t, tt.length, o.Length)
			assert.Equal(t, 1, o.Count)
			assert.NotNil(t, o.Generator)
			assert.Nil(t, o.Validate())
		})
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name   string
		opts   *Options
		fields []string
	}{
		{"valid number", NewOptions(KindNumber, Range(1, 10)), nil},
		{"inverted range", NewOptions(KindNumber, Range(10, 1)), []string{"range"}},
		{"unknown kind", NewOptions(Kind("uuid")), []string{"kind"}},
		{"bad count and classes", NewOptions(KindString, Count(0), Classes(random.NoClasses)), []string{"count", "classes"}},
		{"bad dashed", NewOptions(KindDashed, ChunkLength(0), Delimiter("")), []string{"chunk", "delimiter"}},
		{"no items", NewOptions(KindShuffle), []string{"items"}},
		{"pick too many", NewOptions(KindPick, Items([]string{"a"}), PickCount(2)), []string{"pick"}},
		{"pick zero", NewOptions(KindPick, Items([]string{"a"}), PickCount(0)), []string{"pick"}},
		{"valid pick", NewOptions(KindPick, Items([]string{"a", "b"}), PickCount(2)), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.fields == nil {
				assert.Nil(t, err)
				return
			}

			errs := errors2.Flatten(err)
			got := make([]string, 0, len(errs))
			for _, v := range errs {
				var ferr *errors2.FieldError
				require.ErrorAs(t, v, &ferr)
				got = append(got, ferr.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		opts  *Options
		check func(t *testing.T, r Result)
	}{
		{"otp", NewOptions(KindOTP, Count(5)), func(t *testing.T, r Result) {
			assert.Regexp(t, `^[0-9]{6}$`, r.Value)
			assert.InDelta(t, 6*math.Log2(10), r.Entropy, 1e-9)
		}},
		{"token", NewOptions(KindToken, Length(12)), func(t *testing.T, r Result) {
			assert.Regexp(t, `^[a-zA-Z0-9]{12}$`, r.Value)
		}},
		{"letters", NewOptions(KindLetters), func(t *testing.T, r Result) {
			assert.Regexp(t, `^[a-zA-Z]{32}$`, r.Value)
		}},
		{"password", NewOptions(KindPassword, RequireAll(true)), func(t *testing.T, r Result) {
			assert.Len(t, r.Value, 16)
		}},
		{"string", NewOptions(KindString, Length(8), Classes(random.Upper)), func(t *testing.T, r Result) {
			assert.Regexp(t, `^[A-Z]{8}$`, r.Value)
		}},
		{"dashed", NewOptions(KindDashed, MixedCase(false)), func(t *testing.T, r Result) {
			assert.Regexp(t, `^[A-Z0-9]{5}(-[A-Z0-9]{5}){4}$`, r.Value)
		}},
		{"number", NewOptions(KindNumber, Range(1, 4)), func(t *testing.T, r Result) {
			assert.Contains(t, []string{"1", "2", "3", "4"}, r.Value)
			assert.InDelta(t, 2, r.Entropy, 1e-9)
		}},
		{"shuffle", NewOptions(KindShuffle, Items([]string{"a", "b", "c"})), func(t *testing.T, r Result) {
			assert.ElementsMatch(t, []string{"a", "b", "c"}, r.Values)
		}},
		{"pick", NewOptions(KindPick, Items([]string{"a", "b", "c"}), PickCount(2)), func(t *testing.T, r Result) {
			assert.Len(t, r.Values, 2)
			assert.Subset(t, []string{"a", "b", "c"}, r.Values)
		}},
		{"single", NewOptions(KindSingle, Items([]string{"a", "b"})), func(t *testing.T, r Result) {
			assert.Contains(t, []string{"a", "b"}, r.Value)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Generate(context.Background(), tt.opts)
			require.Nil(t, err)
			require.Len(t, res, tt.opts.Count)
			for i, r := range res {
				assert.Equal(t, i, r.Index)
				assert.Equal(t, tt.opts.Kind, r.Kind)
				assert.False(t, r.ID.IsNil())
				tt.check(t, r)
			}
		})
	}
}

func TestGenerate_Error(t *testing.T) {
	_, err := Generate(context.Background(), NewOptions(KindToken, Length(2)))
	assert.ErrorIs(t, err, random.ErrInvalidConfiguration)
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Generate(ctx, NewOptions(KindOTP, Count(10)))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res)
}

func TestResult_Render(t *testing.T) {
	tmpl, err := fasttemplate.NewTemplate("KEY_{index}={value} {other}", "{", "}")
	require.Nil(t, err)

	r := Result{Index: 3, Value: "abc"}
	assert.Equal(t, "KEY_3=abc {other}", r.Render(tmpl))

	r = Result{Values: []string{"x", "y"}}
	assert.Equal(t, "KEY_0=x y {other}", r.Render(tmpl))
}

func TestRun_Plain(t *testing.T) {
	var buf bytes.Buffer
	opts := NewOptions(KindOTP, Count(3), Output(Plain), Writer(&buf), Template("CODE={value}"))
	require.Nil(t, Run(context.Background(), opts))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	for _, v := range lines {
		assert.Regexp(t, `^CODE=[0-9]{6}$`, v)
	}
}

func TestRun_JSON(t *testing.T) {
	var buf bytes.Buffer
	opts := NewOptions(KindPick, Items([]string{"a", "b", "c"}), PickCount(2), Count(2), Output(JSON), Writer(&buf))
	require.Nil(t, Run(context.Background(), opts))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for i, v := range lines {
		var got struct {
			ID     string   `json:"id"`
			Kind   string   `json:"kind"`
			Index  int      `json:"index"`
			Values []string `json:"values"`
		}
		require.Nil(t, json.Unmarshal([]byte(v), &got))
		assert.Equal(t, "pick", got.Kind)
		assert.Equal(t, i, got.Index)
		assert.Len(t, got.Values, 2)
		assert.NotEmpty(t, got.ID)
	}
}

func TestRun_Pretty(t *testing.T) {
	var buf bytes.Buffer
	opts := NewOptions(KindToken, Count(2), Writer(&buf))
	require.Nil(t, Run(context.Background(), opts))

	out := buf.String()
	assert.Contains(t, out, "VALUE")
	assert.Contains(t, out, "ENTROPY")
	assert.Contains(t, out, "bits")
}

func TestRun_Invalid(t *testing.T) {
	var buf bytes.Buffer
	err := Run(context.Background(), NewOptions(KindDashed, ChunkLength(0), Writer(&buf)))
	assert.ErrorIs(t, err, random.ErrInvalidArgument)
	assert.Empty(t, buf.String())
}

func TestFormatFromString(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"pretty", Pretty, false},
		{"TEXT", Plain, false},
		{"plain", Plain, false},
		{"json", JSON, false},
		{"xml", Unknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := FormatFromString(tt.in)
			if tt.wantErr {
				assert.Equal(t, ErrInvalidFormat, err)
			} else {
				assert.Nil(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidatePositive(t *testing.T) {
	assert.Nil(t, validatePositive(" 12 "))
	assert.NotNil(t, validatePositive("abc"))
	assert.ErrorIs(t, validatePositive("0"), random.ErrInvalidArgument)
}

func TestFormatEntropy(t *testing.T) {
	assert.Equal(t, "-", formatEntropy(0))
	assert.Equal(t, "1,234.5 bits", formatEntropy(1234.5))
}
