package random

import (
	"strings"
)

const (
	DefaultStringLength   = 32
	DefaultOTPLength      = 6
	DefaultLettersLength  = 32
	DefaultTokenLength    = 32
	DefaultPasswordLength = 16
	DefaultDashedLength   = 25
	DefaultChunkLength    = 5
	DefaultDelimiter      = "-"
)

// Generator produces random values from an Engine and four character sets
type Generator struct {
	engine Engine

	lower   []rune
	upper   []rune
	numbers []rune
	symbols []rune
}

type Option func(g *Generator)

// WithEngine replaces the default secure engine. A nil engine is ignored
func WithEngine(e Engine) Option {
	return func(g *Generator) {
		if e != nil {
			g.engine = e
		}
	}
}

func WithLower(chars ...string) Option {
	return func(g *Generator) {
		g.UseLower(chars...)
	}
}

func WithUpper(chars ...string) Option {
	return func(g *Generator) {
		g.UseUpper(chars...)
	}
}

func WithNumbers(chars ...string) Option {
	return func(g *Generator) {
		g.UseNumbers(chars...)
	}
}

func WithSymbols(chars ...string) Option {
	return func(g *Generator) {
		g.UseSymbols(chars...)
	}
}

// New returns a Generator using the default ASCII character sets and a crypto/rand backed engine
func New(opts ...Option) *Generator {
	g := &Generator{
		engine:  NewEngine(),
		lower:   []rune(ASCIILower),
		upper:   []rune(ASCIIUpper),
		numbers: []rune(ASCIINumbers),
		symbols: []rune(ASCIISymbols),
	}
	for _, v := range opts {
		v(g)
	}
	return g
}

// Number returns a uniformly distributed integer in [min, max].
func (g *Generator) Number(min, max int) (int, error) {
	if min > max {
		return 0, invalidArgument("min %d is greater than max %d", min, max)
	}
	// the span wraps to 0 when the range covers every int
	span := uint64(max) - uint64(min) + 1
	if span == 0 {
		return int(g.engine.Uint64()), nil
	}
	return min + int(g.engine.Uint64N(span)), nil
}

// index returns a uniform index into a collection of n > 0 elements
func (g *Generator) index(n int) int {
	return int(g.engine.Uint64N(uint64(n)))
}

// String generates a string of length characters drawn from the sets enabled in classes.
// If requireAll is set, at least one character from every enabled non-empty set is included.
//
// An ErrInvalidConfiguration is returned if no non-empty set is enabled, or if requireAll is set
// and length is smaller than the number of enabled sets.
func (g *Generator) String(length int, classes Class, requireAll bool) (string, error) {
	if length < 0 {
		return "", invalidConfiguration("length %d must not be negative", length)
	}

	sets := g.charsets(classes)
	if len(sets) == 0 {
		return "", invalidConfiguration("cannot generate random string with no character sets enabled")
	}
	if requireAll && len(sets) > length {
		return "", invalidConfiguration("length %d not enough to require all %d character sets", length, len(sets))
	}

	ret := make([]rune, 0, length)
	if requireAll {
		for _, set := range sets {
			ret = append(ret, set[g.index(len(set))])
		}
	}

	alphabet := make([]rune, 0)
	for _, set := range sets {
		alphabet = append(alphabet, set...)
	}
	for len(ret) < length {
		ret = append(ret, alphabet[g.index(len(alphabet))])
	}

	// the required characters were written first, so move them somewhere unpredictable
	if requireAll {
		g.engine.Shuffle(len(ret), func(i, j int) {
			ret[i], ret[j] = ret[j], ret[i]
		})
	}
	return string(ret), nil
}

// OTP generates a numeric one time passcode. Leading zeros are kept, hence the string.
func (g *Generator) OTP(length int) (string, error) {
	return g.String(length, Numbers, false)
}

// Passcode is an alias of OTP
func (g *Generator) Passcode(length int) (string, error) {
	return g.OTP(length)
}

// Letters generates a string of lowercase and uppercase letters
func (g *Generator) Letters(length int) (string, error) {
	return g.String(length, Lower|Upper, false)
}

// Token generates an alphanumeric string containing at least one lowercase, uppercase and number character.
// With a sufficient length this is suitable as a token with a near zero chance of collision.
func (g *Generator) Token(length int) (string, error) {
	return g.String(length, Lower|Upper|Numbers, true)
}

// Password generates a string from every character class. Unless requireAll is set, there is no guarantee
// every class will be present.
func (g *Generator) Password(length int, requireAll bool) (string, error) {
	return g.String(length, AllClasses, requireAll)
}

// Dashed generates an alphanumeric string that is easy to read and type, with delimiter inserted
// after every chunkLength characters, e.g. "k3Xa9-PqL2m-...". Lowercase letters are only included
// when mixedCase is set.
func (g *Generator) Dashed(length int, delimiter string, chunkLength int, mixedCase bool) (string, error) {
	if chunkLength < 1 {
		return "", invalidArgument("chunk length %d must be at least 1", chunkLength)
	}
	if delimiter == "" {
		return "", invalidArgument("delimiter must not be empty")
	}

	classes := Upper | Numbers
	if mixedCase {
		classes |= Lower
	}
	s, err := g.String(length, classes, true)
	if err != nil {
		return "", err
	}
	return chunk(s, delimiter, chunkLength), nil
}

// chunk joins size character pieces of s with delimiter. The final piece may be shorter
func chunk(s string, delimiter string, size int) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + len(delimiter)*(len(runes)/size))
	for i := 0; i < len(runes); i += size {
		if i > 0 {
			b.WriteString(delimiter)
		}
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		b.WriteString(string(runes[i:end]))
	}
	return b.String()
}
