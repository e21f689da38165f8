package random_test

import (
	"math"
	"math/rand/v2"
	"regexp"
	"testing"

	"github.com/KornaPhp/random/pkg/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	reLower   = regexp.MustCompile(`[a-z]`)
	reUpper   = regexp.MustCompile(`[A-Z]`)
	reNumbers = regexp.MustCompile(`[0-9]`)
	reSymbols = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

func seeded(seed uint64) *random.Generator {
	return random.New(random.WithEngine(rand.New(rand.NewPCG(seed, seed+1))))
}

func TestGenerator_Number(t *testing.T) {
	g := random.New()
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		n, err := g.Number(1, 3)
		require.Nil(t, err)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 3)
		seen[n] = true
	}
	assert.Len(t, seen, 3, "every value in an inclusive range should be drawn")
}

func TestGenerator_NumberBounds(t *testing.T) {
	tests := []struct {
		name    string
		min     int
		max     int
		wantErr bool
	}{
		{"equal bounds", 7, 7, false},
		{"negative range", -10, -5, false},
		{"full range", math.MinInt, math.MaxInt, false},
		{"inverted", 5, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := random.New().Number(tt.min, tt.max)
			if tt.wantErr {
				assert.ErrorIs(t, err, random.ErrInvalidArgument)
				return
			}
			assert.Nil(t, err)
			assert.GreaterOrEqual(t, n, tt.min)
			assert.LessOrEqual(t, n, tt.max)
		})
	}
}

func TestGenerator_StringLength(t *testing.T) {
	g := random.New()
	for length := 0; length < 40; length++ {
		s, err := g.String(length, random.AllClasses, false)
		require.Nil(t, err)
		assert.Len(t, []rune(s), length)
	}
}

func TestGenerator_StringClasses(t *testing.T) {
	tests := []struct {
		name    string
		classes random.Class
		only    *regexp.Regexp
	}{
		{"lower", random.Lower, regexp.MustCompile(`^[a-z]+$`)},
		{"upper", random.Upper, regexp.MustCompile(`^[A-Z]+$`)},
		{"numbers", random.Numbers, regexp.MustCompile(`^[0-9]+$`)},
		{"symbols", random.Symbols, regexp.MustCompile(`^[^a-zA-Z0-9]+$`)},
		{"no lower", random.Upper | random.Numbers | random.Symbols, regexp.MustCompile(`^[^a-z]+$`)},
		{"no symbols", random.Lower | random.Upper | random.Numbers, regexp.MustCompile(`^[a-zA-Z0-9]+$`)},
	}
	g := random.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				s, err := g.String(32, tt.classes, false)
				require.Nil(t, err)
				assert.Regexp(t, tt.only, s)
			}
		})
	}
}

func TestGenerator_StringSeesEveryClass(t *testing.T) {
	g := random.New()
	var lower, upper, numbers, symbols bool
	for i := 0; i < 10; i++ {
		s, err := g.String(random.DefaultStringLength, random.AllClasses, false)
		require.Nil(t, err)
		lower = lower || reLower.MatchString(s)
		upper = upper || reUpper.MatchString(s)
		numbers = numbers || reNumbers.MatchString(s)
		symbols = symbols || reSymbols.MatchString(s)
	}
	assert.True(t, lower && upper && numbers && symbols, "not all character classes were seen (low chance of a false positive)")
}

func TestGenerator_StringNoClasses(t *testing.T) {
	_, err := random.New().String(32, random.NoClasses, false)
	assert.ErrorIs(t, err, random.ErrInvalidConfiguration)

	_, err = random.New().String(32, random.NoClasses, true)
	assert.ErrorIs(t, err, random.ErrInvalidConfiguration)
}

func TestGenerator_StringNegativeLength(t *testing.T) {
	_, err := random.New().String(-1, random.AllClasses, false)
	assert.ErrorIs(t, err, random.ErrInvalidConfiguration)
}

func TestGenerator_StringRequireAll(t *testing.T) {
	g := random.New()
	for i := 0; i < 100; i++ {
		s, err := g.String(32, random.AllClasses, true)
		require.Nil(t, err)
		assert.Regexp(t, reLower, s)
		assert.Regexp(t, reUpper, s)
		assert.Regexp(t, reNumbers, s)
		assert.Regexp(t, reSymbols, s)
	}

	// exactly as long as the number of sets
	for i := 0; i < 100; i++ {
		s, err := g.String(4, random.AllClasses, true)
		require.Nil(t, err)
		assert.Len(t, s, 4)
		assert.Regexp(t, reLower, s)
		assert.Regexp(t, reUpper, s)
		assert.Regexp(t, reNumbers, s)
		assert.Regexp(t, reSymbols, s)
	}
}

func TestGenerator_StringRequireAllTooShort(t *testing.T) {
	_, err := random.New().String(2, random.Lower|random.Upper|random.Symbols, true)
	assert.ErrorIs(t, err, random.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "not enough")
}

func TestGenerator_StringEmptySetIsDisabled(t *testing.T) {
	// digits only leave the lowercase set empty, so it no longer counts towards requireAll
	g := random.New().UseLower("0123")
	s, err := g.String(1, random.Lower|random.Numbers, true)
	require.Nil(t, err)
	assert.Regexp(t, `^[0-9]$`, s)

	_, err = g.String(10, random.Lower, false)
	assert.ErrorIs(t, err, random.ErrInvalidConfiguration)
}

func TestGenerator_StringDeterministicEngine(t *testing.T) {
	a, err := seeded(42).Password(64, true)
	require.Nil(t, err)
	b, err := seeded(42).Password(64, true)
	require.Nil(t, err)
	assert.Equal(t, a, b)

	c, err := seeded(43).Password(64, true)
	require.Nil(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerator_OTP(t *testing.T) {
	g := random.New()
	for i := 0; i < 100; i++ {
		s, err := g.OTP(random.DefaultOTPLength)
		require.Nil(t, err)
		assert.Regexp(t, `^[0-9]{6}$`, s)

		s, err = g.Passcode(8)
		require.Nil(t, err)
		assert.Regexp(t, `^[0-9]{8}$`, s)
	}
}

func TestGenerator_Letters(t *testing.T) {
	g := random.New()
	for i := 0; i < 100; i++ {
		s, err := g.Letters(random.DefaultLettersLength)
		require.Nil(t, err)
		assert.Regexp(t, `^[a-zA-Z]{32}$`, s)
	}
}

func TestGenerator_Token(t *testing.T) {
	g := random.New()
	for _, length := range []int{3, 4, 10, random.DefaultTokenLength} {
		for i := 0; i < 100; i++ {
			s, err := g.Token(length)
			require.Nil(t, err)
			assert.Len(t, s, length)
			assert.Regexp(t, `^[a-zA-Z0-9]+$`, s)
			assert.Regexp(t, reLower, s)
			assert.Regexp(t, reUpper, s)
			assert.Regexp(t, reNumbers, s)
		}
	}

	_, err := g.Token(2)
	assert.ErrorIs(t, err, random.ErrInvalidConfiguration)
}

func TestGenerator_Password(t *testing.T) {
	g := random.New()
	s, err := g.Password(random.DefaultPasswordLength, false)
	require.Nil(t, err)
	assert.Len(t, s, 16)

	for i := 0; i < 100; i++ {
		s, err := g.Password(8, true)
		require.Nil(t, err)
		assert.Regexp(t, reLower, s)
		assert.Regexp(t, reUpper, s)
		assert.Regexp(t, reNumbers, s)
		assert.Regexp(t, reSymbols, s)
	}
}

func TestGenerator_Dashed(t *testing.T) {
	tests := []struct {
		name      string
		length    int
		delimiter string
		chunk     int
		mixedCase bool
		want      *regexp.Regexp
	}{
		{"mixed case", 25, "-", 5, true, regexp.MustCompile(`^[a-zA-Z0-9]{5}-[a-zA-Z0-9]{5}-[a-zA-Z0-9]{5}-[a-zA-Z0-9]{5}-[a-zA-Z0-9]{5}$`)},
		{"upper case", 25, "-", 5, false, regexp.MustCompile(`^[A-Z0-9]{5}-[A-Z0-9]{5}-[A-Z0-9]{5}-[A-Z0-9]{5}-[A-Z0-9]{5}$`)},
		{"partial chunk", 12, "-", 5, true, regexp.MustCompile(`^[a-zA-Z0-9]{5}-[a-zA-Z0-9]{5}-[a-zA-Z0-9]{2}$`)},
		{"long delimiter", 8, "::", 4, false, regexp.MustCompile(`^[A-Z0-9]{4}::[A-Z0-9]{4}$`)},
		{"single chunk", 5, "-", 5, true, regexp.MustCompile(`^[a-zA-Z0-9]{5}$`)},
	}
	g := random.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				s, err := g.Dashed(tt.length, tt.delimiter, tt.chunk, tt.mixedCase)
				require.Nil(t, err)
				assert.Regexp(t, tt.want, s)
			}
		})
	}
}

func TestGenerator_DashedInvalid(t *testing.T) {
	g := random.New()
	_, err := g.Dashed(25, "-", 0, true)
	assert.ErrorIs(t, err, random.ErrInvalidArgument)

	_, err = g.Dashed(25, "", 5, true)
	assert.ErrorIs(t, err, random.ErrInvalidArgument)

	_, err = g.Dashed(2, "-", 5, true)
	assert.ErrorIs(t, err, random.ErrInvalidConfiguration)
}
