package random_test

import (
	"math"
	"testing"

	"github.com/KornaPhp/random/pkg/random"
	"github.com/stretchr/testify/assert"
)

func TestGenerator_Entropy(t *testing.T) {
	tests := []struct {
		name    string
		g       *random.Generator
		length  int
		classes random.Class
		want    float64
	}{
		{"otp", random.New(), 6, random.Numbers, 6 * math.Log2(10)},
		{"token alphabet", random.New(), 32, random.Lower | random.Upper | random.Numbers, 32 * math.Log2(62)},
		{"password alphabet", random.New(), 16, random.AllClasses, 16 * math.Log2(94)},
		{"single character set", random.New().UseLower("aaaa"), 10, random.Lower, 0},
		// 'a' has p=2/3 and 'b' p=1/3
		{"weighted duplicates", random.New().UseLower("aab"), 1, random.Lower, -(2.0/3)*math.Log2(2.0/3) - (1.0/3)*math.Log2(1.0/3)},
		{"no classes", random.New(), 10, random.NoClasses, 0},
		{"zero length", random.New(), 0, random.AllClasses, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.g.Entropy(tt.length, tt.classes), 1e-9)
		})
	}
}
