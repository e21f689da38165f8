package random

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/KornaPhp/random/pkg/log"
)

const (
	ASCIILower   = "abcdefghijklmnopqrstuvwxyz"
	ASCIIUpper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	ASCIINumbers = "0123456789"
	ASCIISymbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Class is a set of character classes used to compose the alphabet of a generated string
type Class uint8

const (
	Lower Class = 1 << iota
	Upper
	Numbers
	Symbols

	NoClasses  Class = 0
	AllClasses       = Lower | Upper | Numbers | Symbols
)

// classOrder is the fixed order sets are composed in. Required characters are drawn in this order
var classOrder = []Class{Lower, Upper, Numbers, Symbols}

var classNames = map[Class]string{
	Lower:   "lower",
	Upper:   "upper",
	Numbers: "numbers",
	Symbols: "symbols",
}

// Has reports whether every class in o is enabled in c
func (c Class) Has(o Class) bool {
	return c&o == o
}

func (c Class) String() string {
	if c == NoClasses {
		return "none"
	}
	names := make([]string, 0, len(classOrder))
	for _, v := range classOrder {
		if c.Has(v) {
			names = append(names, classNames[v])
		}
	}
	return strings.Join(names, "|")
}

// ParseClass converts class names such as "lower" or "numbers" into a Class. "all" enables every class.
func ParseClass(names ...string) (Class, error) {
	var ret Class
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		switch name {
		case "lower", "lowercase":
			ret |= Lower
		case "upper", "uppercase":
			ret |= Upper
		case "numbers", "number", "digits":
			ret |= Numbers
		case "symbols", "symbol":
			ret |= Symbols
		case "all":
			ret |= AllClasses
		case "":
		default:
			return NoClasses, invalidArgument("unknown character class %q", name)
		}
	}
	return ret, nil
}

// splitChars splits every argument into characters and keeps those accepted by keep.
// Duplicates are intentionally kept, they weight the draw.
func splitChars(class Class, keep func(rune) bool, chars ...string) []rune {
	ret := make([]rune, 0)
	dropped := 0
	for _, v := range chars {
		for _, r := range v {
			if keep(r) {
				ret = append(ret, r)
			} else {
				dropped++
			}
		}
	}
	if dropped > 0 {
		log.Trace().Str("class", class.String()).Int("dropped", dropped).Int("kept", len(ret)).Msg("filtered character set")
	}
	return ret
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func keepAll(rune) bool {
	return true
}

// The filters below are deliberately asymmetric. Lower, Upper and Numbers drop characters outside of
// their class, which can leave a set empty. Symbols accepts anything.

// UseLower replaces the lowercase set. Characters that are not lowercase are dropped.
func (g *Generator) UseLower(chars ...string) *Generator {
	g.lower = splitChars(Lower, unicode.IsLower, chars...)
	return g
}

// UseUpper replaces the uppercase set. Characters that are not uppercase are dropped.
func (g *Generator) UseUpper(chars ...string) *Generator {
	g.upper = splitChars(Upper, unicode.IsUpper, chars...)
	return g
}

// UseNumbers replaces the number set. Only the digits 0-9 are kept.
func (g *Generator) UseNumbers(chars ...string) *Generator {
	g.numbers = splitChars(Numbers, isDigit, chars...)
	return g
}

// UseSymbols replaces the symbol set verbatim, nothing is filtered.
func (g *Generator) UseSymbols(chars ...string) *Generator {
	g.symbols = splitChars(Symbols, keepAll, chars...)
	return g
}

func (g *Generator) LowerSet() string {
	return string(g.lower)
}

func (g *Generator) UpperSet() string {
	return string(g.upper)
}

func (g *Generator) NumberSet() string {
	return string(g.numbers)
}

func (g *Generator) SymbolSet() string {
	return string(g.symbols)
}

// charsets returns the enabled non-empty sets in class order. An enabled but empty set is
// treated the same as a disabled one.
func (g *Generator) charsets(classes Class) [][]rune {
	ret := make([][]rune, 0, len(classOrder))
	for _, c := range classOrder {
		if !classes.Has(c) {
			continue
		}
		set := g.set(c)
		if len(set) == 0 {
			continue
		}
		ret = append(ret, set)
	}
	return ret
}

func (g *Generator) set(c Class) []rune {
	switch c {
	case Lower:
		return g.lower
	case Upper:
		return g.upper
	case Numbers:
		return g.numbers
	case Symbols:
		return g.symbols
	}
	panic(fmt.Sprintf("random: unknown class %d", c))
}
