package random

import (
	"math"
)

// Entropy estimates the entropy in bits of a string of length characters generated from classes.
// Duplicated characters are weighted by how often they appear across the enabled sets. The
// estimate ignores the small bias requireAll introduces.
func (g *Generator) Entropy(length int, classes Class) float64 {
	sets := g.charsets(classes)
	if length <= 0 || len(sets) == 0 {
		return 0
	}

	counts := make(map[rune]int)
	total := 0
	for _, set := range sets {
		for _, r := range set {
			counts[r]++
			total++
		}
	}

	perChar := 0.0
	for _, n := range counts {
		p := float64(n) / float64(total)
		perChar -= p * math.Log2(p)
	}
	return perChar * float64(length)
}
