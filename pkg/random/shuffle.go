package random

// Shuffle returns a random permutation of values. Every permutation is equally likely.
//
// Text is shuffled by character. A Sequence is reindexed from zero unless preserveKeys is set, in which
// case a Collection keyed by the original indexes is returned in shuffled order. A Collection always
// keeps each key associated with its value.
func (g *Generator) Shuffle(values Values, preserveKeys bool) (Values, error) {
	if values == nil {
		return nil, invalidArgument("values must be Text, a Sequence or a Collection")
	}
	return values.shuffled(g, preserveKeys), nil
}

// Pick returns count distinct elements of a Sequence or Collection, chosen without replacement.
// Text is not accepted, use Single or Text.Chars.
func (g *Generator) Pick(values Values, count int) (Values, error) {
	if count < 1 {
		return nil, invalidArgument("can not pick less than one item")
	}
	if _, ok := values.(Text); ok || values == nil {
		return nil, invalidArgument("values must be a Sequence or a Collection")
	}
	if count > values.Len() {
		return nil, invalidArgument("can not pick %d items from %d elements", count, values.Len())
	}

	return values.shuffled(g, false).head(count), nil
}

// Single picks one element. Text is split into characters first, and a one character string is returned.
func (g *Generator) Single(values Values) (interface{}, error) {
	if t, ok := values.(Text); ok {
		values = t.Chars()
	}
	picked, err := g.Pick(values, 1)
	if err != nil {
		return nil, err
	}
	return picked.first(), nil
}

// PickOne is an alias of Single
func (g *Generator) PickOne(values Values) (interface{}, error) {
	return g.Single(values)
}

// ShuffleSlice returns a shuffled copy of values. A nil Generator uses Default.
func ShuffleSlice[T any](g *Generator, values []T) []T {
	if g == nil {
		g = Default()
	}
	return Sequence[T](values).shuffled(g, false).(Sequence[T])
}

// PickSlice returns count distinct elements of values. A nil Generator uses Default.
func PickSlice[T any](g *Generator, values []T, count int) ([]T, error) {
	if g == nil {
		g = Default()
	}
	picked, err := g.Pick(Sequence[T](values), count)
	if err != nil {
		return nil, err
	}
	return picked.(Sequence[T]), nil
}

// SingleOf returns one element of values. A nil Generator uses Default.
func SingleOf[T any](g *Generator, values []T) (T, error) {
	picked, err := PickSlice(g, values, 1)
	if err != nil {
		var zero T
		return zero, err
	}
	return picked[0], nil
}
