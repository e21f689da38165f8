package random

import (
	"fmt"
	"unicode/utf8"
)

// Values is the closed set of inputs accepted by Shuffle, Pick and Single: Text, Sequence and Collection.
type Values interface {
	// Len is the number of elements, or characters for Text
	Len() int

	shuffled(g *Generator, preserveKeys bool) Values
	head(n int) Values
	first() interface{}
}

var (
	_ Values = Text("")
	_ Values = Sequence[int]{}
	_ Values = &Collection[string, int]{}
)

// Text is a string shuffled by character
type Text string

func (t Text) Len() int {
	return utf8.RuneCountInString(string(t))
}

func (t Text) shuffled(g *Generator, _ bool) Values {
	runes := []rune(t)
	g.engine.Shuffle(len(runes), func(i, j int) {
		runes[i], runes[j] = runes[j], runes[i]
	})
	return Text(runes)
}

func (t Text) head(n int) Values {
	return Text([]rune(t)[:n])
}

func (t Text) first() interface{} {
	r, _ := utf8.DecodeRuneInString(string(t))
	return string(r)
}

// Chars splits the text into one character strings
func (t Text) Chars() Sequence[string] {
	ret := make(Sequence[string], 0, len(t))
	for _, r := range t {
		ret = append(ret, string(r))
	}
	return ret
}

// Sequence is an ordered list of values indexed from zero
type Sequence[T any] []T

func (s Sequence[T]) Len() int {
	return len(s)
}

// shuffled returns a reindexed permutation of s. If preserveKeys is set the indexes are shuffled
// instead, and a Collection mapping each original index to its value is returned.
func (s Sequence[T]) shuffled(g *Generator, preserveKeys bool) Values {
	if preserveKeys {
		keys := make([]int, len(s))
		for i := range keys {
			keys[i] = i
		}
		g.engine.Shuffle(len(keys), func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})
		ret := NewCollection[int, T]()
		for _, k := range keys {
			ret.Set(k, s[k])
		}
		return ret
	}

	ret := make(Sequence[T], len(s))
	copy(ret, s)
	g.engine.Shuffle(len(ret), func(i, j int) {
		ret[i], ret[j] = ret[j], ret[i]
	})
	return ret
}

func (s Sequence[T]) head(n int) Values {
	ret := make(Sequence[T], n)
	copy(ret, s[:n])
	return ret
}

func (s Sequence[T]) first() interface{} {
	return s[0]
}

// Collection is an ordered keyed container. Iteration follows insertion order.
type Collection[K comparable, V any] struct {
	keys  []K
	items map[K]V
}

func NewCollection[K comparable, V any]() *Collection[K, V] {
	return &Collection[K, V]{
		items: make(map[K]V),
	}
}

// CollectionOf returns a Collection of values keyed by their index
func CollectionOf[V any](values ...V) *Collection[int, V] {
	ret := NewCollection[int, V]()
	for i, v := range values {
		ret.Set(i, v)
	}
	return ret
}

// Set stores v under k. An existing key keeps its position
func (c *Collection[K, V]) Set(k K, v V) {
	if c.items == nil {
		c.items = make(map[K]V)
	}
	if _, ok := c.items[k]; !ok {
		c.keys = append(c.keys, k)
	}
	c.items[k] = v
}

func (c *Collection[K, V]) Get(k K) (V, bool) {
	if c == nil {
		var zero V
		return zero, false
	}
	v, ok := c.items[k]
	return v, ok
}

// Keys returns a copy of the keys in order
func (c *Collection[K, V]) Keys() []K {
	if c == nil {
		return nil
	}
	return append([]K{}, c.keys...)
}

// Values returns the values in key order
func (c *Collection[K, V]) Values() []V {
	if c == nil {
		return nil
	}
	ret := make([]V, 0, len(c.keys))
	for _, k := range c.keys {
		ret = append(ret, c.items[k])
	}
	return ret
}

func (c *Collection[K, V]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

func (c *Collection[K, V]) String() string {
	return fmt.Sprintf("Collection%v", c.Values())
}

// shuffled returns a new Collection with the key order shuffled. Keys always keep their values,
// a typed Collection cannot be reindexed, so preserveKeys has no effect.
func (c *Collection[K, V]) shuffled(g *Generator, _ bool) Values {
	keys := c.Keys()
	g.engine.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	ret := NewCollection[K, V]()
	for _, k := range keys {
		ret.Set(k, c.items[k])
	}
	return ret
}

func (c *Collection[K, V]) head(n int) Values {
	ret := NewCollection[K, V]()
	for _, k := range c.keys[:n] {
		ret.Set(k, c.items[k])
	}
	return ret
}

func (c *Collection[K, V]) first() interface{} {
	return c.items[c.keys[0]]
}

// ValuesOf adapts a dynamically typed value into Values. Strings become Text, slices become a Sequence.
// Any other type returns ErrInvalidArgument.
func ValuesOf(v interface{}) (Values, error) {
	switch t := v.(type) {
	case Values:
		return t, nil
	case string:
		return Text(t), nil
	case []string:
		return Sequence[string](t), nil
	case []rune:
		return Sequence[rune](t), nil
	case []byte:
		return Sequence[byte](t), nil
	case []int:
		return Sequence[int](t), nil
	case []interface{}:
		return Sequence[interface{}](t), nil
	}
	return nil, invalidArgument("%T must be a string, slice or Collection", v)
}
