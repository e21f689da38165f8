/*
Package random generates cryptographically secure random values: integers, strings drawn from
configurable character classes, one time passcodes, tokens, passwords and dashed passphrases. It also
provides unbiased shuffling and picking over strings, slices and ordered keyed collections.

Every value is derived from an Engine. The default engine reads from crypto/rand, so generated values are
suitable for secrets. A deterministic engine can be injected for testing

	g := random.New(random.WithEngine(rand.New(rand.NewPCG(1, 2))))

Usage

	import "github.com/KornaPhp/random/pkg/random"

	...

	token, err := random.Token(random.DefaultTokenLength)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	g := random.New().
		UseLower("abcdef").
		UseNumbers("23456")
	code, err := g.String(12, random.Lower|random.Numbers, true)

Character sets

There are four character classes, Lower, Upper, Numbers and Symbols. Each class owns a table of characters
that can be replaced with the Use* setters. Lower and Upper keep only characters of the matching case,
Numbers keeps only the digits 0-9, and Symbols keeps whatever it is given. Duplicated characters are kept,
which makes them more likely to be drawn.

A Generator is never mutated while generating, so one Generator can be shared between goroutines as long
as the Use* setters are not called concurrently with generation.
*/
package random
