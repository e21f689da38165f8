package random

import (
	"sync"
)

var (
	defaultGenerator *Generator
	defaultOnce      sync.Once
)

// Default returns the process wide Generator used by the package level functions.
// It uses the default character sets and is never reconfigured.
func Default() *Generator {
	defaultOnce.Do(func() {
		defaultGenerator = New()
	})
	return defaultGenerator
}

func Number(min, max int) (int, error) {
	return Default().Number(min, max)
}

func String(length int, classes Class, requireAll bool) (string, error) {
	return Default().String(length, classes, requireAll)
}

func OTP(length int) (string, error) {
	return Default().OTP(length)
}

func Passcode(length int) (string, error) {
	return Default().Passcode(length)
}

func Letters(length int) (string, error) {
	return Default().Letters(length)
}

func Token(length int) (string, error) {
	return Default().Token(length)
}

func Password(length int, requireAll bool) (string, error) {
	return Default().Password(length, requireAll)
}

func Dashed(length int, delimiter string, chunkLength int, mixedCase bool) (string, error) {
	return Default().Dashed(length, delimiter, chunkLength, mixedCase)
}

func Shuffle(values Values, preserveKeys bool) (Values, error) {
	return Default().Shuffle(values, preserveKeys)
}

func Pick(values Values, count int) (Values, error) {
	return Default().Pick(values, count)
}

func Single(values Values) (interface{}, error) {
	return Default().Single(values)
}

func PickOne(values Values) (interface{}, error) {
	return Default().PickOne(values)
}

// UseLower returns a new Generator with a custom lowercase set. The Default generator is not modified.
func UseLower(chars ...string) *Generator {
	return New().UseLower(chars...)
}

// UseUpper returns a new Generator with a custom uppercase set. The Default generator is not modified.
func UseUpper(chars ...string) *Generator {
	return New().UseUpper(chars...)
}

// UseNumbers returns a new Generator with a custom number set. The Default generator is not modified.
func UseNumbers(chars ...string) *Generator {
	return New().UseNumbers(chars...)
}

// UseSymbols returns a new Generator with a custom symbol set. The Default generator is not modified.
func UseSymbols(chars ...string) *Generator {
	return New().UseSymbols(chars...)
}
