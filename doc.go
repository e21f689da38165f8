/*
Package random generates secure random numbers, strings and selections.

There are no exports in the root package. The library lives in pkg/random

	import "github.com/KornaPhp/random/pkg/random"

	code, err := random.OTP(6)
	key, err := random.New().UseSymbols("-_").Password(24, true)

CLI tools part of `cmd/` include:
	- random - generators, shuffling and picking from the command line, and `random serve` to expose them over http
*/
package random
