/*
Package cmd provides all the commands for the random binary.

Each command lives in its own file named after it, i.e. password.go corresponds to random password.
Generator commands share the flags registered by addGenerateFlags, and the global flags are exposed
as package variables.

The character sets used by every command can be overridden in $HOME/.random.yaml or through the
environment

	lower: abcdef
	symbols: "!@#"

	RANDOM_SYMBOLS='-_' random password -l 24

Usage

	random otp -c 5
	random string -l 12 --upper --numbers --require-all
	random dashed -o text --template 'LICENSE={value}'
	random pick 2 alice bob carol
	random serve --listen :8080
*/
package cmd
