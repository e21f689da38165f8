/*
The errors package provides a field level error type and utilities used when validating the options of the
CLI commands and the parameters of HTTP requests.

Validation collects every bad field into a multierror.Error rather than returning the first one, so the
caller can report all of them at once.

Usage

	import errors2 "github.com/KornaPhp/random/pkg/errors"

	...

	if err := opts.Validate(); err != nil {
		errors2.PrintError(err, 0)
		return err
	}

*/
package errors
