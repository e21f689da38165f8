package random

import (
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when a generation request cannot be satisfied
	// with the enabled character sets, e.g. no sets enabled, or a length too short to include every set.
	ErrInvalidConfiguration = fmt.Errorf("invalid configuration")

	// ErrInvalidArgument is returned when an operation is given a value of the wrong shape,
	// e.g. an unsupported type to shuffle, or a pick count outside of the available elements.
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)

func invalidConfiguration(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidConfiguration}, args...)...)
}

func invalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidArgument}, args...)...)
}
