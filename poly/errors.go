package poly

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches one of them with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("out of range")
)

var (
	ErrNegativeDegree    = fmt.Errorf("%w: degree cannot be negative", ErrInvalidArgument)
	ErrEmptyCoefficients = fmt.Errorf("%w: empty coefficient slice", ErrInvalidArgument)
	ErrNegativePower     = fmt.Errorf("%w: power cannot be negative", ErrOutOfRange)
)
