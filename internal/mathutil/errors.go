package mathutil

import "errors"

var (
	// ErrDivideByZero is returned when an operation would divide by a zero
	// length or magnitude. The operand is left unchanged.
	ErrDivideByZero = errors.New("mathutil: divide by zero")

	// ErrDegenerate is returned when the input has no well-defined result,
	// such as the angle between a zero vector and anything else, or a vector
	// with infinite or NaN components.
	ErrDegenerate = errors.New("mathutil: degenerate input")
)
