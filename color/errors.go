package color

import "errors"

var (
	ErrDivisionByZero     = errors.New("division by zero")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrOutOfRange         = errors.New("out of range")
)
