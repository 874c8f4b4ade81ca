package cct

import "errors"

var (
	ErrTemperatureTooHigh = errors.New("input value is too high temperature")
	ErrTemperatureTooLow  = errors.New("input value is too low temperature")
	ErrNonMonotonicTable  = errors.New("sector table is not monotonic")
)
