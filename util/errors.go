package util

import "errors"

var (
	ErrDegenerateInput = errors.New("degenerate input")
	ErrDegenerateLine  = errors.New("degenerate line, A and B cannot both be zero")
	ErrParallelLines   = errors.New("lines are parallel")
	ErrCoincidentLines = errors.New("lines are coincident")
)
