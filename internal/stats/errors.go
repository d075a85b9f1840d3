package stats

import "errors"

var (
	// ErrEmptyInput is returned when statistics are requested on no values.
	ErrEmptyInput = errors.New("stats: empty input")
	// ErrDivisionByZero is returned by SkewDistance when the median is zero.
	ErrDivisionByZero = errors.New("stats: division by zero")
	// ErrInvalidProbability is returned for quantile probabilities outside [0, 1].
	ErrInvalidProbability = errors.New("stats: probability outside [0, 1]")
	// ErrUnknownMethod is returned for an unsupported quantile method.
	ErrUnknownMethod = errors.New("stats: unknown quantile method")
	// ErrInvalidFenceCoef is returned for a negative fence coefficient.
	ErrInvalidFenceCoef = errors.New("stats: fence coefficient must not be negative")
)
