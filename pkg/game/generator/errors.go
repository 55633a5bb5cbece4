package generator

import "errors"

var (
	// ErrInvalidConfig is returned by constructors when tunables cannot produce a level
	ErrInvalidConfig = errors.New("invalid generator config")

	// ErrConnectivityRepairExhausted is returned when rooms stay unreachable after every repair attempt
	ErrConnectivityRepairExhausted = errors.New("connectivity repair exhausted")
)
