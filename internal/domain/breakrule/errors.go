package breakrule

import "errors"

// Break rule domain errors
var (
	ErrRuleNotFound    = errors.New("break rule not found")
	ErrInvalidDuration = errors.New("break rule duration must be positive")
)
