package issue

import "errors"

// Issue workflow domain errors
var (
	ErrNothingToClear = errors.New("no discrepancy to clear for this user and date")
	ErrAlreadyCleared = errors.New("discrepancy already cleared for this user and date")
)
