package worklog

import "errors"

// Work segment domain errors
var (
	ErrSegmentNotFound = errors.New("work segment not found")
	ErrEndBeforeStart  = errors.New("segment end cannot be earlier than its start")
)
