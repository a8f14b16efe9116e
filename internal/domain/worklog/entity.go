package worklog

import (
	"time"
)

// Segment is one contiguous interval of task work a user logged against a
// job/process. End is nil while the segment is still in progress.
type Segment struct {
	ID          string
	UserID      string
	JobID       string
	ProcessID   string
	Start       time.Time
	End         *time.Time
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Finished reports whether the segment has an end timestamp.
func (s Segment) Finished() bool {
	return s.End != nil
}
