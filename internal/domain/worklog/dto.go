package worklog

import (
	"time"
)

// CreateSegmentRequest starts or records a work segment.
type CreateSegmentRequest struct {
	UserID      string     `json:"user_id"`
	JobID       string     `json:"job_id"`
	ProcessID   string     `json:"process_id"`
	Start       time.Time  `json:"start"`
	End         *time.Time `json:"end"`
	Description *string    `json:"description"`
}

// FinishSegmentRequest closes an in-progress segment.
type FinishSegmentRequest struct {
	ID  string    `json:"id"`
	End time.Time `json:"end"`
}

// UpdateSegmentRequest edits an existing segment.
type UpdateSegmentRequest struct {
	ID          string     `json:"id"`
	JobID       *string    `json:"job_id"`
	ProcessID   *string    `json:"process_id"`
	Start       *time.Time `json:"start"`
	End         *time.Time `json:"end"`
	Description *string    `json:"description"`
}

// SegmentResponse is the wire shape of a work segment.
type SegmentResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	JobID       string     `json:"job_id"`
	ProcessID   string     `json:"process_id"`
	Start       time.Time  `json:"start"`
	End         *time.Time `json:"end"`
	Description *string    `json:"description"`
}
