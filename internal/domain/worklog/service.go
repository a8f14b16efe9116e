package worklog

import (
	"context"
)

// Service defines business logic for work segments.
type Service interface {
	// CreateSegment records a new segment, validating end >= start when
	// an end is supplied.
	CreateSegment(ctx context.Context, req CreateSegmentRequest) (SegmentResponse, error)

	// FinishSegment sets the end timestamp on an in-progress segment.
	FinishSegment(ctx context.Context, req FinishSegmentRequest) (SegmentResponse, error)

	// UpdateSegment edits an existing segment (admin correction path).
	UpdateSegment(ctx context.Context, req UpdateSegmentRequest) (SegmentResponse, error)

	// DeleteSegment removes a segment.
	DeleteSegment(ctx context.Context, id string) error

	// ListDay retrieves a user's segments for one calendar date.
	ListDay(ctx context.Context, userID string, date string) ([]SegmentResponse, error)
}
