package worklog

import (
	"context"
	"time"
)

// Repository defines data access methods for work segments.
type Repository interface {
	// Create creates a new work segment.
	Create(ctx context.Context, seg Segment) (Segment, error)

	// GetByID retrieves a segment by ID.
	GetByID(ctx context.Context, id string) (Segment, error)

	// Update overwrites mutable fields of an existing segment.
	Update(ctx context.Context, seg Segment) error

	// Delete removes a segment.
	Delete(ctx context.Context, id string) error

	// ListByUserBetween retrieves a user's segments whose start falls in
	// [from, to). The bounds are the day boundaries of one calendar date
	// in the operating timezone.
	ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]Segment, error)

	// ListBetween retrieves all segments whose start falls in [from, to),
	// across users. Used to enumerate user-days for issue scanning.
	ListBetween(ctx context.Context, from, to time.Time) ([]Segment, error)
}
