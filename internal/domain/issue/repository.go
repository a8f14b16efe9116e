package issue

import (
	"context"
	"time"
)

// Repository defines data access methods for issue clear records.
type Repository interface {
	// Create inserts a clear record.
	Create(ctx context.Context, clear Clear) (Clear, error)

	// GetCurrent retrieves the most recent clear for a (user, date) with
	// cleared_at >= notBefore. Returns (nil, nil) when none exists.
	GetCurrent(ctx context.Context, userID string, date string, notBefore time.Time) (*Clear, error)

	// ListCurrentByDateRange retrieves clears for dates in [from, to]
	// with cleared_at >= notBefore.
	ListCurrentByDateRange(ctx context.Context, from, to string, notBefore time.Time) ([]Clear, error)

	// DeleteOlderThan purges clears with cleared_at < cutoff, returning
	// the number of rows removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
