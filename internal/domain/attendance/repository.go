package attendance

import (
	"context"
)

// Repository defines data access methods for attendance records.
type Repository interface {
	// Create creates a new attendance record.
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByUserAndDate retrieves the record for a user on a date.
	// Returns (nil, nil) when no record exists.
	GetByUserAndDate(ctx context.Context, userID string, date string) (*Record, error)

	// GetOpen retrieves the open (not clocked out) record for a user on a
	// date. Returns (nil, nil) when none is open.
	GetOpen(ctx context.Context, userID string, date string) (*Record, error)

	// ListOpenThrough retrieves all open records whose date is on or before
	// the given date. Used by the auto-close sweep.
	ListOpenThrough(ctx context.Context, date string) ([]Record, error)

	// CloseIfOpen atomically sets clock-out, work minutes and device on a
	// record only if it is still open. Returns false when the record was
	// already closed; this conditional update is the sole double-close
	// guard for concurrent sweeps.
	CloseIfOpen(ctx context.Context, id string, clockOut int, workMinutes int, device string) (bool, error)

	// Update overwrites mutable fields of an existing record.
	// Last write wins against a racing auto-close.
	Update(ctx context.Context, rec Record) error

	// ListByDateRange retrieves all records with date in [from, to].
	ListByDateRange(ctx context.Context, from, to string) ([]Record, error)
}
