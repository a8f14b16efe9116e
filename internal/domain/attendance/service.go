package attendance

import (
	"context"
)

// Service defines the clock-in/clock-out business logic.
type Service interface {
	// ClockIn opens today's attendance session. Rejects a second open
	// session for the same user and day.
	ClockIn(ctx context.Context, req ClockInRequest) (RecordResponse, error)

	// ClockOut closes today's open session and computes its net work
	// minutes against the currently active break rules.
	ClockOut(ctx context.Context, req ClockOutRequest) (RecordResponse, error)

	// GetDay retrieves the record for a user on a date.
	GetDay(ctx context.Context, userID string, date string) (RecordResponse, error)

	// UpdateDay applies a supervisor correction to an existing record and
	// recomputes its net work minutes. Rejects a clock-out earlier than
	// clock-in; against a racing auto-close the last write wins.
	UpdateDay(ctx context.Context, req UpdateRecordRequest) (RecordResponse, error)
}
