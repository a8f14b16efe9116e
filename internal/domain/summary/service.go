package summary

import (
	"context"
)

// Service computes daily reconciliation summaries.
type Service interface {
	// ComputeDailySummary derives the summary for a user and date.
	// Side-effect free and idempotent; open segments contribute zero
	// minutes and a missing attendance record counts as zero presence.
	ComputeDailySummary(ctx context.Context, userID string, date string) (DailySummary, error)
}
