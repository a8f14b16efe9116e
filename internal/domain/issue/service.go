package issue

import (
	"context"

	"github.com/prodtrack/timecore-backend-go/internal/domain/summary"
)

// Service defines the discrepancy detector and the supervised clear
// workflow.
type Service interface {
	// Classify maps a daily summary to a discrepancy classification.
	// Classification ignores clear records; hiding acknowledged days is
	// the caller's concern.
	Classify(s summary.DailySummary) Classification

	// ClearIssue records a supervisor's acknowledgement of a user-day's
	// discrepancy.
	ClearIssue(ctx context.Context, userID string, date string, actorID string) (ClearResponse, error)

	// ListPendingIssues scans all user-days with activity in [from, to]
	// and returns the out-of-tolerance ones not covered by a non-expired
	// clear.
	ListPendingIssues(ctx context.Context, from, to string) ([]PendingIssue, error)

	// PurgeExpiredClears removes clear records older than the retention
	// window. Retention housekeeping, not a correctness requirement.
	PurgeExpiredClears(ctx context.Context) (int64, error)
}
