package issue

import (
	"time"
)

// Classification of the gap between reported work and recorded presence
// for a user-day.
type Classification string

const (
	// ClassificationNone means the difference is within tolerance.
	ClassificationNone Classification = "none"
	// ClassificationExcessive means reported work exceeds presence by
	// more than the threshold.
	ClassificationExcessive Classification = "excessive"
	// ClassificationLow means presence exceeds reported work by more
	// than the threshold.
	ClassificationLow Classification = "low"
	// ClassificationIssue is the umbrella state surfaced on the
	// management view for any out-of-tolerance day.
	ClassificationIssue Classification = "issue"
)

// Umbrella folds the specific out-of-tolerance classes into the single
// issue state shown on the management view. Within-tolerance days stay
// none.
func (c Classification) Umbrella() Classification {
	if c == ClassificationNone {
		return ClassificationNone
	}
	return ClassificationIssue
}

// PendingIssue is one out-of-tolerance user-day awaiting supervisor review.
// Status carries the umbrella issue state; Classification the specific
// direction of the mismatch.
type PendingIssue struct {
	UserID            string         `json:"user_id"`
	Date              string         `json:"date"`
	Status            Classification `json:"status"`
	Classification    Classification `json:"classification"`
	DifferenceMinutes int            `json:"difference_minutes"`
}

// ClearResponse is the wire shape of a clear audit record.
type ClearResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`
	ClearedBy string    `json:"cleared_by"`
	ClearedAt time.Time `json:"cleared_at"`
}
