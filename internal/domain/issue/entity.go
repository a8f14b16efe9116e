package issue

import (
	"time"
)

// Clear is an audit record asserting that a supervisor reviewed and
// accepted the discrepancy of a (user, date). It acknowledges, it never
// suppresses recomputation. Never updated; purged after the retention
// window.
type Clear struct {
	ID        string
	UserID    string
	Date      string // "YYYY-MM-DD" in the operating timezone
	ClearedBy string
	ClearedAt time.Time
}
