package breakrule

import (
	"time"

	"github.com/prodtrack/timecore-backend-go/internal/pkg/timeutil"
)

// Rule is a named recurring break window. Start and End are minute-of-day
// offsets; a window with End < Start wraps past midnight. Rules are
// soft-disabled via Active rather than deleted.
type Rule struct {
	ID        string
	Name      string
	Start     int
	End       int
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationMinutes returns the window length, wrapping past midnight when
// End < Start.
func (r Rule) DurationMinutes() int {
	return timeutil.Duration(r.Start, r.End)
}
