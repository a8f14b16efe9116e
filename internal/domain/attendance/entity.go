package attendance

import (
	"time"
)

// Device tags recorded on clock events.
const (
	DeviceAuto = "auto"
)

// Record is one attendance session for a user on a calendar date.
// Clock values are minute-of-day offsets in the operating timezone;
// ClockOut is nil while the session is open.
type Record struct {
	ID          string
	UserID      string
	Date        string // "YYYY-MM-DD" in the operating timezone
	ClockIn     int
	ClockOut    *int
	WorkMinutes *int
	Device      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Open reports whether the session has not been clocked out yet.
func (r Record) Open() bool {
	return r.ClockOut == nil
}
