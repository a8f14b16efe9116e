package response

import (
	"errors"
	"net/http"

	"github.com/prodtrack/timecore-backend-go/internal/domain/attendance"
	"github.com/prodtrack/timecore-backend-go/internal/domain/breakrule"
	"github.com/prodtrack/timecore-backend-go/internal/domain/issue"
	"github.com/prodtrack/timecore-backend-go/internal/domain/worklog"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "No open attendance session")
	case errors.Is(err, attendance.ErrClockOutBeforeIn):
		BadRequest(w, "Clock-out cannot be earlier than clock-in", nil)

	// Work segment domain errors
	case errors.Is(err, worklog.ErrSegmentNotFound):
		NotFound(w, "Work segment not found")
	case errors.Is(err, worklog.ErrEndBeforeStart):
		BadRequest(w, "Segment end cannot be earlier than its start", nil)

	// Break rule domain errors
	case errors.Is(err, breakrule.ErrRuleNotFound):
		NotFound(w, "Break rule not found")
	case errors.Is(err, breakrule.ErrInvalidDuration):
		BadRequest(w, "Break rule duration must be positive", nil)

	// Issue workflow domain errors
	case errors.Is(err, issue.ErrNothingToClear):
		Conflict(w, "No discrepancy to clear for this user and date")
	case errors.Is(err, issue.ErrAlreadyCleared):
		Conflict(w, "Discrepancy already cleared for this user and date")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
