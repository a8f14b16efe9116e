package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn = errors.New("an open attendance session already exists for today")
	ErrNotClockedIn     = errors.New("no open attendance session found for today")
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrClockOutBeforeIn = errors.New("clock-out cannot be earlier than clock-in")
)
