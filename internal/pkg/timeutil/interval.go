package timeutil

import (
	"fmt"
	"time"
)

const (
	// MinutesPerDay is the number of minutes in a civil day.
	MinutesPerDay = 24 * 60

	// EndOfDayMinute is the minute-of-day used as the "last instant" of a
	// calendar date when a session is closed automatically (23:59).
	EndOfDayMinute = 23*60 + 59

	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
)

// Interval is a half-open [Start, End) range of minute-of-day offsets
// within a single calendar day. 0 <= Start <= End <= MinutesPerDay.
type Interval struct {
	Start int
	End   int
}

// Minutes returns the length of the interval.
func (iv Interval) Minutes() int {
	return iv.End - iv.Start
}

// ClampToDay normalizes a possibly midnight-crossing interval expressed as
// minute-of-day offsets into one or two same-day intervals. An interval with
// end < start is treated as crossing midnight rather than rejected, so the
// function is total over any input.
func ClampToDay(start, end int) []Interval {
	start = normalizeMinute(start)
	end = normalizeMinute(end)

	if start == end {
		return nil
	}
	if start < end {
		return []Interval{{Start: start, End: end}}
	}
	return []Interval{
		{Start: start, End: MinutesPerDay},
		{Start: 0, End: end},
	}
}

// OverlapMinutes returns the overlap length in minutes between two half-open
// minute-of-day intervals, either of which may cross midnight. Disjoint
// intervals yield 0. Pure and total: malformed (end < start) input is
// interpreted as wrapping past midnight.
func OverlapMinutes(aStart, aEnd, bStart, bEnd int) int {
	total := 0
	for _, a := range ClampToDay(aStart, aEnd) {
		for _, b := range ClampToDay(bStart, bEnd) {
			total += sameDayOverlap(a, b)
		}
	}
	return total
}

// Duration returns the length in minutes of a minute-of-day window,
// wrapping past midnight when end < start. A degenerate window (start ==
// end) has zero duration.
func Duration(start, end int) int {
	total := 0
	for _, iv := range ClampToDay(start, end) {
		total += iv.Minutes()
	}
	return total
}

func sameDayOverlap(a, b Interval) int {
	lo := a.Start
	if b.Start > lo {
		lo = b.Start
	}
	hi := a.End
	if b.End < hi {
		hi = b.End
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}

func normalizeMinute(m int) int {
	m %= MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return m
}

// ParseClock parses a "HH:MM" clock value into a minute-of-day offset.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%2d:%2d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock value %q: out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock renders a minute-of-day offset as "HH:MM".
func FormatClock(minute int) string {
	minute = normalizeMinute(minute)
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// DateOf returns the calendar date of t in the operating timezone.
func DateOf(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// MinuteOfDay returns t's minute-of-day offset in the operating timezone.
func MinuteOfDay(t time.Time, loc *time.Location) int {
	lt := t.In(loc)
	return lt.Hour()*60 + lt.Minute()
}

// EndOfDay returns the wall-clock instant corresponding to the last closing
// minute (23:59:00) of the given calendar date in the operating timezone.
// Built from wall-clock fields, not an offset from midnight, so the result
// is 23:59 even on days where a DST transition changes the day's length.
func EndOfDay(date string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 0, 0, loc), nil
}

// NextDayEnd returns the next 23:59:00 instant at or after now in the
// operating timezone. Used to arm the day-boundary close timer.
func NextDayEnd(now time.Time, loc *time.Location) time.Time {
	lt := now.In(loc)
	dayEnd := time.Date(lt.Year(), lt.Month(), lt.Day(), 23, 59, 0, 0, loc)
	if !dayEnd.After(now) {
		dayEnd = dayEnd.AddDate(0, 0, 1)
	}
	return dayEnd
}
