package timeutil

import (
	"testing"
	"time"
)

func TestOverlapMinutes(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       int
	}{
		{"disjoint", 9 * 60, 12 * 60, 13 * 60, 14 * 60, 0},
		{"touching boundaries", 9 * 60, 12 * 60, 12 * 60, 13 * 60, 0},
		{"fully contained", 9 * 60, 14 * 60, 12 * 60, 13*60 + 20, 80},
		{"partial left", 9 * 60, 12*60 + 30, 12 * 60, 13 * 60, 30},
		{"identical", 12 * 60, 13 * 60, 12 * 60, 13 * 60, 60},
		{"break wraps midnight", 9 * 60, 14 * 60, 23 * 60, 1 * 60, 0},
		{"segment wraps midnight", 22 * 60, 2 * 60, 23 * 60, 1 * 60, 120},
		{"wrap overlaps late piece only", 22 * 60, 2 * 60, 23*60 + 30, 23*60 + 45, 15},
		{"wrap overlaps early piece only", 22 * 60, 2 * 60, 0, 30, 30},
		{"zero-length interval", 12 * 60, 12 * 60, 9 * 60, 17 * 60, 0},
	}
	for _, c := range cases {
		got := OverlapMinutes(c.aStart, c.aEnd, c.bStart, c.bEnd)
		if got != c.want {
			t.Errorf("%s: OverlapMinutes(%d,%d,%d,%d) = %d, want %d",
				c.name, c.aStart, c.aEnd, c.bStart, c.bEnd, got, c.want)
		}
	}
}

func TestOverlapNeverExceedsEitherDuration(t *testing.T) {
	pairs := [][4]int{
		{9 * 60, 14 * 60, 12 * 60, 13*60 + 20},
		{22 * 60, 2 * 60, 23 * 60, 1 * 60},
		{0, MinutesPerDay - 1, 12 * 60, 12*60 + 1},
		{13 * 60, 12 * 60, 12 * 60, 13 * 60},
	}
	for _, p := range pairs {
		got := OverlapMinutes(p[0], p[1], p[2], p[3])
		if da := Duration(p[0], p[1]); got > da {
			t.Errorf("overlap %d exceeds first duration %d for %v", got, da, p)
		}
		if db := Duration(p[2], p[3]); got > db {
			t.Errorf("overlap %d exceeds second duration %d for %v", got, db, p)
		}
		if got < 0 {
			t.Errorf("negative overlap %d for %v", got, p)
		}
	}
}

func TestClampToDay(t *testing.T) {
	same := ClampToDay(9*60, 17*60)
	if len(same) != 1 || same[0] != (Interval{9 * 60, 17 * 60}) {
		t.Errorf("ClampToDay(540,1020) = %v", same)
	}

	wrapped := ClampToDay(23*60, 1*60)
	if len(wrapped) != 2 {
		t.Fatalf("ClampToDay(1380,60) = %v, want two pieces", wrapped)
	}
	if wrapped[0] != (Interval{23 * 60, MinutesPerDay}) || wrapped[1] != (Interval{0, 60}) {
		t.Errorf("ClampToDay(1380,60) = %v", wrapped)
	}

	if got := ClampToDay(300, 300); got != nil {
		t.Errorf("ClampToDay(300,300) = %v, want nil", got)
	}
}

func TestDuration(t *testing.T) {
	cases := []struct {
		start, end, want int
	}{
		{12 * 60, 13*60 + 20, 80},
		{23 * 60, 1 * 60, 120},
		{0, MinutesPerDay, 0}, // normalized to a degenerate window
		{10 * 60, 10 * 60, 0},
	}
	for _, c := range cases {
		if got := Duration(c.start, c.end); got != c.want {
			t.Errorf("Duration(%d,%d) = %d, want %d", c.start, c.end, got, c.want)
		}
	}
}

func TestParseFormatClock(t *testing.T) {
	valid := map[string]int{
		"00:00": 0,
		"09:05": 9*60 + 5,
		"23:59": EndOfDayMinute,
	}
	for s, want := range valid {
		got, err := ParseClock(s)
		if err != nil {
			t.Errorf("ParseClock(%q) error: %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("ParseClock(%q) = %d, want %d", s, got, want)
		}
		if back := FormatClock(got); back != s {
			t.Errorf("FormatClock(%d) = %q, want %q", got, back, s)
		}
	}

	invalid := []string{"24:00", "12:60", "noon", ""}
	for _, s := range invalid {
		if _, err := ParseClock(s); err == nil {
			t.Errorf("ParseClock(%q) = nil error, want failure", s)
		}
	}
}

func TestDateHelpers(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)

	// 2025-03-10 16:30 UTC is 23:30 local.
	instant := time.Date(2025, 3, 10, 16, 30, 0, 0, time.UTC)
	if got := DateOf(instant, loc); got != "2025-03-10" {
		t.Errorf("DateOf = %q", got)
	}
	if got := MinuteOfDay(instant, loc); got != 23*60+30 {
		t.Errorf("MinuteOfDay = %d", got)
	}

	// 2025-03-10 17:30 UTC crosses into 2025-03-11 local.
	if got := DateOf(instant.Add(time.Hour), loc); got != "2025-03-11" {
		t.Errorf("DateOf after midnight = %q", got)
	}

	dayEnd, err := EndOfDay("2025-03-10", loc)
	if err != nil {
		t.Fatalf("EndOfDay error: %v", err)
	}
	if got := dayEnd.In(loc).Format("2006-01-02 15:04"); got != "2025-03-10 23:59" {
		t.Errorf("EndOfDay = %q", got)
	}

	next := NextDayEnd(instant, loc) // 23:30 local, same-day 23:59 still ahead
	if got := next.In(loc).Format("2006-01-02 15:04"); got != "2025-03-10 23:59" {
		t.Errorf("NextDayEnd = %q", got)
	}
	after := NextDayEnd(next.Add(time.Minute), loc)
	if got := after.In(loc).Format("2006-01-02 15:04"); got != "2025-03-11 23:59" {
		t.Errorf("NextDayEnd past boundary = %q", got)
	}
}

func TestEndOfDayAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 2025-03-09 is 23 hours long and 2025-11-02 is 25 hours long in this
	// zone; the closing minute must still land on 23:59 wall clock.
	for _, date := range []string{"2025-03-09", "2025-11-02"} {
		dayEnd, err := EndOfDay(date, loc)
		if err != nil {
			t.Fatalf("EndOfDay(%q) error: %v", date, err)
		}
		if got := dayEnd.In(loc).Format("2006-01-02 15:04"); got != date+" 23:59" {
			t.Errorf("EndOfDay(%q) = %q", date, got)
		}
	}
}
