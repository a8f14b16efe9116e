package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/prodtrack/timecore-backend-go/internal/domain/attendance"
	"github.com/prodtrack/timecore-backend-go/internal/domain/breakrule"
	"github.com/prodtrack/timecore-backend-go/internal/domain/summary"
	"github.com/prodtrack/timecore-backend-go/internal/domain/worklog"
	"github.com/prodtrack/timecore-backend-go/internal/pkg/timeutil"
)

type SummaryServiceImpl struct {
	attendanceRepo attendance.Repository
	segmentRepo    worklog.Repository
	ruleRepo       breakrule.Repository
	loc            *time.Location
}

func NewSummaryService(
	attendanceRepo attendance.Repository,
	segmentRepo worklog.Repository,
	ruleRepo breakrule.Repository,
	loc *time.Location,
) summary.Service {
	return &SummaryServiceImpl{
		attendanceRepo: attendanceRepo,
		segmentRepo:    segmentRepo,
		ruleRepo:       ruleRepo,
		loc:            loc,
	}
}

// ComputeDailySummary implements summary.Service. A read-only derivation:
// it always reflects the current segments, attendance record and active
// break rules, so calling it repeatedly is safe and cheap.
func (s *SummaryServiceImpl) ComputeDailySummary(ctx context.Context, userID string, date string) (summary.DailySummary, error) {
	dayStart, dayEnd, err := s.dayBounds(date)
	if err != nil {
		return summary.DailySummary{}, err
	}

	rules, err := s.ruleRepo.ListActive(ctx)
	if err != nil {
		return summary.DailySummary{}, fmt.Errorf("failed to load active break rules: %w", err)
	}

	segments, err := s.segmentRepo.ListByUserBetween(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return summary.DailySummary{}, fmt.Errorf("failed to load work segments: %w", err)
	}

	result := summary.DailySummary{
		UserID: userID,
		Date:   date,
	}

	for _, seg := range segments {
		breakdown := s.segmentBreakdown(seg, rules)
		result.WorkMinutes += breakdown.NetMinutes
		result.Segments = append(result.Segments, breakdown)
	}

	rec, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		return summary.DailySummary{}, fmt.Errorf("failed to load attendance record: %w", err)
	}
	result.AttendanceMinutes = s.attendanceMinutes(rec, rules)
	result.DifferenceMinutes = result.WorkMinutes - result.AttendanceMinutes

	return result, nil
}

// segmentBreakdown runs one segment through the break-overlap calculator.
// An open segment has no computable duration yet and contributes zero.
func (s *SummaryServiceImpl) segmentBreakdown(seg worklog.Segment, rules []breakrule.Rule) summary.SegmentBreakdown {
	if !seg.Finished() {
		return summary.SegmentBreakdown{SegmentID: seg.ID}
	}

	base := int(seg.End.Sub(seg.Start).Minutes())
	if base < 0 {
		base = 0
	}

	startMin := timeutil.MinuteOfDay(seg.Start, s.loc)
	endMin := timeutil.MinuteOfDay(*seg.End, s.loc)
	net, breaks := BreakdownWindow(startMin, endMin, base, rules)

	return summary.SegmentBreakdown{
		SegmentID:   seg.ID,
		BaseMinutes: base,
		Breaks:      breaks,
		NetMinutes:  net,
	}
}

// attendanceMinutes reads the cached net minute count of the day's record.
// A still-open session counts as zero presence; a closed record that
// predates minute caching is recomputed from its span.
func (s *SummaryServiceImpl) attendanceMinutes(rec *attendance.Record, rules []breakrule.Rule) int {
	if rec == nil || rec.Open() {
		return 0
	}
	if rec.WorkMinutes != nil {
		return *rec.WorkMinutes
	}
	return SpanNetMinutes(rec.ClockIn, *rec.ClockOut, rules)
}

func (s *SummaryServiceImpl) dayBounds(date string) (time.Time, time.Time, error) {
	dayStart, err := time.ParseInLocation(timeutil.DateLayout, date, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return dayStart, dayStart.AddDate(0, 0, 1), nil
}
