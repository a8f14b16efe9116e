package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prodtrack/timecore-backend-go/internal/domain/attendance"
	"github.com/prodtrack/timecore-backend-go/internal/domain/breakrule"
	"github.com/prodtrack/timecore-backend-go/internal/domain/issue"
	"github.com/prodtrack/timecore-backend-go/internal/pkg/timeutil"
	summaryService "github.com/prodtrack/timecore-backend-go/internal/service/summary"
)

// TimeclockJobs owns the background sweeps of the time accounting engine:
// the attendance auto-close and the issue clear retention purge.
type TimeclockJobs struct {
	attendanceRepo attendance.Repository
	ruleRepo       breakrule.Repository
	issueService   issue.Service
	loc            *time.Location
	now            func() time.Time
}

func NewTimeclockJobs(
	attendanceRepo attendance.Repository,
	ruleRepo breakrule.Repository,
	issueService issue.Service,
	loc *time.Location,
) *TimeclockJobs {
	return &TimeclockJobs{
		attendanceRepo: attendanceRepo,
		ruleRepo:       ruleRepo,
		issueService:   issueService,
		loc:            loc,
		now:            time.Now,
	}
}

func (j *TimeclockJobs) RegisterJobs(scheduler *Scheduler) {
	// Two triggers race to apply the same idempotent close: a precise
	// day-boundary timer and a coarse per-minute fallback that covers
	// process restarts near the boundary.
	scheduler.AddDailyJob("close_open_attendances_day_end", j.nextDayEnd, j.CloseOpenAttendances)
	scheduler.AddJob("close_open_attendances_fallback", 1*time.Minute, j.CloseOpenAttendances)
	scheduler.AddJob("purge_expired_issue_clears", 1*time.Hour, j.PurgeExpiredIssueClears)
}

func (j *TimeclockJobs) nextDayEnd(now time.Time) time.Time {
	return timeutil.NextDayEnd(now, j.loc)
}

// CloseOpenAttendances closes every attendance session still open past the
// end of its calendar day, stamping clock-out 23:59, device "auto" and the
// net minutes of the full span. Safe to run any number of times: the
// conditional update matches only still-open records, so a re-run or a
// concurrent sweep is a no-op. A store failure is returned for logging and
// simply retried at the next tick.
func (j *TimeclockJobs) CloseOpenAttendances(ctx context.Context) error {
	now := j.now()
	cutoff, ended := j.latestEndedDate(now)
	if !ended {
		return nil
	}

	stale, err := j.attendanceRepo.ListOpenThrough(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list open attendance sessions: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}

	rules, err := j.ruleRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to load active break rules: %w", err)
	}

	closedCount := 0
	for _, rec := range stale {
		net := summaryService.SpanNetMinutes(rec.ClockIn, timeutil.EndOfDayMinute, rules)

		closed, err := j.attendanceRepo.CloseIfOpen(ctx, rec.ID, timeutil.EndOfDayMinute, net, attendance.DeviceAuto)
		if err != nil {
			slog.Error("Cron: Failed to auto-close attendance session",
				"attendance_id", rec.ID,
				"user_id", rec.UserID,
				"date", rec.Date,
				"error", err)
			continue
		}
		if closed {
			closedCount++
		}
	}

	if closedCount > 0 {
		slog.Info("Cron: Auto-closed stale attendance sessions", "count", closedCount)
	}
	return nil
}

// latestEndedDate returns the most recent calendar date whose closing
// minute (23:59) has been reached: today once its day end has passed,
// otherwise yesterday.
func (j *TimeclockJobs) latestEndedDate(now time.Time) (string, bool) {
	today := timeutil.DateOf(now, j.loc)
	dayEnd, err := timeutil.EndOfDay(today, j.loc)
	if err != nil {
		return "", false
	}
	if !now.Before(dayEnd) {
		return today, true
	}
	return timeutil.DateOf(now.AddDate(0, 0, -1), j.loc), true
}

// PurgeExpiredIssueClears removes clear records past the retention window.
// Purely housekeeping; a failure is logged by the scheduler and skipped
// until the next hourly run.
func (j *TimeclockJobs) PurgeExpiredIssueClears(ctx context.Context) error {
	purged, err := j.issueService.PurgeExpiredClears(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge expired issue clears: %w", err)
	}
	if purged > 0 {
		slog.Info("Cron: Purged expired issue clears", "count", purged)
	}
	return nil
}
