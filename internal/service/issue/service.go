package issue

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/prodtrack/timecore-backend-go/internal/domain/attendance"
	"github.com/prodtrack/timecore-backend-go/internal/domain/issue"
	"github.com/prodtrack/timecore-backend-go/internal/domain/summary"
	"github.com/prodtrack/timecore-backend-go/internal/domain/worklog"
	"github.com/prodtrack/timecore-backend-go/internal/pkg/timeutil"
)

type IssueServiceImpl struct {
	issueRepo        issue.Repository
	attendanceRepo   attendance.Repository
	segmentRepo      worklog.Repository
	summaryService   summary.Service
	thresholdMinutes int
	retention        time.Duration
	loc              *time.Location
	now              func() time.Time
}

func NewIssueService(
	issueRepo issue.Repository,
	attendanceRepo attendance.Repository,
	segmentRepo worklog.Repository,
	summaryService summary.Service,
	thresholdMinutes int,
	retentionDays int,
	loc *time.Location,
) issue.Service {
	return &IssueServiceImpl{
		issueRepo:        issueRepo,
		attendanceRepo:   attendanceRepo,
		segmentRepo:      segmentRepo,
		summaryService:   summaryService,
		thresholdMinutes: thresholdMinutes,
		retention:        time.Duration(retentionDays) * 24 * time.Hour,
		loc:              loc,
		now:              time.Now,
	}
}

// Classify implements issue.Service. The sign convention follows
// DifferenceMinutes = workMinutes - attendanceMinutes: more reported work
// than presence is excessive, the reverse is low. Clear records never
// influence the classification.
func (s *IssueServiceImpl) Classify(sum summary.DailySummary) issue.Classification {
	switch {
	case sum.DifferenceMinutes > s.thresholdMinutes:
		return issue.ClassificationExcessive
	case sum.DifferenceMinutes < -s.thresholdMinutes:
		return issue.ClassificationLow
	default:
		return issue.ClassificationNone
	}
}

// ClearIssue implements issue.Service. A user-day already acknowledged
// within the retention window is rejected rather than stamped twice.
func (s *IssueServiceImpl) ClearIssue(ctx context.Context, userID string, date string, actorID string) (issue.ClearResponse, error) {
	sum, err := s.summaryService.ComputeDailySummary(ctx, userID, date)
	if err != nil {
		return issue.ClearResponse{}, err
	}
	if s.Classify(sum) == issue.ClassificationNone {
		return issue.ClearResponse{}, issue.ErrNothingToClear
	}

	existing, err := s.issueRepo.GetCurrent(ctx, userID, date, s.now().Add(-s.retention))
	if err != nil {
		return issue.ClearResponse{}, fmt.Errorf("failed to check for existing clear: %w", err)
	}
	if existing != nil {
		return issue.ClearResponse{}, issue.ErrAlreadyCleared
	}

	clear, err := s.issueRepo.Create(ctx, issue.Clear{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      date,
		ClearedBy: actorID,
		ClearedAt: s.now(),
	})
	if err != nil {
		return issue.ClearResponse{}, err
	}

	return toClearResponse(clear), nil
}

// ListPendingIssues implements issue.Service. Scans every user-day with
// attendance or work log activity in [from, to], classifies each freshly
// computed summary and drops the days a supervisor already acknowledged
// within the retention window.
func (s *IssueServiceImpl) ListPendingIssues(ctx context.Context, from, to string) ([]issue.PendingIssue, error) {
	userDays, err := s.collectUserDays(ctx, from, to)
	if err != nil {
		return nil, err
	}

	notBefore := s.now().Add(-s.retention)
	clears, err := s.issueRepo.ListCurrentByDateRange(ctx, from, to, notBefore)
	if err != nil {
		return nil, fmt.Errorf("failed to load issue clears: %w", err)
	}
	cleared := make(map[userDay]bool, len(clears))
	for _, c := range clears {
		cleared[userDay{c.UserID, c.Date}] = true
	}

	var pending []issue.PendingIssue
	for _, ud := range userDays {
		if cleared[ud] {
			continue
		}
		sum, err := s.summaryService.ComputeDailySummary(ctx, ud.userID, ud.date)
		if err != nil {
			return nil, err
		}
		classification := s.Classify(sum)
		if classification == issue.ClassificationNone {
			continue
		}
		pending = append(pending, issue.PendingIssue{
			UserID:            ud.userID,
			Date:              ud.date,
			Status:            classification.Umbrella(),
			Classification:    classification,
			DifferenceMinutes: sum.DifferenceMinutes,
		})
	}

	return pending, nil
}

// PurgeExpiredClears implements issue.Service.
func (s *IssueServiceImpl) PurgeExpiredClears(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.retention)
	return s.issueRepo.DeleteOlderThan(ctx, cutoff)
}

type userDay struct {
	userID string
	date   string
}

// collectUserDays merges the user-days that have an attendance record with
// those that have at least one work segment, in deterministic order.
func (s *IssueServiceImpl) collectUserDays(ctx context.Context, from, to string) ([]userDay, error) {
	seen := make(map[userDay]bool)

	records, err := s.attendanceRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance records: %w", err)
	}
	for _, rec := range records {
		seen[userDay{rec.UserID, rec.Date}] = true
	}

	rangeStart, err := time.ParseInLocation(timeutil.DateLayout, from, s.loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", from, err)
	}
	rangeEnd, err := time.ParseInLocation(timeutil.DateLayout, to, s.loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", to, err)
	}
	segments, err := s.segmentRepo.ListBetween(ctx, rangeStart, rangeEnd.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to load work segments: %w", err)
	}
	for _, seg := range segments {
		seen[userDay{seg.UserID, timeutil.DateOf(seg.Start, s.loc)}] = true
	}

	days := make([]userDay, 0, len(seen))
	for ud := range seen {
		days = append(days, ud)
	}
	sort.Slice(days, func(i, j int) bool {
		if days[i].date != days[j].date {
			return days[i].date < days[j].date
		}
		return days[i].userID < days[j].userID
	})

	return days, nil
}

func toClearResponse(clear issue.Clear) issue.ClearResponse {
	return issue.ClearResponse{
		ID:        clear.ID,
		UserID:    clear.UserID,
		Date:      clear.Date,
		ClearedBy: clear.ClearedBy,
		ClearedAt: clear.ClearedAt,
	}
}
