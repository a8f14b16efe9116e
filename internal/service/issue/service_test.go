package issue

import (
	"context"
	"testing"
	"time"

	"github.com/prodtrack/timecore-backend-go/internal/domain/attendance"
	"github.com/prodtrack/timecore-backend-go/internal/domain/issue"
	"github.com/prodtrack/timecore-backend-go/internal/domain/summary"
	"github.com/prodtrack/timecore-backend-go/internal/domain/worklog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLoc = time.FixedZone("UTC+7", 7*3600)

type stubSummaryService struct {
	sums map[string]summary.DailySummary
}

func (s *stubSummaryService) ComputeDailySummary(ctx context.Context, userID, date string) (summary.DailySummary, error) {
	if sum, ok := s.sums[userID+"|"+date]; ok {
		return sum, nil
	}
	return summary.DailySummary{UserID: userID, Date: date}, nil
}

type fakeIssueRepo struct {
	clears []issue.Clear
}

func (f *fakeIssueRepo) Create(ctx context.Context, clear issue.Clear) (issue.Clear, error) {
	f.clears = append(f.clears, clear)
	return clear, nil
}

func (f *fakeIssueRepo) GetCurrent(ctx context.Context, userID, date string, notBefore time.Time) (*issue.Clear, error) {
	for i := range f.clears {
		c := f.clears[i]
		if c.UserID == userID && c.Date == date && !c.ClearedAt.Before(notBefore) {
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeIssueRepo) ListCurrentByDateRange(ctx context.Context, from, to string, notBefore time.Time) ([]issue.Clear, error) {
	var out []issue.Clear
	for _, c := range f.clears {
		if c.Date >= from && c.Date <= to && !c.ClearedAt.Before(notBefore) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeIssueRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var kept []issue.Clear
	var purged int64
	for _, c := range f.clears {
		if c.ClearedAt.Before(cutoff) {
			purged++
			continue
		}
		kept = append(kept, c)
	}
	f.clears = kept
	return purged, nil
}

type stubAttendanceRepo struct {
	records []attendance.Record
}

func (f *stubAttendanceRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}

func (f *stubAttendanceRepo) GetByUserAndDate(ctx context.Context, userID, date string) (*attendance.Record, error) {
	return nil, nil
}

func (f *stubAttendanceRepo) GetOpen(ctx context.Context, userID, date string) (*attendance.Record, error) {
	return nil, nil
}

func (f *stubAttendanceRepo) ListOpenThrough(ctx context.Context, date string) ([]attendance.Record, error) {
	return nil, nil
}

func (f *stubAttendanceRepo) CloseIfOpen(ctx context.Context, id string, clockOut, workMinutes int, device string) (bool, error) {
	return false, nil
}

func (f *stubAttendanceRepo) Update(ctx context.Context, rec attendance.Record) error {
	return nil
}

func (f *stubAttendanceRepo) ListByDateRange(ctx context.Context, from, to string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.Date >= from && rec.Date <= to {
			out = append(out, rec)
		}
	}
	return out, nil
}

type stubSegmentRepo struct {
	segments []worklog.Segment
}

func (f *stubSegmentRepo) Create(ctx context.Context, seg worklog.Segment) (worklog.Segment, error) {
	return seg, nil
}

func (f *stubSegmentRepo) GetByID(ctx context.Context, id string) (worklog.Segment, error) {
	return worklog.Segment{}, worklog.ErrSegmentNotFound
}

func (f *stubSegmentRepo) Update(ctx context.Context, seg worklog.Segment) error { return nil }

func (f *stubSegmentRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *stubSegmentRepo) ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]worklog.Segment, error) {
	return nil, nil
}

func (f *stubSegmentRepo) ListBetween(ctx context.Context, from, to time.Time) ([]worklog.Segment, error) {
	var out []worklog.Segment
	for _, seg := range f.segments {
		if !seg.Start.Before(from) && seg.Start.Before(to) {
			out = append(out, seg)
		}
	}
	return out, nil
}

func newTestService(issueRepo *fakeIssueRepo, attRepo *stubAttendanceRepo, segRepo *stubSegmentRepo, sums map[string]summary.DailySummary, now time.Time) *IssueServiceImpl {
	svc := NewIssueService(issueRepo, attRepo, segRepo, &stubSummaryService{sums: sums}, 60, 7, testLoc).(*IssueServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func TestClassify_Boundaries(t *testing.T) {
	t.Parallel()
	svc := newTestService(&fakeIssueRepo{}, &stubAttendanceRepo{}, &stubSegmentRepo{}, nil, time.Now())

	cases := []struct {
		difference int
		want       issue.Classification
	}{
		{0, issue.ClassificationNone},
		{60, issue.ClassificationNone},
		{61, issue.ClassificationExcessive},
		{-60, issue.ClassificationNone},
		{-61, issue.ClassificationLow},
		{-180, issue.ClassificationLow},
		{300, issue.ClassificationExcessive},
	}
	for _, c := range cases {
		got := svc.Classify(summary.DailySummary{DifferenceMinutes: c.difference})
		assert.Equal(t, c.want, got, "difference %d", c.difference)

		wantUmbrella := issue.ClassificationIssue
		if c.want == issue.ClassificationNone {
			wantUmbrella = issue.ClassificationNone
		}
		assert.Equal(t, wantUmbrella, got.Umbrella(), "umbrella for difference %d", c.difference)
	}
}

func TestClearIssue_CreatesAuditRecord(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, testLoc)

	issueRepo := &fakeIssueRepo{}
	sums := map[string]summary.DailySummary{
		"u1|2025-03-10": {UserID: "u1", Date: "2025-03-10", AttendanceMinutes: 480, WorkMinutes: 300, DifferenceMinutes: -180},
	}
	svc := newTestService(issueRepo, &stubAttendanceRepo{}, &stubSegmentRepo{}, sums, now)

	clear, err := svc.ClearIssue(ctx, "u1", "2025-03-10", "supervisor-9")
	require.NoError(t, err)

	assert.NotEmpty(t, clear.ID)
	assert.Equal(t, "u1", clear.UserID)
	assert.Equal(t, "2025-03-10", clear.Date)
	assert.Equal(t, "supervisor-9", clear.ClearedBy)
	assert.Equal(t, now, clear.ClearedAt)
	require.Len(t, issueRepo.clears, 1)
}

func TestClearIssue_AlreadyCleared(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, testLoc)

	sums := map[string]summary.DailySummary{
		"u1|2025-03-10": {UserID: "u1", Date: "2025-03-10", DifferenceMinutes: -180},
	}
	// Acknowledged yesterday, still within the retention window.
	issueRepo := &fakeIssueRepo{clears: []issue.Clear{
		{ID: "c1", UserID: "u1", Date: "2025-03-10", ClearedBy: "sup", ClearedAt: now.Add(-24 * time.Hour)},
	}}
	svc := newTestService(issueRepo, &stubAttendanceRepo{}, &stubSegmentRepo{}, sums, now)

	_, err := svc.ClearIssue(ctx, "u1", "2025-03-10", "supervisor-9")
	assert.ErrorIs(t, err, issue.ErrAlreadyCleared)
	assert.Len(t, issueRepo.clears, 1)
}

func TestClearIssue_ExpiredClearAllowsReclear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2025, 3, 20, 10, 0, 0, 0, testLoc)

	sums := map[string]summary.DailySummary{
		"u1|2025-03-10": {UserID: "u1", Date: "2025-03-10", DifferenceMinutes: -180},
	}
	issueRepo := &fakeIssueRepo{clears: []issue.Clear{
		{ID: "c1", UserID: "u1", Date: "2025-03-10", ClearedBy: "sup", ClearedAt: now.Add(-8 * 24 * time.Hour)},
	}}
	svc := newTestService(issueRepo, &stubAttendanceRepo{}, &stubSegmentRepo{}, sums, now)

	clear, err := svc.ClearIssue(ctx, "u1", "2025-03-10", "supervisor-9")
	require.NoError(t, err)
	assert.Equal(t, now, clear.ClearedAt)
	assert.Len(t, issueRepo.clears, 2)
}

func TestClearIssue_NothingToClear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(&fakeIssueRepo{}, &stubAttendanceRepo{}, &stubSegmentRepo{}, nil, time.Now())

	_, err := svc.ClearIssue(ctx, "u1", "2025-03-10", "supervisor-9")
	assert.ErrorIs(t, err, issue.ErrNothingToClear)
}

func TestListPendingIssues_ExcludesRecentlyCleared(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, testLoc)

	attRepo := &stubAttendanceRepo{records: []attendance.Record{
		{ID: "a1", UserID: "u1", Date: "2025-03-10"},
		{ID: "a2", UserID: "u2", Date: "2025-03-10"},
		{ID: "a3", UserID: "u3", Date: "2025-03-11"},
	}}
	sums := map[string]summary.DailySummary{
		"u1|2025-03-10": {DifferenceMinutes: -180},
		"u2|2025-03-10": {DifferenceMinutes: 90},
		"u3|2025-03-11": {DifferenceMinutes: 30}, // within tolerance
	}
	issueRepo := &fakeIssueRepo{clears: []issue.Clear{
		{ID: "c1", UserID: "u2", Date: "2025-03-10", ClearedBy: "sup", ClearedAt: now.Add(-24 * time.Hour)},
	}}
	svc := newTestService(issueRepo, attRepo, &stubSegmentRepo{}, sums, now)

	pending, err := svc.ListPendingIssues(ctx, "2025-03-09", "2025-03-12")
	require.NoError(t, err)

	require.Len(t, pending, 1)
	assert.Equal(t, "u1", pending[0].UserID)
	assert.Equal(t, issue.ClassificationIssue, pending[0].Status)
	assert.Equal(t, issue.ClassificationLow, pending[0].Classification)
	assert.Equal(t, -180, pending[0].DifferenceMinutes)
}

func TestPendingIssuesCarryUmbrellaStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, testLoc)

	attRepo := &stubAttendanceRepo{records: []attendance.Record{
		{ID: "a1", UserID: "u1", Date: "2025-03-10"},
		{ID: "a2", UserID: "u2", Date: "2025-03-10"},
	}}
	sums := map[string]summary.DailySummary{
		"u1|2025-03-10": {DifferenceMinutes: -180},
		"u2|2025-03-10": {DifferenceMinutes: 90},
	}
	svc := newTestService(&fakeIssueRepo{}, attRepo, &stubSegmentRepo{}, sums, now)

	pending, err := svc.ListPendingIssues(ctx, "2025-03-09", "2025-03-12")
	require.NoError(t, err)

	// Both directions of mismatch surface under the same umbrella state.
	require.Len(t, pending, 2)
	for _, p := range pending {
		assert.Equal(t, issue.ClassificationIssue, p.Status)
	}
}

func TestListPendingIssues_ExpiredClearNoLongerExcludes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2025, 3, 20, 10, 0, 0, 0, testLoc)

	attRepo := &stubAttendanceRepo{records: []attendance.Record{
		{ID: "a1", UserID: "u1", Date: "2025-03-10"},
	}}
	sums := map[string]summary.DailySummary{
		"u1|2025-03-10": {DifferenceMinutes: 120},
	}
	// Cleared 8 days ago, past the 7 day retention window.
	issueRepo := &fakeIssueRepo{clears: []issue.Clear{
		{ID: "c1", UserID: "u1", Date: "2025-03-10", ClearedBy: "sup", ClearedAt: now.Add(-8 * 24 * time.Hour)},
	}}
	svc := newTestService(issueRepo, attRepo, &stubSegmentRepo{}, sums, now)

	pending, err := svc.ListPendingIssues(ctx, "2025-03-09", "2025-03-12")
	require.NoError(t, err)

	require.Len(t, pending, 1)
	assert.Equal(t, issue.ClassificationExcessive, pending[0].Classification)
}

func TestListPendingIssues_IncludesWorklogOnlyDays(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, testLoc)

	// No attendance record at all: work was logged but presence never
	// recorded, the classic excessive case.
	start, _ := time.ParseInLocation("2006-01-02", "2025-03-10", testLoc)
	segRepo := &stubSegmentRepo{segments: []worklog.Segment{
		{ID: "s1", UserID: "u4", Start: start.Add(9 * time.Hour)},
	}}
	sums := map[string]summary.DailySummary{
		"u4|2025-03-10": {DifferenceMinutes: 240},
	}
	svc := newTestService(&fakeIssueRepo{}, &stubAttendanceRepo{}, segRepo, sums, now)

	pending, err := svc.ListPendingIssues(ctx, "2025-03-09", "2025-03-12")
	require.NoError(t, err)

	require.Len(t, pending, 1)
	assert.Equal(t, "u4", pending[0].UserID)
	assert.Equal(t, issue.ClassificationExcessive, pending[0].Classification)
}

func TestPurgeExpiredClears(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2025, 3, 20, 10, 0, 0, 0, testLoc)

	issueRepo := &fakeIssueRepo{clears: []issue.Clear{
		{ID: "old", ClearedAt: now.Add(-8 * 24 * time.Hour)},
		{ID: "fresh", ClearedAt: now.Add(-24 * time.Hour)},
	}}
	svc := newTestService(issueRepo, &stubAttendanceRepo{}, &stubSegmentRepo{}, nil, now)

	purged, err := svc.PurgeExpiredClears(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), purged)
	require.Len(t, issueRepo.clears, 1)
	assert.Equal(t, "fresh", issueRepo.clears[0].ID)
}
