package worklog

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prodtrack/timecore-backend-go/internal/domain/worklog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLoc = time.FixedZone("UTC+7", 7*3600)

type fakeSegmentRepo struct {
	segments map[string]worklog.Segment
}

func newFakeSegmentRepo() *fakeSegmentRepo {
	return &fakeSegmentRepo{segments: make(map[string]worklog.Segment)}
}

func (f *fakeSegmentRepo) Create(ctx context.Context, seg worklog.Segment) (worklog.Segment, error) {
	seg.ID = uuid.NewString()
	f.segments[seg.ID] = seg
	return seg, nil
}

func (f *fakeSegmentRepo) GetByID(ctx context.Context, id string) (worklog.Segment, error) {
	seg, ok := f.segments[id]
	if !ok {
		return worklog.Segment{}, worklog.ErrSegmentNotFound
	}
	return seg, nil
}

func (f *fakeSegmentRepo) Update(ctx context.Context, seg worklog.Segment) error {
	if _, ok := f.segments[seg.ID]; !ok {
		return worklog.ErrSegmentNotFound
	}
	f.segments[seg.ID] = seg
	return nil
}

func (f *fakeSegmentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.segments[id]; !ok {
		return worklog.ErrSegmentNotFound
	}
	delete(f.segments, id)
	return nil
}

func (f *fakeSegmentRepo) ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]worklog.Segment, error) {
	var out []worklog.Segment
	for _, seg := range f.segments {
		if seg.UserID == userID && !seg.Start.Before(from) && seg.Start.Before(to) {
			out = append(out, seg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (f *fakeSegmentRepo) ListBetween(ctx context.Context, from, to time.Time) ([]worklog.Segment, error) {
	return nil, nil
}

func TestCreateSegment_OpenEnded(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewWorklogService(newFakeSegmentRepo(), testLoc)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, testLoc)
	resp, err := svc.CreateSegment(ctx, worklog.CreateSegmentRequest{
		UserID:    "u1",
		JobID:     "job-1",
		ProcessID: "cutting",
		Start:     start,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.True(t, resp.Start.Equal(start))
	assert.Nil(t, resp.End)
}

func TestCreateSegment_EndBeforeStart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewWorklogService(newFakeSegmentRepo(), testLoc)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, testLoc)
	end := start.Add(-time.Hour)
	_, err := svc.CreateSegment(ctx, worklog.CreateSegmentRequest{
		UserID: "u1",
		Start:  start,
		End:    &end,
	})
	assert.ErrorIs(t, err, worklog.ErrEndBeforeStart)
}

func TestFinishSegment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeSegmentRepo()
	svc := NewWorklogService(repo, testLoc)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, testLoc)
	created, err := svc.CreateSegment(ctx, worklog.CreateSegmentRequest{UserID: "u1", Start: start})
	require.NoError(t, err)

	end := start.Add(3 * time.Hour)
	resp, err := svc.FinishSegment(ctx, worklog.FinishSegmentRequest{ID: created.ID, End: end})
	require.NoError(t, err)

	require.NotNil(t, resp.End)
	assert.True(t, resp.End.Equal(end))

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Finished())
}

func TestFinishSegment_EndBeforeStart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewWorklogService(newFakeSegmentRepo(), testLoc)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, testLoc)
	created, err := svc.CreateSegment(ctx, worklog.CreateSegmentRequest{UserID: "u1", Start: start})
	require.NoError(t, err)

	_, err = svc.FinishSegment(ctx, worklog.FinishSegmentRequest{ID: created.ID, End: start.Add(-time.Minute)})
	assert.ErrorIs(t, err, worklog.ErrEndBeforeStart)
}

func TestUpdateSegment_RevalidatesOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewWorklogService(newFakeSegmentRepo(), testLoc)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, testLoc)
	end := start.Add(2 * time.Hour)
	created, err := svc.CreateSegment(ctx, worklog.CreateSegmentRequest{UserID: "u1", Start: start, End: &end})
	require.NoError(t, err)

	// Moving the start past the existing end must be rejected.
	lateStart := end.Add(time.Hour)
	_, err = svc.UpdateSegment(ctx, worklog.UpdateSegmentRequest{ID: created.ID, Start: &lateStart})
	assert.ErrorIs(t, err, worklog.ErrEndBeforeStart)
}

func TestListDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeSegmentRepo()
	svc := NewWorklogService(repo, testLoc)

	mk := func(userID string, start time.Time) {
		_, err := svc.CreateSegment(ctx, worklog.CreateSegmentRequest{UserID: userID, Start: start})
		require.NoError(t, err)
	}
	mk("u1", time.Date(2025, 3, 10, 9, 0, 0, 0, testLoc))
	mk("u1", time.Date(2025, 3, 10, 14, 0, 0, 0, testLoc))
	mk("u1", time.Date(2025, 3, 11, 9, 0, 0, 0, testLoc)) // next day
	mk("u2", time.Date(2025, 3, 10, 9, 0, 0, 0, testLoc)) // other user

	segments, err := svc.ListDay(ctx, "u1", "2025-03-10")
	require.NoError(t, err)
	assert.Len(t, segments, 2)
}

func TestDeleteSegment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeSegmentRepo()
	svc := NewWorklogService(repo, testLoc)

	created, err := svc.CreateSegment(ctx, worklog.CreateSegmentRequest{
		UserID: "u1",
		Start:  time.Date(2025, 3, 10, 9, 0, 0, 0, testLoc),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSegment(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, worklog.ErrSegmentNotFound)
}
