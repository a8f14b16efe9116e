package worklog

import (
	"context"
	"fmt"
	"time"

	"github.com/prodtrack/timecore-backend-go/internal/domain/worklog"
	"github.com/prodtrack/timecore-backend-go/internal/pkg/timeutil"
)

type WorklogServiceImpl struct {
	segmentRepo worklog.Repository
	loc         *time.Location
}

func NewWorklogService(segmentRepo worklog.Repository, loc *time.Location) worklog.Service {
	return &WorklogServiceImpl{segmentRepo: segmentRepo, loc: loc}
}

// CreateSegment implements worklog.Service.
func (w *WorklogServiceImpl) CreateSegment(ctx context.Context, req worklog.CreateSegmentRequest) (worklog.SegmentResponse, error) {
	if req.End != nil && req.End.Before(req.Start) {
		return worklog.SegmentResponse{}, worklog.ErrEndBeforeStart
	}

	seg, err := w.segmentRepo.Create(ctx, worklog.Segment{
		UserID:      req.UserID,
		JobID:       req.JobID,
		ProcessID:   req.ProcessID,
		Start:       req.Start,
		End:         req.End,
		Description: req.Description,
	})
	if err != nil {
		return worklog.SegmentResponse{}, fmt.Errorf("failed to create work segment: %w", err)
	}

	return toSegmentResponse(seg), nil
}

// FinishSegment implements worklog.Service.
func (w *WorklogServiceImpl) FinishSegment(ctx context.Context, req worklog.FinishSegmentRequest) (worklog.SegmentResponse, error) {
	seg, err := w.segmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return worklog.SegmentResponse{}, err
	}
	if req.End.Before(seg.Start) {
		return worklog.SegmentResponse{}, worklog.ErrEndBeforeStart
	}

	end := req.End
	seg.End = &end
	if err := w.segmentRepo.Update(ctx, seg); err != nil {
		return worklog.SegmentResponse{}, err
	}

	return toSegmentResponse(seg), nil
}

// UpdateSegment implements worklog.Service.
func (w *WorklogServiceImpl) UpdateSegment(ctx context.Context, req worklog.UpdateSegmentRequest) (worklog.SegmentResponse, error) {
	seg, err := w.segmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return worklog.SegmentResponse{}, err
	}

	if req.JobID != nil {
		seg.JobID = *req.JobID
	}
	if req.ProcessID != nil {
		seg.ProcessID = *req.ProcessID
	}
	if req.Start != nil {
		seg.Start = *req.Start
	}
	if req.End != nil {
		seg.End = req.End
	}
	if req.Description != nil {
		seg.Description = req.Description
	}

	if seg.End != nil && seg.End.Before(seg.Start) {
		return worklog.SegmentResponse{}, worklog.ErrEndBeforeStart
	}

	if err := w.segmentRepo.Update(ctx, seg); err != nil {
		return worklog.SegmentResponse{}, err
	}

	return toSegmentResponse(seg), nil
}

// DeleteSegment implements worklog.Service.
func (w *WorklogServiceImpl) DeleteSegment(ctx context.Context, id string) error {
	return w.segmentRepo.Delete(ctx, id)
}

// ListDay implements worklog.Service.
func (w *WorklogServiceImpl) ListDay(ctx context.Context, userID string, date string) ([]worklog.SegmentResponse, error) {
	dayStart, err := time.ParseInLocation(timeutil.DateLayout, date, w.loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	segments, err := w.segmentRepo.ListByUserBetween(ctx, userID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	responses := make([]worklog.SegmentResponse, 0, len(segments))
	for _, seg := range segments {
		responses = append(responses, toSegmentResponse(seg))
	}
	return responses, nil
}

func toSegmentResponse(seg worklog.Segment) worklog.SegmentResponse {
	return worklog.SegmentResponse{
		ID:          seg.ID,
		UserID:      seg.UserID,
		JobID:       seg.JobID,
		ProcessID:   seg.ProcessID,
		Start:       seg.Start,
		End:         seg.End,
		Description: seg.Description,
	}
}
