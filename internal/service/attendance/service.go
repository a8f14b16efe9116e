package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/prodtrack/timecore-backend-go/internal/domain/attendance"
	"github.com/prodtrack/timecore-backend-go/internal/domain/breakrule"
	"github.com/prodtrack/timecore-backend-go/internal/pkg/timeutil"
	summaryService "github.com/prodtrack/timecore-backend-go/internal/service/summary"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	ruleRepo       breakrule.Repository
	loc            *time.Location
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	ruleRepo breakrule.Repository,
	loc *time.Location,
) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		ruleRepo:       ruleRepo,
		loc:            loc,
		now:            time.Now,
	}
}

// ClockIn implements attendance.Service.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.RecordResponse, error) {
	now := a.now()
	date := timeutil.DateOf(now, a.loc)

	open, err := a.attendanceRepo.GetOpen(ctx, req.UserID, date)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if open != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyClockedIn
	}

	rec, err := a.attendanceRepo.Create(ctx, attendance.Record{
		UserID:  req.UserID,
		Date:    date,
		ClockIn: timeutil.MinuteOfDay(now, a.loc),
		Device:  req.Device,
	})
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to clock in: %w", err)
	}

	return toRecordResponse(rec), nil
}

// ClockOut implements attendance.Service. The session's net minutes are
// computed over the full clock span against the currently active break
// rules, the same math the auto-close sweep applies.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.RecordResponse, error) {
	now := a.now()
	date := timeutil.DateOf(now, a.loc)

	open, err := a.attendanceRepo.GetOpen(ctx, req.UserID, date)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if open == nil {
		return attendance.RecordResponse{}, attendance.ErrNotClockedIn
	}

	clockOut := timeutil.MinuteOfDay(now, a.loc)
	if clockOut < open.ClockIn {
		clockOut = open.ClockIn
	}

	rules, err := a.ruleRepo.ListActive(ctx)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to load active break rules: %w", err)
	}
	net := summaryService.SpanNetMinutes(open.ClockIn, clockOut, rules)

	device := req.Device
	if device == "" {
		device = open.Device
	}

	closed, err := a.attendanceRepo.CloseIfOpen(ctx, open.ID, clockOut, net, device)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if !closed {
		// Lost the race against another closer.
		return attendance.RecordResponse{}, attendance.ErrNotClockedIn
	}

	open.ClockOut = &clockOut
	open.WorkMinutes = &net
	open.Device = device
	return toRecordResponse(*open), nil
}

// UpdateDay implements attendance.Service. Corrections go through the
// plain Update rather than the conditional close: a manual edit racing the
// auto-close sweep resolves last-write-wins.
func (a *AttendanceServiceImpl) UpdateDay(ctx context.Context, req attendance.UpdateRecordRequest) (attendance.RecordResponse, error) {
	rec, err := a.attendanceRepo.GetByUserAndDate(ctx, req.UserID, req.Date)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if rec == nil {
		return attendance.RecordResponse{}, attendance.ErrRecordNotFound
	}

	if req.ClockIn != nil {
		if rec.ClockIn, err = timeutil.ParseClock(*req.ClockIn); err != nil {
			return attendance.RecordResponse{}, err
		}
	}
	if req.ClockOut != nil {
		out, err := timeutil.ParseClock(*req.ClockOut)
		if err != nil {
			return attendance.RecordResponse{}, err
		}
		rec.ClockOut = &out
	}
	if req.Device != nil {
		rec.Device = *req.Device
	}

	if rec.ClockOut != nil {
		if *rec.ClockOut < rec.ClockIn {
			return attendance.RecordResponse{}, attendance.ErrClockOutBeforeIn
		}
		rules, err := a.ruleRepo.ListActive(ctx)
		if err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("failed to load active break rules: %w", err)
		}
		net := summaryService.SpanNetMinutes(rec.ClockIn, *rec.ClockOut, rules)
		rec.WorkMinutes = &net
	}

	if err := a.attendanceRepo.Update(ctx, *rec); err != nil {
		return attendance.RecordResponse{}, err
	}
	return toRecordResponse(*rec), nil
}

// GetDay implements attendance.Service.
func (a *AttendanceServiceImpl) GetDay(ctx context.Context, userID string, date string) (attendance.RecordResponse, error) {
	rec, err := a.attendanceRepo.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if rec == nil {
		return attendance.RecordResponse{}, attendance.ErrRecordNotFound
	}
	return toRecordResponse(*rec), nil
}

func toRecordResponse(rec attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:          rec.ID,
		UserID:      rec.UserID,
		Date:        rec.Date,
		ClockIn:     timeutil.FormatClock(rec.ClockIn),
		WorkMinutes: rec.WorkMinutes,
		Device:      rec.Device,
	}
	if rec.ClockOut != nil {
		out := timeutil.FormatClock(*rec.ClockOut)
		resp.ClockOut = &out
	}
	return resp
}
