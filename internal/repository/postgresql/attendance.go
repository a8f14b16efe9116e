package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/prodtrack/timecore-backend-go/internal/domain/attendance"
	"github.com/prodtrack/timecore-backend-go/internal/pkg/database"
	"github.com/prodtrack/timecore-backend-go/internal/pkg/timeutil"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, user_id, date, clock_in, clock_out, work_minutes, device,
	created_at, updated_at
`

// Create implements attendance.Repository.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			user_id, date, clock_in, clock_out, work_minutes, device
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.UserID,
		rec.Date,
		timeutil.FormatClock(rec.ClockIn),
		clockTextOrNil(rec.ClockOut),
		rec.WorkMinutes,
		rec.Device,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByUserAndDate implements attendance.Repository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date string) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE user_id = $1
		  AND date = $2
		ORDER BY clock_in DESC
		LIMIT 1
	`

	rec, err := scanAttendanceRow(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No record for this day
		}
		return nil, fmt.Errorf("failed to get attendance record by user and date: %w", err)
	}

	return &rec, nil
}

// GetOpen implements attendance.Repository.
func (a *attendanceRepository) GetOpen(ctx context.Context, userID string, date string) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE user_id = $1
		  AND date = $2
		  AND clock_out IS NULL
		LIMIT 1
	`

	rec, err := scanAttendanceRow(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open attendance session: %w", err)
	}

	return &rec, nil
}

// ListOpenThrough implements attendance.Repository.
func (a *attendanceRepository) ListOpenThrough(ctx context.Context, date string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE date <= $1
		  AND clock_out IS NULL
		ORDER BY date, user_id
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query open attendance records: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// CloseIfOpen implements attendance.Repository. The WHERE clock_out IS NULL
// predicate is what makes concurrent sweeps safe: the second closer matches
// zero rows.
func (a *attendanceRepository) CloseIfOpen(ctx context.Context, id string, clockOut int, workMinutes int, device string) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET clock_out = $2,
		    work_minutes = $3,
		    device = $4,
		    updated_at = NOW()
		WHERE id = $1
		  AND clock_out IS NULL
	`

	tag, err := q.Exec(ctx, query, id, timeutil.FormatClock(clockOut), workMinutes, device)
	if err != nil {
		return false, fmt.Errorf("failed to close attendance record: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Update implements attendance.Repository. Full overwrite; a manual edit
// racing the auto-close sweep resolves last-write-wins.
func (a *attendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET clock_in = $2,
		    clock_out = $3,
		    work_minutes = $4,
		    device = $5,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		rec.ID,
		timeutil.FormatClock(rec.ClockIn),
		clockTextOrNil(rec.ClockOut),
		rec.WorkMinutes,
		rec.Device,
	).Scan(&updatedID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to update attendance record: %w", err)
	}

	return nil
}

// ListByDateRange implements attendance.Repository.
func (a *attendanceRepository) ListByDateRange(ctx context.Context, from, to string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE date >= $1
		  AND date <= $2
		ORDER BY date, user_id
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

func scanAttendanceRow(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	var clockIn string
	var clockOut *string

	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Date, &clockIn, &clockOut, &rec.WorkMinutes,
		&rec.Device, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return attendance.Record{}, err
	}

	if rec.ClockIn, err = timeutil.ParseClock(clockIn); err != nil {
		return attendance.Record{}, fmt.Errorf("failed to parse stored clock-in: %w", err)
	}
	if clockOut != nil {
		out, err := timeutil.ParseClock(*clockOut)
		if err != nil {
			return attendance.Record{}, fmt.Errorf("failed to parse stored clock-out: %w", err)
		}
		rec.ClockOut = &out
	}

	return rec, nil
}

func scanAttendanceRows(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendanceRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func clockTextOrNil(minute *int) *string {
	if minute == nil {
		return nil
	}
	s := timeutil.FormatClock(*minute)
	return &s
}
