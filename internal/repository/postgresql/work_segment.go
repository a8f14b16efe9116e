package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/prodtrack/timecore-backend-go/internal/domain/worklog"
	"github.com/prodtrack/timecore-backend-go/internal/pkg/database"
)

type workSegmentRepository struct {
	db *database.DB
}

func NewWorkSegmentRepository(db *database.DB) worklog.Repository {
	return &workSegmentRepository{db: db}
}

const workSegmentColumns = `
	id, user_id, job_id, process_id, start_at, end_at, description,
	created_at, updated_at
`

// Create implements worklog.Repository.
func (w *workSegmentRepository) Create(ctx context.Context, seg worklog.Segment) (worklog.Segment, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		INSERT INTO work_segments (
			user_id, job_id, process_id, start_at, end_at, description
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		seg.UserID,
		seg.JobID,
		seg.ProcessID,
		seg.Start,
		seg.End,
		seg.Description,
	).Scan(&seg.ID, &seg.CreatedAt, &seg.UpdatedAt)

	if err != nil {
		return worklog.Segment{}, fmt.Errorf("failed to create work segment: %w", err)
	}

	return seg, nil
}

// GetByID implements worklog.Repository.
func (w *workSegmentRepository) GetByID(ctx context.Context, id string) (worklog.Segment, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT ` + workSegmentColumns + `
		FROM work_segments
		WHERE id = $1
	`

	var seg worklog.Segment
	err := q.QueryRow(ctx, query, id).Scan(
		&seg.ID, &seg.UserID, &seg.JobID, &seg.ProcessID, &seg.Start, &seg.End,
		&seg.Description, &seg.CreatedAt, &seg.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return worklog.Segment{}, worklog.ErrSegmentNotFound
		}
		return worklog.Segment{}, fmt.Errorf("failed to get work segment by ID: %w", err)
	}

	return seg, nil
}

// Update implements worklog.Repository.
func (w *workSegmentRepository) Update(ctx context.Context, seg worklog.Segment) error {
	q := GetQuerier(ctx, w.db)

	query := `
		UPDATE work_segments
		SET job_id = $2,
		    process_id = $3,
		    start_at = $4,
		    end_at = $5,
		    description = $6,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		seg.ID, seg.JobID, seg.ProcessID, seg.Start, seg.End, seg.Description,
	).Scan(&updatedID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return worklog.ErrSegmentNotFound
		}
		return fmt.Errorf("failed to update work segment: %w", err)
	}

	return nil
}

// Delete implements worklog.Repository.
func (w *workSegmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, w.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_segments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete work segment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worklog.ErrSegmentNotFound
	}

	return nil
}

// ListByUserBetween implements worklog.Repository.
func (w *workSegmentRepository) ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]worklog.Segment, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT ` + workSegmentColumns + `
		FROM work_segments
		WHERE user_id = $1
		  AND start_at >= $2
		  AND start_at < $3
		ORDER BY start_at
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query work segments: %w", err)
	}
	defer rows.Close()

	return scanWorkSegments(rows)
}

// ListBetween implements worklog.Repository.
func (w *workSegmentRepository) ListBetween(ctx context.Context, from, to time.Time) ([]worklog.Segment, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT ` + workSegmentColumns + `
		FROM work_segments
		WHERE start_at >= $1
		  AND start_at < $2
		ORDER BY user_id, start_at
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query work segments: %w", err)
	}
	defer rows.Close()

	return scanWorkSegments(rows)
}

func scanWorkSegments(rows pgx.Rows) ([]worklog.Segment, error) {
	var segments []worklog.Segment
	for rows.Next() {
		var seg worklog.Segment
		err := rows.Scan(
			&seg.ID, &seg.UserID, &seg.JobID, &seg.ProcessID, &seg.Start, &seg.End,
			&seg.Description, &seg.CreatedAt, &seg.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work segment: %w", err)
		}
		segments = append(segments, seg)
	}
	return segments, nil
}
