package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/prodtrack/timecore-backend-go/internal/domain/issue"
	"github.com/prodtrack/timecore-backend-go/internal/pkg/database"
)

type issueClearRepository struct {
	db *database.DB
}

func NewIssueClearRepository(db *database.DB) issue.Repository {
	return &issueClearRepository{db: db}
}

// Create implements issue.Repository.
func (i *issueClearRepository) Create(ctx context.Context, clear issue.Clear) (issue.Clear, error) {
	q := GetQuerier(ctx, i.db)

	query := `
		INSERT INTO issue_clears (
			id, user_id, date, cleared_by, cleared_at
		) VALUES (
			$1, $2, $3, $4, $5
		) RETURNING id
	`

	err := q.QueryRow(ctx, query,
		clear.ID,
		clear.UserID,
		clear.Date,
		clear.ClearedBy,
		clear.ClearedAt,
	).Scan(&clear.ID)

	if err != nil {
		return issue.Clear{}, fmt.Errorf("failed to create issue clear: %w", err)
	}

	return clear, nil
}

// GetCurrent implements issue.Repository.
func (i *issueClearRepository) GetCurrent(ctx context.Context, userID string, date string, notBefore time.Time) (*issue.Clear, error) {
	q := GetQuerier(ctx, i.db)

	query := `
		SELECT id, user_id, date, cleared_by, cleared_at
		FROM issue_clears
		WHERE user_id = $1
		  AND date = $2
		  AND cleared_at >= $3
		ORDER BY cleared_at DESC
		LIMIT 1
	`

	var clear issue.Clear
	err := q.QueryRow(ctx, query, userID, date, notBefore).Scan(
		&clear.ID, &clear.UserID, &clear.Date, &clear.ClearedBy, &clear.ClearedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get issue clear: %w", err)
	}

	return &clear, nil
}

// ListCurrentByDateRange implements issue.Repository.
func (i *issueClearRepository) ListCurrentByDateRange(ctx context.Context, from, to string, notBefore time.Time) ([]issue.Clear, error) {
	q := GetQuerier(ctx, i.db)

	query := `
		SELECT id, user_id, date, cleared_by, cleared_at
		FROM issue_clears
		WHERE date >= $1
		  AND date <= $2
		  AND cleared_at >= $3
		ORDER BY date, user_id
	`

	rows, err := q.Query(ctx, query, from, to, notBefore)
	if err != nil {
		return nil, fmt.Errorf("failed to query issue clears: %w", err)
	}
	defer rows.Close()

	var clears []issue.Clear
	for rows.Next() {
		var clear issue.Clear
		err := rows.Scan(&clear.ID, &clear.UserID, &clear.Date, &clear.ClearedBy, &clear.ClearedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan issue clear: %w", err)
		}
		clears = append(clears, clear)
	}
	return clears, nil
}

// DeleteOlderThan implements issue.Repository.
func (i *issueClearRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, i.db)

	tag, err := q.Exec(ctx, `DELETE FROM issue_clears WHERE cleared_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge issue clears: %w", err)
	}

	return tag.RowsAffected(), nil
}
