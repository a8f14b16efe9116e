package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/prodtrack/timecore-backend-go/internal/domain/breakrule"
	"github.com/prodtrack/timecore-backend-go/internal/pkg/database"
	"github.com/prodtrack/timecore-backend-go/internal/pkg/timeutil"
)

type breakRuleRepository struct {
	db *database.DB
}

func NewBreakRuleRepository(db *database.DB) breakrule.Repository {
	return &breakRuleRepository{db: db}
}

const breakRuleColumns = `
	id, name, start_clock, end_clock, active, created_at, updated_at
`

// Create implements breakrule.Repository.
func (b *breakRuleRepository) Create(ctx context.Context, rule breakrule.Rule) (breakrule.Rule, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		INSERT INTO break_rules (
			name, start_clock, end_clock, active
		) VALUES (
			$1, $2, $3, $4
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rule.Name,
		timeutil.FormatClock(rule.Start),
		timeutil.FormatClock(rule.End),
		rule.Active,
	).Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt)

	if err != nil {
		return breakrule.Rule{}, fmt.Errorf("failed to create break rule: %w", err)
	}

	return rule, nil
}

// GetByID implements breakrule.Repository.
func (b *breakRuleRepository) GetByID(ctx context.Context, id string) (breakrule.Rule, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT ` + breakRuleColumns + `
		FROM break_rules
		WHERE id = $1
	`

	rule, err := scanBreakRuleRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return breakrule.Rule{}, breakrule.ErrRuleNotFound
		}
		return breakrule.Rule{}, fmt.Errorf("failed to get break rule by ID: %w", err)
	}

	return rule, nil
}

// Update implements breakrule.Repository.
func (b *breakRuleRepository) Update(ctx context.Context, rule breakrule.Rule) error {
	q := GetQuerier(ctx, b.db)

	query := `
		UPDATE break_rules
		SET name = $2,
		    start_clock = $3,
		    end_clock = $4,
		    active = $5,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		rule.ID,
		rule.Name,
		timeutil.FormatClock(rule.Start),
		timeutil.FormatClock(rule.End),
		rule.Active,
	).Scan(&updatedID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return breakrule.ErrRuleNotFound
		}
		return fmt.Errorf("failed to update break rule: %w", err)
	}

	return nil
}

// List implements breakrule.Repository.
func (b *breakRuleRepository) List(ctx context.Context) ([]breakrule.Rule, error) {
	return b.list(ctx, `SELECT `+breakRuleColumns+` FROM break_rules ORDER BY start_clock`)
}

// ListActive implements breakrule.Repository.
func (b *breakRuleRepository) ListActive(ctx context.Context) ([]breakrule.Rule, error) {
	return b.list(ctx, `SELECT `+breakRuleColumns+` FROM break_rules WHERE active ORDER BY start_clock`)
}

func (b *breakRuleRepository) list(ctx context.Context, query string) ([]breakrule.Rule, error) {
	q := GetQuerier(ctx, b.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query break rules: %w", err)
	}
	defer rows.Close()

	var rules []breakrule.Rule
	for rows.Next() {
		rule, err := scanBreakRuleRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan break rule: %w", err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func scanBreakRuleRow(row pgx.Row) (breakrule.Rule, error) {
	var rule breakrule.Rule
	var start, end string

	err := row.Scan(
		&rule.ID, &rule.Name, &start, &end, &rule.Active,
		&rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		return breakrule.Rule{}, err
	}

	if rule.Start, err = timeutil.ParseClock(start); err != nil {
		return breakrule.Rule{}, fmt.Errorf("failed to parse stored break start: %w", err)
	}
	if rule.End, err = timeutil.ParseClock(end); err != nil {
		return breakrule.Rule{}, fmt.Errorf("failed to parse stored break end: %w", err)
	}

	return rule, nil
}
