package breakrule

import (
	"context"
)

// Repository defines data access methods for break rules.
type Repository interface {
	// Create creates a new break rule.
	Create(ctx context.Context, rule Rule) (Rule, error)

	// GetByID retrieves a rule by ID.
	GetByID(ctx context.Context, id string) (Rule, error)

	// Update overwrites name, window and active flag of an existing rule.
	Update(ctx context.Context, rule Rule) error

	// List retrieves all rules, active and disabled.
	List(ctx context.Context) ([]Rule, error)

	// ListActive retrieves the currently active rule set. All net-minute
	// computations use this set, for past and present days alike.
	ListActive(ctx context.Context) ([]Rule, error)
}
