package breakrule

import (
	"context"
)

// Service defines administration of the break rule set.
type Service interface {
	// CreateRule creates a rule; the window must have positive duration.
	CreateRule(ctx context.Context, req CreateRuleRequest) (RuleResponse, error)

	// UpdateRule edits a rule. Disabling happens here via the active
	// flag; rules are never deleted so history stays explainable.
	UpdateRule(ctx context.Context, req UpdateRuleRequest) (RuleResponse, error)

	// ListRules retrieves all rules.
	ListRules(ctx context.Context) ([]RuleResponse, error)
}
