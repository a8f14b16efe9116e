package breakrule

import (
	"context"
	"fmt"

	"github.com/prodtrack/timecore-backend-go/internal/domain/breakrule"
	"github.com/prodtrack/timecore-backend-go/internal/pkg/timeutil"
)

type BreakRuleServiceImpl struct {
	ruleRepo breakrule.Repository
}

func NewBreakRuleService(ruleRepo breakrule.Repository) breakrule.Service {
	return &BreakRuleServiceImpl{ruleRepo: ruleRepo}
}

// CreateRule implements breakrule.Service.
func (b *BreakRuleServiceImpl) CreateRule(ctx context.Context, req breakrule.CreateRuleRequest) (breakrule.RuleResponse, error) {
	start, err := timeutil.ParseClock(req.Start)
	if err != nil {
		return breakrule.RuleResponse{}, err
	}
	end, err := timeutil.ParseClock(req.End)
	if err != nil {
		return breakrule.RuleResponse{}, err
	}

	rule := breakrule.Rule{
		Name:   req.Name,
		Start:  start,
		End:    end,
		Active: true,
	}
	if rule.DurationMinutes() <= 0 {
		return breakrule.RuleResponse{}, breakrule.ErrInvalidDuration
	}

	created, err := b.ruleRepo.Create(ctx, rule)
	if err != nil {
		return breakrule.RuleResponse{}, fmt.Errorf("failed to create break rule: %w", err)
	}

	return toRuleResponse(created), nil
}

// UpdateRule implements breakrule.Service. Rules are disabled here via the
// active flag, never removed, so past computations stay explainable.
func (b *BreakRuleServiceImpl) UpdateRule(ctx context.Context, req breakrule.UpdateRuleRequest) (breakrule.RuleResponse, error) {
	rule, err := b.ruleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return breakrule.RuleResponse{}, err
	}

	if req.Name != nil {
		rule.Name = *req.Name
	}
	if req.Start != nil {
		if rule.Start, err = timeutil.ParseClock(*req.Start); err != nil {
			return breakrule.RuleResponse{}, err
		}
	}
	if req.End != nil {
		if rule.End, err = timeutil.ParseClock(*req.End); err != nil {
			return breakrule.RuleResponse{}, err
		}
	}
	if req.Active != nil {
		rule.Active = *req.Active
	}

	if rule.DurationMinutes() <= 0 {
		return breakrule.RuleResponse{}, breakrule.ErrInvalidDuration
	}

	if err := b.ruleRepo.Update(ctx, rule); err != nil {
		return breakrule.RuleResponse{}, err
	}

	return toRuleResponse(rule), nil
}

// ListRules implements breakrule.Service.
func (b *BreakRuleServiceImpl) ListRules(ctx context.Context) ([]breakrule.RuleResponse, error) {
	rules, err := b.ruleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]breakrule.RuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, toRuleResponse(rule))
	}
	return responses, nil
}

func toRuleResponse(rule breakrule.Rule) breakrule.RuleResponse {
	return breakrule.RuleResponse{
		ID:              rule.ID,
		Name:            rule.Name,
		Start:           timeutil.FormatClock(rule.Start),
		End:             timeutil.FormatClock(rule.End),
		DurationMinutes: rule.DurationMinutes(),
		Active:          rule.Active,
	}
}
