package breakrule

// CreateRuleRequest creates a break rule. Start and End are "HH:MM".
type CreateRuleRequest struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// UpdateRuleRequest edits a break rule. Nil fields are left unchanged.
type UpdateRuleRequest struct {
	ID     string  `json:"id"`
	Name   *string `json:"name"`
	Start  *string `json:"start"`
	End    *string `json:"end"`
	Active *bool   `json:"active"`
}

// RuleResponse is the wire shape of a break rule.
type RuleResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"duration_minutes"`
	Active          bool   `json:"active"`
}
