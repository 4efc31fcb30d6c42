// Package policy evaluates campaign access rules for console users.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// AccessInput is the input document for a campaign access decision.
type AccessInput struct {
	UserID    string   `json:"user_id"`
	Role      string   `json:"role"`
	Campaign  string   `json:"campaign"`
	Campaigns []string `json:"campaigns"`
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.campaign_access.decision"),
		rego.Module("campaign_access.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Evaluate decides whether a user may access a campaign.
// Returns "allow" or "deny"; the policy defines the default.
func (e *Engine) Evaluate(ctx context.Context, input AccessInput) (string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return "deny", nil
	}

	if s, ok := results[0].Expressions[0].Value.(string); ok {
		return s, nil
	}
	return "deny", nil
}

// DefaultPolicy grants admins every campaign and members only the
// campaigns assigned to them.
const DefaultPolicy = `
package campaign_access

default decision = "deny"

decision = "allow" {
	input.role == "admin"
}

decision = "allow" {
	input.role == "member"
	input.campaigns[_] == input.campaign
}
`
