package policy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isa-tools/console/policy"
)

func TestEvaluateDefaultPolicy(t *testing.T) {
	ctx := context.Background()
	engine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input policy.AccessInput
		want  string
	}{
		{
			name:  "admin allowed everywhere",
			input: policy.AccessInput{UserID: "u1", Role: "admin", Campaign: "camp-1"},
			want:  "allow",
		},
		{
			name:  "member allowed on assigned campaign",
			input: policy.AccessInput{UserID: "u2", Role: "member", Campaign: "camp-1", Campaigns: []string{"camp-1", "camp-2"}},
			want:  "allow",
		},
		{
			name:  "member denied on unassigned campaign",
			input: policy.AccessInput{UserID: "u2", Role: "member", Campaign: "camp-3", Campaigns: []string{"camp-1"}},
			want:  "deny",
		},
		{
			name:  "unknown role denied",
			input: policy.AccessInput{UserID: "u3", Role: "viewer", Campaign: "camp-1", Campaigns: []string{"camp-1"}},
			want:  "deny",
		},
		{
			name:  "empty input denied",
			input: policy.AccessInput{},
			want:  "deny",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := engine.Evaluate(ctx, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, decision)
		})
	}
}

func TestNewEngineInvalidPolicy(t *testing.T) {
	_, err := policy.NewEngine(context.Background(), "this is not rego")
	assert.Error(t, err)
}
