package trace_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/isa-tools/console/domain"
	"github.com/isa-tools/console/trace"
)

func TestBuildDebuggerData(t *testing.T) {
	user := traceMsg("u1", domain.RoleUser, 0)
	user.Content = "Can you help with my bill?"

	assistant := traceMsg("a1", domain.RoleAssistant, 10*time.Second)
	assistant.AssistantID = domain.CoreAssistantID
	assistant.Parts = []domain.MessagePart{
		{Type: domain.PartMarkdown, Content: "Sure, here is what I found."},
	}

	conversation := &domain.Conversation{
		ID:       "conv-1",
		Messages: []domain.ConversationMessage{user, assistant},
		Metadata: &domain.ConversationMetadata{
			ISA: &domain.ConversationChannel{
				Destination: &domain.ConversationDestination{To: []string{"customer@example.com"}},
			},
		},
	}

	data := trace.BuildDebuggerData(conversation, "a1")

	assert.Equal(t, "conv-1", data.ConversationID)
	assert.Equal(t, "a1", data.MessageID)
	assert.Equal(t, "customer@example.com", data.UserEmail)
	assert.Len(t, data.Assistants, 1)
	assert.Equal(t, "Can you help with my bill?", data.Assistants[0].Input)
	assert.Equal(t, "Sure, here is what I found.", data.GeneratedOutput)
	assert.NotNil(t, data.ToolUsages)
	assert.Empty(t, data.ToolUsages)
}

func TestBuildDebuggerDataUnknownTarget(t *testing.T) {
	conversation := &domain.Conversation{
		ID:       "conv-1",
		Messages: []domain.ConversationMessage{traceMsg("u1", domain.RoleUser, 0)},
	}

	data := trace.BuildDebuggerData(conversation, "missing")

	assert.Empty(t, data.Assistants)
	assert.Empty(t, data.Guardrails)
	assert.Equal(t, "", data.GuardrailReason)
	assert.Equal(t, 0.0, data.GuardrailScore)
	assert.Equal(t, "", data.GeneratedOutput)
	assert.Empty(t, data.KnowledgeGroups)
	assert.Equal(t, "unknown@example.com", data.UserEmail)
}

func TestBuildDebuggerDataNoMetadata(t *testing.T) {
	conversation := &domain.Conversation{ID: "conv-1"}

	data := trace.BuildDebuggerData(conversation, "x")
	assert.Equal(t, "unknown@example.com", data.UserEmail)
}
