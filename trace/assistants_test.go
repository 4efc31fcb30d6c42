package trace_test

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/isa-tools/console/domain"
	"github.com/isa-tools/console/trace"
)

func traceMsg(id string, role domain.MessageRole, offset time.Duration) domain.ConversationMessage {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return domain.ConversationMessage{ID: id, Role: role, CreatedAt: base.Add(offset)}
}

func TestExtractAssistantTurns(t *testing.T) {
	user := traceMsg("u1", domain.RoleUser, 0)
	user.Content = "<p>Hello <b>there</b></p>"

	assistant := traceMsg("a1", domain.RoleAssistant, 5*time.Second)
	assistant.AssistantID = domain.CoreAssistantID
	assistant.Parts = []domain.MessagePart{
		{Type: domain.PartMarkdown, Content: "Hi!"},
	}
	assistant.Knowledge = []domain.RetrievedKnowledge{
		{SourceName: "Docs", Title: "t", Preview: "p"},
	}

	entries := trace.ExtractAssistantTurns([]domain.ConversationMessage{user, assistant})
	assert.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, domain.CoreAssistantID, entry.Name)
	assert.Equal(t, "a1", entry.MessageID)
	assert.Equal(t, "Hello there", entry.Input)
	assert.Equal(t, "Hi!", entry.Output)
	assert.Equal(t, "{}", entry.OutputFormat)
	assert.Equal(t, []string{"Docs"}, entry.KnowledgeUsed)
	assert.Equal(t, []string{"Docs"}, entry.KnowledgeAvailable)
	assert.Empty(t, entry.ToolsUsed)
	assert.Empty(t, entry.ToolsAvailable)
}

func TestExtractAssistantTurnsUnknownAssistant(t *testing.T) {
	assistant := traceMsg("a1", domain.RoleAssistant, 0)
	assistant.Content = "own content"

	entries := trace.ExtractAssistantTurns([]domain.ConversationMessage{assistant})
	assert.Len(t, entries, 1)
	assert.Equal(t, "unknown-assistant", entries[0].Name)
	assert.Equal(t, "own content", entries[0].Input)
}

func TestExtractAssistantTurnsStructuredOutput(t *testing.T) {
	assistant := traceMsg("a1", domain.RoleAssistant, 0)
	assistant.AssistantID = domain.GuardrailAssistantID
	assistant.Parts = []domain.MessagePart{
		{Type: domain.PartStructuredOutput, Data: map[string]any{"allowed": true}},
	}

	entries := trace.ExtractAssistantTurns([]domain.ConversationMessage{assistant})
	assert.Len(t, entries, 1)
	assert.Contains(t, entries[0].Output, `"allowed": true`)
	assert.Contains(t, entries[0].OutputFormat, `"boolean"`)
}

func TestExtractAssistantTurnsLastPartWins(t *testing.T) {
	assistant := traceMsg("a1", domain.RoleAssistant, 0)
	assistant.AssistantID = domain.CoreAssistantID
	assistant.Parts = []domain.MessagePart{
		{Type: domain.PartStructuredOutput, Data: map[string]any{"allowed": true}},
		{Type: domain.PartMarkdown, Content: "final text"},
	}

	entries := trace.ExtractAssistantTurns([]domain.ConversationMessage{assistant})
	assert.Equal(t, "final text", entries[0].Output)
	// The structured part still set the schema before markdown overwrote the output.
	assert.Contains(t, entries[0].OutputFormat, "structured_output")
}

func TestExtractAssistantTurnsNoParts(t *testing.T) {
	assistant := traceMsg("a1", domain.RoleAssistant, 0)
	assistant.AssistantID = domain.CoreAssistantID

	entries := trace.ExtractAssistantTurns([]domain.ConversationMessage{assistant})
	assert.Equal(t, "", entries[0].Output)
	assert.Equal(t, "{}", entries[0].OutputFormat)
}

func TestExtractAssistantTurnsInputTruncated(t *testing.T) {
	user := traceMsg("u1", domain.RoleUser, 0)
	user.Content = strings.Repeat("x", 5000)

	assistant := traceMsg("a1", domain.RoleAssistant, time.Second)
	assistant.AssistantID = domain.CoreAssistantID

	entries := trace.ExtractAssistantTurns([]domain.ConversationMessage{user, assistant})
	assert.Len(t, entries[0].Input, 2000)
}

func TestExtractAssistantTurnsInputTruncatedMultibyte(t *testing.T) {
	user := traceMsg("u1", domain.RoleUser, 0)
	user.Content = strings.Repeat("中", 3000)

	assistant := traceMsg("a1", domain.RoleAssistant, time.Second)
	assistant.AssistantID = domain.CoreAssistantID

	entries := trace.ExtractAssistantTurns([]domain.ConversationMessage{user, assistant})
	input := entries[0].Input
	assert.True(t, utf8.ValidString(input))
	assert.Equal(t, 2000, utf8.RuneCountInString(input))
}

func TestExtractAssistantTurnsKnowledgeUnion(t *testing.T) {
	a1 := traceMsg("a1", domain.RoleAssistant, 0)
	a1.AssistantID = domain.CoreAssistantID
	a1.Knowledge = []domain.RetrievedKnowledge{{SourceName: "Docs"}}

	a2 := traceMsg("a2", domain.RoleAssistant, time.Second)
	a2.AssistantID = domain.GuardrailAssistantID
	a2.Knowledge = []domain.RetrievedKnowledge{{SourceName: "FAQ"}}

	entries := trace.ExtractAssistantTurns([]domain.ConversationMessage{a1, a2})
	assert.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, []string{"Docs", "FAQ"}, entry.KnowledgeAvailable)
	}
	assert.Equal(t, []string{"Docs"}, entries[0].KnowledgeUsed)
	assert.Equal(t, []string{"FAQ"}, entries[1].KnowledgeUsed)
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Hello world", trace.StripHTML("<div>Hello   <span>world</span></div>"))
	assert.Equal(t, "plain", trace.StripHTML("plain"))
}
