package trace

import "github.com/isa-tools/console/domain"

// BuildDebuggerData runs the full extraction pipeline over one conversation
// for the given target message. An unknown target yields a payload with
// empty facets; callers treat that as a valid outcome, not a failure.
// Tool usages and config enrichment are applied separately once the
// analytics event stream is available.
func BuildDebuggerData(conversation *domain.Conversation, messageID string) domain.DebuggerData {
	window := WindowMessages(conversation.Messages, messageID)

	userEmail := "unknown@example.com"
	if meta := conversation.Metadata; meta != nil && meta.ISA != nil &&
		meta.ISA.Destination != nil && len(meta.ISA.Destination.To) > 0 {
		userEmail = meta.ISA.Destination.To[0]
	}

	guardrails := ExtractGuardrails(window)

	return domain.DebuggerData{
		ConversationID:  conversation.ID,
		MessageID:       messageID,
		Assistants:      ExtractAssistantTurns(window),
		UserEmail:       userEmail,
		Guardrails:      guardrails.Checks,
		GuardrailReason: guardrails.Reason,
		GuardrailScore:  guardrails.Score,
		GeneratedOutput: ExtractGeneratedOutput(window),
		KnowledgeGroups: ExtractKnowledgeGroups(window),
		ToolUsages:      []domain.ToolUsage{},
	}
}
