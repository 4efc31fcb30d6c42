// Package domain defines the core domain models for the console.
package domain

// MessageRole identifies who authored a conversation message.
type MessageRole string

const (
	RoleUser      MessageRole = "USER"
	RoleAssistant MessageRole = "ASSISTANT"
)

// PartType identifies the kind of a message content fragment.
type PartType string

const (
	PartStructuredOutput PartType = "STRUCTURED_OUTPUT"
	PartMarkdown         PartType = "MARKDOWN"
)

// EventType identifies the kind of an analytics event.
type EventType string

const (
	EventToolCall EventType = "TOOL_CALL"
	EventLLMCall  EventType = "LLM_CALL"
)

// Well-known assistant ids in the email pipeline.
const (
	CoreAssistantID       = "isa-core-assistant"
	GuardrailAssistantID  = "isa-guardrail-assistant"
	EscalationAssistantID = "isa-escalation-assistant"
)

// ConversationStatus values carried in conversation metadata.
const (
	StatusRespond   = "RESPOND"
	StatusFollowUp  = "FOLLOW_UP"
	StatusEscalate  = "ESCALATE"
	StatusEscalated = "ESCALATED"
	StatusComplete  = "COMPLETE"
)
