package domain

// AssistantTrace is one row of the rendered execution trace: an
// ASSISTANT-role message normalized into input/output/schema form.
type AssistantTrace struct {
	Name               string   `json:"name"`
	MessageID          string   `json:"messageId"`
	Input              string   `json:"input"`
	SystemPrompt       string   `json:"systemPrompt"`
	OutputFormat       string   `json:"outputFormat"`
	Output             string   `json:"output"`
	KnowledgeUsed      []string `json:"knowledgeUsed"`
	ToolsUsed          []string `json:"toolsUsed"`
	ToolsAvailable     []string `json:"toolsAvailable"`
	KnowledgeAvailable []string `json:"knowledgeAvailable"`
}

// GuardrailCheck is one named quality check extracted from the guardrail
// assistant's structured output. Only ids present in the guardrail
// definition table are ever surfaced.
type GuardrailCheck struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      bool    `json:"status"`
	Score       float64 `json:"score,omitempty"`
	Reason      string  `json:"reason,omitempty"`
}

// KnowledgeChunk is one retrieved snippet inside a knowledge group.
type KnowledgeChunk struct {
	Title   string `json:"title"`
	Preview string `json:"preview"`
	URI     string `json:"uri,omitempty"`
}

// KnowledgeGroup aggregates knowledge chunks by source name across a
// message window. Chunks keep encounter order; no deduplication.
type KnowledgeGroup struct {
	SourceName string           `json:"sourceName"`
	Chunks     []KnowledgeChunk `json:"chunks"`
}

// ToolUsage is one correlated tool call recovered from the analytics
// event stream. Output holds parsed JSON when the event output decodes,
// otherwise the raw string.
type ToolUsage struct {
	ToolID   string         `json:"toolId"`
	ToolName string         `json:"toolName"`
	UsedBy   string         `json:"usedBy"`
	Input    map[string]any `json:"input"`
	Output   any            `json:"output"`
}

// DebuggerData is the assembled view model for one debug request.
type DebuggerData struct {
	ConversationID  string           `json:"conversationId"`
	MessageID       string           `json:"messageId"`
	Assistants      []AssistantTrace `json:"assistants"`
	UserEmail       string           `json:"userEmail"`
	Guardrails      []GuardrailCheck `json:"guardrails"`
	GuardrailReason string           `json:"guardrailReason"`
	GuardrailScore  float64          `json:"guardrailScore"`
	GeneratedOutput string           `json:"generatedOutput"`
	KnowledgeGroups []KnowledgeGroup `json:"knowledgeGroups"`
	ToolUsages      []ToolUsage      `json:"toolUsages"`
}
