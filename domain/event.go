package domain

import "time"

// CallerRef identifies one side of an event's caller context.
type CallerRef struct {
	Type string `json:"type,omitempty"`
	ID   string `json:"id,omitempty"`
}

// EventContext carries the caller/called pair of an analytics event.
type EventContext struct {
	Caller *CallerRef `json:"caller,omitempty"`
	Called *CallerRef `json:"called,omitempty"`
}

// EventValues is the open payload of an analytics event.
// Output is a string on the wire and may itself contain JSON.
type EventValues struct {
	ToolID  string         `json:"toolId,omitempty"`
	Context *EventContext  `json:"context,omitempty"`
	Input   map[string]any `json:"input,omitempty"`
	Output  string         `json:"output,omitempty"`
	Tokens  int            `json:"tokens,omitempty"`
	Options map[string]any `json:"options,omitempty"`
}

// Event is one analytics event emitted during a backend execution run.
type Event struct {
	ID               string      `json:"id"`
	CreatedAt        time.Time   `json:"createdAt"`
	RunID            string      `json:"runId"`
	Type             EventType   `json:"type"`
	AssistantID      string      `json:"assistantId,omitempty"`
	Depth            int         `json:"depth,omitempty"`
	ElapsedTime      int64       `json:"elapsedTime,omitempty"`
	PromptTokens     int         `json:"promptTokens,omitempty"`
	CompletionTokens int         `json:"completionTokens,omitempty"`
	TotalTokens      int         `json:"totalTokens,omitempty"`
	Values           EventValues `json:"values"`
}
