package trace

import (
	"encoding/json"
	"strings"

	"github.com/isa-tools/console/domain"
)

// ExtractToolUsages joins the window's run ids against the analytics event
// stream and recovers every TOOL_CALL made during those runs. Messages
// without a run id contribute nothing to the join.
func ExtractToolUsages(window []domain.ConversationMessage, events []domain.Event) []domain.ToolUsage {
	runIDs := map[string]bool{}
	for _, msg := range window {
		if msg.RunID != "" {
			runIDs[msg.RunID] = true
		}
	}

	usages := []domain.ToolUsage{}
	for _, event := range events {
		if event.Type != domain.EventToolCall || !runIDs[event.RunID] {
			continue
		}

		toolID := event.Values.ToolID
		if toolID == "" {
			toolID = "unknown-tool"
		}

		usedBy := event.AssistantID
		if usedBy == "" && event.Values.Context != nil && event.Values.Context.Caller != nil {
			usedBy = event.Values.Context.Caller.ID
		}
		if usedBy == "" {
			usedBy = "Unknown Assistant"
		}

		input := event.Values.Input
		if input == nil {
			input = map[string]any{}
		}

		output, _ := DecodeJSONValue(event.Values.Output)

		usages = append(usages, domain.ToolUsage{
			ToolID:   toolID,
			ToolName: FormatToolName(toolID),
			UsedBy:   usedBy,
			Input:    input,
			Output:   output,
		})
	}

	return usages
}

// DecodeJSONValue attempts to decode raw as JSON. The second return reports
// which branch was taken: the decoded value on success, the raw string
// untouched on failure.
func DecodeJSONValue(raw string) (any, bool) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw, false
	}
	return v, true
}

// FormatToolName turns a tool id like "isa-web-search" into "Web Search".
func FormatToolName(toolID string) string {
	name := strings.TrimPrefix(toolID, "isa-")
	words := strings.Split(name, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
