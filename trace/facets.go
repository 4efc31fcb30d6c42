package trace

import "github.com/isa-tools/console/domain"

// ExtractGeneratedOutput returns the human-visible reply produced by the
// core assistant: the first MARKDOWN part of its last ASSISTANT message,
// falling back to the message's plain content. No core-assistant message
// in the window yields an empty string.
func ExtractGeneratedOutput(window []domain.ConversationMessage) string {
	var last *domain.ConversationMessage
	for i := range window {
		if window[i].Role == domain.RoleAssistant && window[i].AssistantID == domain.CoreAssistantID {
			last = &window[i]
		}
	}
	if last == nil {
		return ""
	}

	for _, part := range last.Parts {
		if part.Type == domain.PartMarkdown && part.Content != "" {
			return part.Content
		}
	}
	return last.Content
}

// ExtractKnowledgeGroups aggregates retrieved knowledge across every message
// in the window, grouped by source name. Chunks keep encounter order and
// same-named groups from different messages merge; nothing is deduplicated.
func ExtractKnowledgeGroups(window []domain.ConversationMessage) []domain.KnowledgeGroup {
	groups := []domain.KnowledgeGroup{}
	index := map[string]int{}

	for _, msg := range window {
		for _, k := range msg.Knowledge {
			name := k.SourceName
			if name == "" {
				name = "Unknown Source"
			}
			chunk := domain.KnowledgeChunk{
				Title:   k.Title,
				Preview: k.Preview,
				URI:     k.URI,
			}
			if at, ok := index[name]; ok {
				groups[at].Chunks = append(groups[at].Chunks, chunk)
			} else {
				index[name] = len(groups)
				groups = append(groups, domain.KnowledgeGroup{
					SourceName: name,
					Chunks:     []domain.KnowledgeChunk{chunk},
				})
			}
		}
	}

	return groups
}
