package trace

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/isa-tools/console/domain"
)

// maxInputLength caps the rendered input column of a trace entry.
const maxInputLength = 2000

var (
	htmlTagRE    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// ExtractAssistantTurns maps every ASSISTANT message in the window to a
// normalized trace entry. The entry's input comes from the immediately
// preceding window message, falling back to the message's own content.
// KnowledgeAvailable on every entry is the union of knowledge source names
// seen across the window; tools columns are filled later by enrichment.
func ExtractAssistantTurns(window []domain.ConversationMessage) []domain.AssistantTrace {
	allKnowledge := []string{}
	seenKnowledge := map[string]bool{}

	entries := []domain.AssistantTrace{}
	for i, msg := range window {
		if msg.Role != domain.RoleAssistant {
			continue
		}

		name := msg.AssistantID
		if name == "" {
			name = "unknown-assistant"
		}

		input := msg.Content
		if i > 0 && window[i-1].Content != "" {
			input = window[i-1].Content
		}

		output := ""
		outputFormat := "{}"
		for _, part := range msg.Parts {
			switch {
			case part.Type == domain.PartStructuredOutput && part.Data != nil:
				if pretty, err := json.MarshalIndent(part.Data, "", "  "); err == nil {
					output = string(pretty)
				}
				outputFormat = InferSchema(part.Data)
			case part.Type == domain.PartMarkdown && part.Content != "":
				output = part.Content
			}
		}

		knowledgeUsed := []string{}
		for _, k := range msg.Knowledge {
			kname := knowledgeName(k)
			knowledgeUsed = append(knowledgeUsed, kname)
			if !seenKnowledge[kname] {
				seenKnowledge[kname] = true
				allKnowledge = append(allKnowledge, kname)
			}
		}

		entries = append(entries, domain.AssistantTrace{
			Name:               name,
			MessageID:          msg.ID,
			Input:              truncate(StripHTML(input), maxInputLength),
			SystemPrompt:       "",
			OutputFormat:       outputFormat,
			Output:             output,
			KnowledgeUsed:      knowledgeUsed,
			ToolsUsed:          []string{},
			ToolsAvailable:     []string{},
			KnowledgeAvailable: []string{},
		})
	}

	for i := range entries {
		entries[i].KnowledgeAvailable = append([]string{}, allKnowledge...)
	}

	return entries
}

func knowledgeName(k domain.RetrievedKnowledge) string {
	if k.SourceName != "" {
		return k.SourceName
	}
	if k.SourceID != "" {
		return k.SourceID
	}
	return "Unknown Source"
}

// StripHTML removes tags and collapses whitespace for plain-text display.
func StripHTML(s string) string {
	s = htmlTagRE.ReplaceAllString(s, " ")
	s = whitespaceRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// truncate cuts s to at most n characters, never splitting a rune.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
