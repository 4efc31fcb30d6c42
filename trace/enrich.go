package trace

import (
	"context"
	"log"
	"sync"

	"github.com/isa-tools/console/domain"
)

// ConfigFetcher fetches static assistant configuration. A nil config with a
// nil error means the assistant has no retrievable config.
type ConfigFetcher interface {
	GetAssistantConfig(ctx context.Context, assistantID string) (*domain.AssistantConfig, error)
}

// EnrichAssistants overwrites each trace entry's system prompt, available
// tools/knowledge and used tools from the assistant configs and the event
// stream. Configs for all distinct assistants are fetched concurrently; a
// failed fetch degrades that one assistant to empty fields rather than
// failing the batch.
func EnrichAssistants(ctx context.Context, fetcher ConfigFetcher, entries []domain.AssistantTrace, events []domain.Event) []domain.AssistantTrace {
	ids := []string{}
	seen := map[string]bool{}
	for _, e := range entries {
		if !seen[e.Name] {
			seen[e.Name] = true
			ids = append(ids, e.Name)
		}
	}

	configs := make([]*domain.AssistantConfig, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			cfg, err := fetcher.GetAssistantConfig(ctx, id)
			if err != nil {
				log.Printf("WARN: failed to fetch assistant config for %s: %v", id, err)
				return
			}
			configs[i] = cfg
		}(i, id)
	}
	wg.Wait()

	configByID := map[string]*domain.AssistantConfig{}
	for i, id := range ids {
		if configs[i] != nil {
			configByID[id] = configs[i]
		}
	}

	toolsUsedByAssistant := map[string][]string{}
	for _, event := range events {
		if event.Type != domain.EventToolCall || event.AssistantID == "" {
			continue
		}
		toolID := event.Values.ToolID
		if toolID == "" {
			continue
		}
		used := toolsUsedByAssistant[event.AssistantID]
		if !containsString(used, toolID) {
			toolsUsedByAssistant[event.AssistantID] = append(used, toolID)
		}
	}

	enriched := make([]domain.AssistantTrace, len(entries))
	for i, entry := range entries {
		cfg := configByID[entry.Name]

		toolsAvailable := []string{}
		knowledgeAvailable := []string{}
		systemPrompt := ""
		if cfg != nil {
			for _, ti := range cfg.ToolInstances {
				toolsAvailable = append(toolsAvailable, firstNonEmpty(ti.Tool.ID, ti.Tool.Name, "unknown-tool"))
			}
			for _, ks := range cfg.KnowledgeSources {
				knowledgeAvailable = append(knowledgeAvailable, firstNonEmpty(ks.ID, ks.Name, "unknown-source"))
			}
			systemPrompt = cfg.PromptSuffix
		}

		toolsUsed := toolsUsedByAssistant[entry.Name]
		if toolsUsed == nil {
			toolsUsed = []string{}
		}

		entry.SystemPrompt = systemPrompt
		entry.ToolsAvailable = toolsAvailable
		entry.KnowledgeAvailable = knowledgeAvailable
		entry.ToolsUsed = toolsUsed
		enriched[i] = entry
	}

	return enriched
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
