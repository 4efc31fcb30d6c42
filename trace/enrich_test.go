package trace_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/isa-tools/console/domain"
	"github.com/isa-tools/console/trace"
)

type fakeFetcher struct {
	configs map[string]*domain.AssistantConfig
	err     error
	calls   atomic.Int32
}

func (f *fakeFetcher) GetAssistantConfig(ctx context.Context, assistantID string) (*domain.AssistantConfig, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.configs[assistantID], nil
}

func TestEnrichAssistants(t *testing.T) {
	fetcher := &fakeFetcher{configs: map[string]*domain.AssistantConfig{
		domain.CoreAssistantID: {
			ID:           domain.CoreAssistantID,
			PromptSuffix: "You draft replies.",
			ToolInstances: []domain.ToolInstance{
				{Tool: domain.Tool{ID: "isa-web-search"}},
				{Tool: domain.Tool{Name: "crm-lookup"}},
			},
			KnowledgeSources: []domain.KnowledgeSource{
				{ID: "ks-docs"},
				{Name: "faq"},
			},
		},
	}}

	entries := []domain.AssistantTrace{
		{Name: domain.CoreAssistantID, MessageID: "m1"},
		{Name: domain.CoreAssistantID, MessageID: "m2"},
	}
	events := []domain.Event{
		{RunID: "r1", Type: domain.EventToolCall, AssistantID: domain.CoreAssistantID, Values: domain.EventValues{ToolID: "isa-web-search"}},
		{RunID: "r1", Type: domain.EventToolCall, AssistantID: domain.CoreAssistantID, Values: domain.EventValues{ToolID: "isa-web-search"}},
		{RunID: "r1", Type: domain.EventToolCall, AssistantID: domain.CoreAssistantID, Values: domain.EventValues{ToolID: "isa-crm-lookup"}},
	}

	enriched := trace.EnrichAssistants(context.Background(), fetcher, entries, events)
	assert.Len(t, enriched, 2)

	// Config fetched once per distinct assistant, not per entry.
	assert.Equal(t, int32(1), fetcher.calls.Load())

	for _, entry := range enriched {
		assert.Equal(t, "You draft replies.", entry.SystemPrompt)
		assert.Equal(t, []string{"isa-web-search", "crm-lookup"}, entry.ToolsAvailable)
		assert.Equal(t, []string{"ks-docs", "faq"}, entry.KnowledgeAvailable)
		assert.Equal(t, []string{"isa-web-search", "isa-crm-lookup"}, entry.ToolsUsed)
	}
}

func TestEnrichAssistantsFetchFailureDegrades(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("upstream down")}

	entries := []domain.AssistantTrace{{Name: domain.CoreAssistantID}}
	enriched := trace.EnrichAssistants(context.Background(), fetcher, entries, nil)

	assert.Len(t, enriched, 1)
	assert.Equal(t, "", enriched[0].SystemPrompt)
	assert.Empty(t, enriched[0].ToolsAvailable)
	assert.Empty(t, enriched[0].KnowledgeAvailable)
	assert.Empty(t, enriched[0].ToolsUsed)
}

func TestEnrichAssistantsMissingConfig(t *testing.T) {
	fetcher := &fakeFetcher{configs: map[string]*domain.AssistantConfig{}}

	entries := []domain.AssistantTrace{{Name: "unknown-assistant"}}
	enriched := trace.EnrichAssistants(context.Background(), fetcher, entries, nil)

	assert.Len(t, enriched, 1)
	assert.Equal(t, "", enriched[0].SystemPrompt)
	assert.Empty(t, enriched[0].ToolsAvailable)
}

func TestEnrichAssistantsNoEntries(t *testing.T) {
	fetcher := &fakeFetcher{}
	enriched := trace.EnrichAssistants(context.Background(), fetcher, nil, nil)
	assert.Empty(t, enriched)
	assert.Equal(t, int32(0), fetcher.calls.Load())
}
