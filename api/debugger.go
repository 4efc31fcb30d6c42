package api

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/isa-tools/console/trace"
)

// GetConversationDebug returns the execution trace for one message.
// GET /v1/conversations/:conversation_id/debug/:message_id
//
// Not-found conditions (unknown message, no guardrail output, no
// knowledge) are valid outcomes and render as empty facets; only upstream
// transport failures produce an error status.
func (h *Handler) GetConversationDebug(c echo.Context) error {
	ctx := c.Request().Context()
	conversationID := c.Param("conversation_id")
	messageID := c.Param("message_id")

	conversation, err := h.backend.GetConversation(ctx, conversationID)
	if err != nil {
		log.Printf("ERROR: failed to fetch conversation %s: %v", conversationID, err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "failed to fetch conversation"})
	}

	events, err := h.backend.GetConversationEvents(ctx, conversationID)
	if err != nil {
		log.Printf("ERROR: failed to fetch events for %s: %v", conversationID, err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "failed to fetch conversation events"})
	}

	data := trace.BuildDebuggerData(conversation, messageID)

	window := trace.WindowMessages(conversation.Messages, messageID)
	data.ToolUsages = trace.ExtractToolUsages(window, events)
	data.Assistants = trace.EnrichAssistants(ctx, h.backend, data.Assistants, events)

	return c.JSON(http.StatusOK, data)
}

// GetConversationTools returns every correlated tool call of a conversation.
// GET /v1/conversations/:conversation_id/tools
func (h *Handler) GetConversationTools(c echo.Context) error {
	ctx := c.Request().Context()
	conversationID := c.Param("conversation_id")

	conversation, err := h.backend.GetConversation(ctx, conversationID)
	if err != nil {
		log.Printf("ERROR: failed to fetch conversation %s: %v", conversationID, err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "failed to fetch conversation"})
	}

	events, err := h.backend.GetConversationEvents(ctx, conversationID)
	if err != nil {
		log.Printf("ERROR: failed to fetch events for %s: %v", conversationID, err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "failed to fetch conversation events"})
	}

	usages := trace.ExtractToolUsages(conversation.Messages, events)

	return c.JSON(http.StatusOK, map[string]any{
		"tools": usages,
	})
}
