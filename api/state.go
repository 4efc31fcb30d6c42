package api

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// the handlers for console-local mutations (labels, read flags, drafts)

type labelRequest struct {
	Label string `json:"label"`
}

type readRequest struct {
	Read bool `json:"read"`
}

type draftRequest struct {
	Body string `json:"body"`
}

// AddLabel attaches a label to a conversation.
// POST /v1/conversations/:conversation_id/labels
func (h *Handler) AddLabel(c echo.Context) error {
	ctx := c.Request().Context()
	conversationID := c.Param("conversation_id")

	var req labelRequest
	if err := c.Bind(&req); err != nil || req.Label == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "label is required"})
	}

	if err := h.store.AddLabel(ctx, conversationID, req.Label); err != nil {
		log.Printf("ERROR: failed to add label: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to add label"})
	}

	return h.respondLabels(c, conversationID)
}

// RemoveLabel detaches a label from a conversation.
// DELETE /v1/conversations/:conversation_id/labels/:label
func (h *Handler) RemoveLabel(c echo.Context) error {
	ctx := c.Request().Context()
	conversationID := c.Param("conversation_id")
	label := c.Param("label")

	if err := h.store.RemoveLabel(ctx, conversationID, label); err != nil {
		log.Printf("ERROR: failed to remove label: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to remove label"})
	}

	return h.respondLabels(c, conversationID)
}

func (h *Handler) respondLabels(c echo.Context, conversationID string) error {
	labels, err := h.store.GetLabels(c.Request().Context(), conversationID)
	if err != nil {
		log.Printf("ERROR: failed to get labels: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to get labels"})
	}
	return c.JSON(http.StatusOK, map[string]any{"labels": labels})
}

// SetRead marks a conversation read or unread.
// PUT /v1/conversations/:conversation_id/read
func (h *Handler) SetRead(c echo.Context) error {
	ctx := c.Request().Context()
	conversationID := c.Param("conversation_id")

	var req readRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := h.store.SetRead(ctx, conversationID, req.Read); err != nil {
		log.Printf("ERROR: failed to set read state: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to set read state"})
	}

	return c.JSON(http.StatusOK, map[string]bool{"read": req.Read})
}

// UpsertDraft creates or replaces the reply draft of a conversation.
// PUT /v1/conversations/:conversation_id/draft
func (h *Handler) UpsertDraft(c echo.Context) error {
	ctx := c.Request().Context()
	conversationID := c.Param("conversation_id")

	var req draftRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	draft, err := h.store.UpsertDraft(ctx, conversationID, req.Body)
	if err != nil {
		log.Printf("ERROR: failed to save draft: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save draft"})
	}

	return c.JSON(http.StatusOK, map[string]any{"draft": draft})
}

// GetDraft returns the reply draft of a conversation; the draft is null
// when none has been saved.
// GET /v1/conversations/:conversation_id/draft
func (h *Handler) GetDraft(c echo.Context) error {
	ctx := c.Request().Context()
	conversationID := c.Param("conversation_id")

	draft, err := h.store.GetDraft(ctx, conversationID)
	if err != nil {
		log.Printf("ERROR: failed to get draft: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to get draft"})
	}

	return c.JSON(http.StatusOK, map[string]any{"draft": draft})
}

// DeleteDraft removes the reply draft of a conversation.
// DELETE /v1/conversations/:conversation_id/draft
func (h *Handler) DeleteDraft(c echo.Context) error {
	ctx := c.Request().Context()
	conversationID := c.Param("conversation_id")

	if err := h.store.DeleteDraft(ctx, conversationID); err != nil {
		log.Printf("ERROR: failed to delete draft: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete draft"})
	}

	return c.NoContent(http.StatusNoContent)
}
