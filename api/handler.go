// Package api provides HTTP handlers for the console backend.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/isa-tools/console/backend"
	"github.com/isa-tools/console/config"
	"github.com/isa-tools/console/policy"
	"github.com/isa-tools/console/store"
)

// Handler handles HTTP requests.
type Handler struct {
	store   store.Store
	backend *backend.Client
	policy  *policy.Engine
	config  *config.Config
}

// NewHandler creates a new handler.
func NewHandler(store store.Store, backendClient *backend.Client, policyEngine *policy.Engine, config *config.Config) *Handler {
	return &Handler{
		store:   store,
		backend: backendClient,
		policy:  policyEngine,
		config:  config,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Inbox
	e.GET("/v1/campaigns/:campaign_id/inbox", h.GetCampaignInbox)

	// Debugger
	e.GET("/v1/conversations/:conversation_id/debug/:message_id", h.GetConversationDebug)
	e.GET("/v1/conversations/:conversation_id/tools", h.GetConversationTools)

	// Console-local state
	e.POST("/v1/conversations/:conversation_id/labels", h.AddLabel)
	e.DELETE("/v1/conversations/:conversation_id/labels/:label", h.RemoveLabel)
	e.PUT("/v1/conversations/:conversation_id/read", h.SetRead)
	e.PUT("/v1/conversations/:conversation_id/draft", h.UpsertDraft)
	e.GET("/v1/conversations/:conversation_id/draft", h.GetDraft)
	e.DELETE("/v1/conversations/:conversation_id/draft", h.DeleteDraft)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
