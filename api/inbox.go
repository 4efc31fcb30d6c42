package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/isa-tools/console/backend"
	"github.com/isa-tools/console/inbox"
)

// GetCampaignInbox returns the inbox view of a campaign's conversations.
// GET /v1/campaigns/:campaign_id/inbox?pageSize&pageToken&sortBy&order
func (h *Handler) GetCampaignInbox(c echo.Context) error {
	ctx := c.Request().Context()
	campaignID := c.Param("campaign_id")

	decision, err := h.policy.Evaluate(ctx, accessInput(c, campaignID))
	if err != nil {
		log.Printf("ERROR: failed to evaluate campaign access: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to evaluate access"})
	}
	if decision != "allow" {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "campaign access denied"})
	}

	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))
	params := backend.ListParams{
		CampaignID: campaignID,
		PageSize:   pageSize,
		PageToken:  c.QueryParam("pageToken"),
		SortBy:     c.QueryParam("sortBy"),
		Order:      c.QueryParam("order"),
	}

	page, err := h.backend.ListConversations(ctx, params)
	if err != nil {
		log.Printf("ERROR: failed to fetch conversations for campaign %s: %v", campaignID, err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "failed to fetch conversations"})
	}

	emails := inbox.ConversationsToEmails(page.Conversations, campaignID)

	// Overlay console-local state.
	for i := range emails {
		labels, err := h.store.GetLabels(ctx, emails[i].ID)
		if err != nil {
			log.Printf("ERROR: failed to get labels for %s: %v", emails[i].ID, err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to get labels"})
		}
		emails[i].Labels = append(emails[i].Labels, labels...)

		read, err := h.store.IsRead(ctx, emails[i].ID)
		if err != nil {
			log.Printf("ERROR: failed to get read state for %s: %v", emails[i].ID, err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to get read state"})
		}
		emails[i].IsRead = read
	}

	return c.JSON(http.StatusOK, map[string]any{
		"emails":     emails,
		"pagination": page.Pagination,
	})
}
