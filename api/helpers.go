package api

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/isa-tools/console/policy"
)

// accessInput builds the policy input from the request's identity headers.
// The console frontend forwards the authenticated user's id, role and
// campaign grants on every request.
func accessInput(c echo.Context, campaignID string) policy.AccessInput {
	campaigns := []string{}
	if raw := c.Request().Header.Get("X-User-Campaigns"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				campaigns = append(campaigns, id)
			}
		}
	}

	return policy.AccessInput{
		UserID:    c.Request().Header.Get("X-User-ID"),
		Role:      c.Request().Header.Get("X-User-Role"),
		Campaign:  campaignID,
		Campaigns: campaigns,
	}
}
