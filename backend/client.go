// Package backend provides the HTTP client for the upstream conversation
// backend (conversations, analytics events, assistant configs).
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/isa-tools/console/domain"
)

// Client is an HTTP client for the upstream backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new backend client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListParams are the query parameters for listing campaign conversations.
type ListParams struct {
	CampaignID string
	PageSize   int
	PageToken  string
	SortBy     string
	Order      string
}

// ConversationPage is one page of campaign conversations.
type ConversationPage struct {
	Conversations []domain.Conversation `json:"conversations"`
	Pagination    domain.Pagination     `json:"pagination"`
}

// GetConversation fetches a single conversation by id.
func (c *Client) GetConversation(ctx context.Context, conversationID string) (*domain.Conversation, error) {
	var resp struct {
		Conversation domain.Conversation `json:"conversation"`
	}
	if err := c.getJSON(ctx, "/v2/conversations/"+url.PathEscape(conversationID), &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}
	return &resp.Conversation, nil
}

// ListConversations fetches one page of conversations for a campaign.
func (c *Client) ListConversations(ctx context.Context, params ListParams) (*ConversationPage, error) {
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	q := url.Values{}
	q.Set("pageSize", strconv.Itoa(pageSize))
	if params.PageToken != "" {
		q.Set("pageToken", params.PageToken)
	}
	if params.SortBy != "" {
		q.Set("sortBy", params.SortBy)
	}
	if params.Order != "" {
		q.Set("order", params.Order)
	}

	var page ConversationPage
	path := "/v2/conversations/campaign/" + url.PathEscape(params.CampaignID) + "?" + q.Encode()
	if err := c.getJSON(ctx, path, &page); err != nil {
		return nil, fmt.Errorf("failed to fetch conversations: %w", err)
	}
	return &page, nil
}

// GetConversationEvents fetches the analytics event stream for a conversation.
func (c *Client) GetConversationEvents(ctx context.Context, conversationID string) ([]domain.Event, error) {
	var resp struct {
		Events []domain.Event `json:"events"`
	}
	path := "/v2/analytics/conversations/" + url.PathEscape(conversationID) + "/events"
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch conversation events: %w", err)
	}
	return resp.Events, nil
}

// GetAssistantConfig fetches the static configuration of an assistant.
// A missing or failing config degrades to (nil, nil): the debugger renders
// the assistant with empty config fields instead of failing the request.
func (c *Client) GetAssistantConfig(ctx context.Context, assistantID string) (*domain.AssistantConfig, error) {
	var resp struct {
		Assistant domain.AssistantConfig `json:"assistant"`
	}
	if err := c.getJSON(ctx, "/v2/assistants/"+url.PathEscape(assistantID), &resp); err != nil {
		log.Printf("WARN: failed to fetch assistant config for %s: %v", assistantID, err)
		return nil, nil
	}
	return &resp.Assistant, nil
}

// getJSON performs a GET against the backend and decodes the JSON response.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("backend returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
