package domain

import "time"

// MessagePart is one typed content fragment of a conversation message.
type MessagePart struct {
	Type    PartType       `json:"type"`
	Content string         `json:"content,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

// RetrievedKnowledge is a knowledge chunk attached to a message.
type RetrievedKnowledge struct {
	SourceID   string `json:"sourceId,omitempty"`
	SourceName string `json:"sourceName,omitempty"`
	URI        string `json:"uri,omitempty"`
	Title      string `json:"title,omitempty"`
	Preview    string `json:"preview,omitempty"`
}

// MessageMetadata carries the email-channel fields of a message.
type MessageMetadata struct {
	ExternalMessageID string   `json:"isaExternalMessageId,omitempty"`
	ThreadID          string   `json:"isaThreadId,omitempty"`
	IsDraft           bool     `json:"isaIsDraft,omitempty"`
	To                []string `json:"isaTo,omitempty"`
	Cc                []string `json:"isaCc,omitempty"`
	Bcc               []string `json:"isaBcc,omitempty"`
	Subject           string   `json:"isaSubject,omitempty"`
}

// ConversationMessage is one immutable record in a conversation's history.
// Messages are totally ordered by CreatedAt; role alternation is expected
// but not guaranteed (guardrail-rejection retries produce same-role runs).
type ConversationMessage struct {
	ID          string               `json:"id"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt,omitempty"`
	RunID       string               `json:"runId,omitempty"`
	Role        MessageRole          `json:"role"`
	AssistantID string               `json:"assistantId,omitempty"`
	Content     string               `json:"content,omitempty"`
	Parts       []MessagePart        `json:"parts,omitempty"`
	Knowledge   []RetrievedKnowledge `json:"retrievedKnowledge,omitempty"`
	Metadata    *MessageMetadata     `json:"metadata,omitempty"`
}

// ConversationDestination is the delivery target of a conversation.
type ConversationDestination struct {
	To []string `json:"to,omitempty"`
}

// ConversationChannel is the email-channel block of conversation metadata.
type ConversationChannel struct {
	ThreadID    string                   `json:"threadId,omitempty"`
	LeadID      string                   `json:"leadId,omitempty"`
	CampaignID  string                   `json:"campaignId,omitempty"`
	Status      string                   `json:"status,omitempty"`
	Destination *ConversationDestination `json:"destination,omitempty"`
}

// ConversationMetadata wraps the channel metadata of a conversation.
type ConversationMetadata struct {
	ISA *ConversationChannel `json:"isa,omitempty"`
}

// Conversation is a full conversation record owned by the upstream backend.
type Conversation struct {
	ID        string                `json:"id"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
	UserID    string                `json:"userId,omitempty"`
	AccountID string                `json:"accountId,omitempty"`
	Messages  []ConversationMessage `json:"messages"`
	Metadata  *ConversationMetadata `json:"metadata,omitempty"`
	Type      string                `json:"type,omitempty"`
}

// Pagination is the cursor envelope returned by the conversation list endpoint.
type Pagination struct {
	PageSize          int    `json:"pageSize"`
	HasNextPage       bool   `json:"hasNextPage"`
	HasPreviousPage   bool   `json:"hasPreviousPage"`
	TotalCount        int    `json:"totalCount"`
	NextPageToken     string `json:"nextPageToken,omitempty"`
	PreviousPageToken string `json:"previousPageToken,omitempty"`
}
