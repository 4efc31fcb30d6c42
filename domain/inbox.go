package domain

import "time"

// ThreadItem is one rendered email in a conversation thread.
type ThreadItem struct {
	ID          string    `json:"id"`
	Sender      string    `json:"sender"`
	SenderEmail string    `json:"senderEmail"`
	Recipient   string    `json:"recipient"`
	Body        string    `json:"body"`
	Timestamp   time.Time `json:"timestamp"`
	AvatarColor string    `json:"avatarColor"`
}

// Email is the inbox view of one conversation.
type Email struct {
	ID          string       `json:"id"`
	Sender      string       `json:"sender"`
	SenderEmail string       `json:"senderEmail"`
	Recipient   string       `json:"recipient"`
	Subject     string       `json:"subject"`
	Snippet     string       `json:"snippet"`
	Body        string       `json:"body"`
	Timestamp   time.Time    `json:"timestamp"`
	IsRead      bool         `json:"isRead"`
	IsStarred   bool         `json:"isStarred"`
	Labels      []string     `json:"labels"`
	AvatarColor string       `json:"avatarColor"`
	CampaignID  string       `json:"campaignId"`
	Thread      []ThreadItem `json:"thread"`
	IsEscalated bool         `json:"isEscalated"`
	IsCompleted bool         `json:"isCompleted"`
}

// Draft is a console-local reply draft attached to a conversation.
type Draft struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	Body           string    `json:"body"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
