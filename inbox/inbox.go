// Package inbox transforms upstream conversations into the email-inbox
// view model served to the console.
package inbox

import (
	"time"

	"github.com/isa-tools/console/domain"
	"github.com/isa-tools/console/trace"
)

const (
	maxSubjectLength = 80
	maxSnippetLength = 120
	defaultSubject   = "Twilio Followup"
)

// ConversationsToEmails maps one page of conversations into inbox emails.
func ConversationsToEmails(conversations []domain.Conversation, campaignID string) []domain.Email {
	emails := make([]domain.Email, 0, len(conversations))
	for i := range conversations {
		emails = append(emails, conversationToEmail(&conversations[i], campaignID))
	}
	return emails
}

func conversationToEmail(conversation *domain.Conversation, campaignID string) domain.Email {
	sender := ExtractSenderInfo(conversation)
	thread := BuildThreadItems(conversation.Messages, sender)

	// Latest core-assistant markdown response is the email body.
	var latestAssistant *domain.ConversationMessage
	for i := range conversation.Messages {
		msg := &conversation.Messages[i]
		if msg.Role != domain.RoleAssistant || msg.AssistantID != domain.CoreAssistantID || len(msg.Parts) == 0 {
			continue
		}
		if latestAssistant == nil || msg.CreatedAt.After(latestAssistant.CreatedAt) {
			latestAssistant = msg
		}
	}

	body := ""
	if latestAssistant != nil {
		body = firstMarkdown(latestAssistant.Parts)
	}

	snippet := trace.StripHTML(body)
	if runes := []rune(snippet); len(runes) >= maxSnippetLength {
		snippet = string(runes[:maxSnippetLength-3]) + "..."
	}

	subject := extractSubject(conversation.Messages)
	if subject == "" {
		subject = defaultSubject
	}
	if runes := []rune(subject); len(runes) > maxSubjectLength {
		subject = string(runes[:maxSubjectLength]) + "..."
	}

	status := ""
	if conversation.Metadata != nil && conversation.Metadata.ISA != nil {
		status = conversation.Metadata.ISA.Status
	}
	isEscalated := status == domain.StatusEscalate || status == domain.StatusEscalated
	isCompleted := status == domain.StatusComplete

	labels := []string{}
	if isEscalated {
		labels = append(labels, "Escalated")
	}

	return domain.Email{
		ID:          conversation.ID,
		Sender:      sender.Name,
		SenderEmail: sender.Email,
		Recipient:   consoleMailbox,
		Subject:     subject,
		Snippet:     snippet,
		Body:        body,
		Timestamp:   emailTimestamp(conversation, latestAssistant),
		IsRead:      false,
		IsStarred:   isEscalated,
		Labels:      labels,
		AvatarColor: AvatarColor(sender.Email),
		CampaignID:  campaignID,
		Thread:      thread,
		IsEscalated: isEscalated,
		IsCompleted: isCompleted,
	}
}

// extractSubject returns the subject carried by the first USER message
// whose metadata has one.
func extractSubject(messages []domain.ConversationMessage) string {
	for _, msg := range messages {
		if msg.Role == domain.RoleUser && msg.Metadata != nil && msg.Metadata.Subject != "" {
			return msg.Metadata.Subject
		}
	}
	return ""
}

// emailTimestamp prefers the latest assistant response time, then the
// latest escalation user message, then the conversation's update time.
func emailTimestamp(conversation *domain.Conversation, latestAssistant *domain.ConversationMessage) time.Time {
	if latestAssistant != nil {
		return latestAssistant.CreatedAt
	}
	var latestUser *domain.ConversationMessage
	for i := range conversation.Messages {
		msg := &conversation.Messages[i]
		if msg.Role != domain.RoleUser || msg.AssistantID != domain.EscalationAssistantID || msg.Content == "" {
			continue
		}
		if latestUser == nil || msg.CreatedAt.After(latestUser.CreatedAt) {
			latestUser = msg
		}
	}
	if latestUser != nil {
		return latestUser.CreatedAt
	}
	return conversation.UpdatedAt
}
