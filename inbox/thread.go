package inbox

import (
	"sort"
	"strings"

	"github.com/isa-tools/console/domain"
)

// consoleMailbox is the address the assistant sends from.
const consoleMailbox = "isa@twilio.com"

var avatarColors = []string{
	"bg-blue-500",
	"bg-green-500",
	"bg-purple-500",
	"bg-red-500",
	"bg-yellow-500",
	"bg-indigo-500",
	"bg-pink-500",
	"bg-teal-500",
}

// SenderInfo is the resolved human counterpart of a conversation.
type SenderInfo struct {
	Email string
	Name  string
}

// ExtractSenderInfo resolves the sender from conversation metadata, falling
// back to the first USER message carrying a delivery address.
func ExtractSenderInfo(conversation *domain.Conversation) SenderInfo {
	if meta := conversation.Metadata; meta != nil && meta.ISA != nil &&
		meta.ISA.Destination != nil && len(meta.ISA.Destination.To) > 0 {
		email := meta.ISA.Destination.To[0]
		return SenderInfo{Email: email, Name: nameFromEmail(email)}
	}

	for _, msg := range conversation.Messages {
		if msg.Role == domain.RoleUser && msg.Metadata != nil && len(msg.Metadata.To) > 0 {
			email := msg.Metadata.To[0]
			return SenderInfo{Email: email, Name: nameFromEmail(email)}
		}
	}

	return SenderInfo{Email: "unknown@example.com", Name: "Unknown"}
}

// nameFromEmail derives a display name from the mailbox part of an address.
func nameFromEmail(email string) string {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	local = strings.NewReplacer(".", " ", "_", " ").Replace(local)

	words := strings.Fields(local)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// AvatarColor picks a deterministic avatar color for a seed string.
func AvatarColor(seed string) string {
	var hash int32
	for _, c := range seed {
		hash = (hash << 5) - hash + int32(c)
	}
	if hash < 0 {
		hash = -hash
	}
	return avatarColors[int(hash)%len(avatarColors)]
}

// BuildThreadItems renders the conversation as an email thread: every
// core-assistant MARKDOWN response in chronological order, each paired with
// the nearest preceding unused escalation USER message. Retries never
// produce duplicate user entries because each USER message pairs at most
// once.
func BuildThreadItems(messages []domain.ConversationMessage, sender SenderInfo) []domain.ThreadItem {
	sorted := make([]domain.ConversationMessage, len(messages))
	copy(sorted, messages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	items := []domain.ThreadItem{}
	usedUserIndices := map[int]bool{}

	for i, msg := range sorted {
		if msg.Role != domain.RoleAssistant || msg.AssistantID != domain.CoreAssistantID {
			continue
		}
		body := firstMarkdown(msg.Parts)
		if body == "" {
			continue
		}

		userIndex := -1
		for j := i - 1; j >= 0; j-- {
			prev := sorted[j]
			if prev.Role == domain.RoleUser && prev.AssistantID == domain.EscalationAssistantID &&
				prev.Content != "" && !usedUserIndices[j] {
				userIndex = j
				break
			}
		}

		if userIndex >= 0 {
			user := sorted[userIndex]
			usedUserIndices[userIndex] = true
			items = append(items, domain.ThreadItem{
				ID:          user.ID,
				Sender:      sender.Name,
				SenderEmail: sender.Email,
				Recipient:   consoleMailbox,
				Body:        user.Content,
				Timestamp:   user.CreatedAt,
				AvatarColor: AvatarColor(sender.Email),
			})
		}

		items = append(items, domain.ThreadItem{
			ID:          msg.ID,
			Sender:      "Isa",
			SenderEmail: consoleMailbox,
			Recipient:   sender.Email,
			Body:        body,
			Timestamp:   msg.CreatedAt,
			AvatarColor: "bg-indigo-600",
		})
	}

	return items
}

func firstMarkdown(parts []domain.MessagePart) string {
	for _, part := range parts {
		if part.Type == domain.PartMarkdown && part.Content != "" {
			return part.Content
		}
	}
	return ""
}
