// Package trace reconstructs assistant execution traces from conversation
// history and analytics events.
package trace

import (
	"log"
	"time"

	"github.com/isa-tools/console/domain"
)

// maxWindowGap is the largest gap between the target message and an earlier
// message for both to count as part of the same execution flow. A full
// pipeline pass (draft, guardrails, retries) fits comfortably inside it.
const maxWindowGap = 120 * time.Second

// WindowMessages returns the contiguous slice of messages that belong to the
// same execution flow as the target message, scanning backward from the
// target until the time gap exceeds maxWindowGap. Messages must already be
// sorted ascending by CreatedAt. A missing target yields an empty window,
// never an error.
func WindowMessages(messages []domain.ConversationMessage, targetMessageID string) []domain.ConversationMessage {
	if len(messages) == 0 {
		log.Printf("WARN: no messages in conversation")
		return nil
	}

	j := -1
	for i := range messages {
		if messages[i].ID == targetMessageID {
			j = i
			break
		}
	}
	if j == -1 {
		log.Printf("WARN: message %s not found in conversation", targetMessageID)
		return nil
	}

	targetTime := messages[j].CreatedAt

	i := j - 1
	for i >= 0 {
		if targetTime.Sub(messages[i].CreatedAt) > maxWindowGap {
			break
		}
		i--
	}

	return messages[i+1 : j+1]
}
