// Package store defines the storage interface and implementations for
// console-local state. Upstream conversation data is never persisted here;
// only the console's own mutations (labels, read flags, reply drafts) are.
package store

import (
	"context"

	"github.com/isa-tools/console/domain"
)

// Store defines the interface for console state persistence.
type Store interface {
	// Label operations
	AddLabel(ctx context.Context, conversationID, label string) error
	RemoveLabel(ctx context.Context, conversationID, label string) error
	GetLabels(ctx context.Context, conversationID string) ([]string, error)

	// Read-state operations
	SetRead(ctx context.Context, conversationID string, read bool) error
	IsRead(ctx context.Context, conversationID string) (bool, error)

	// Draft operations
	UpsertDraft(ctx context.Context, conversationID, body string) (*domain.Draft, error)
	GetDraft(ctx context.Context, conversationID string) (*domain.Draft, error)
	DeleteDraft(ctx context.Context, conversationID string) error

	// Lifecycle
	Close() error
}
