package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/isa-tools/console/domain"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS labels (
			conversation_id TEXT NOT NULL,
			label TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (conversation_id, label)
		)`,
		`CREATE TABLE IF NOT EXISTS read_state (
			conversation_id TEXT PRIMARY KEY,
			is_read INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS drafts (
			draft_id TEXT PRIMARY KEY,
			conversation_id TEXT NOT NULL UNIQUE,
			body TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// AddLabel attaches a label to a conversation. Adding an existing label is
// a no-op.
func (s *SQLiteStore) AddLabel(ctx context.Context, conversationID, label string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO labels (conversation_id, label) VALUES (?, ?)`,
		conversationID, label)
	return err
}

// RemoveLabel detaches a label from a conversation.
func (s *SQLiteStore) RemoveLabel(ctx context.Context, conversationID, label string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM labels WHERE conversation_id = ? AND label = ?`,
		conversationID, label)
	return err
}

// GetLabels returns the labels of a conversation in insertion order.
func (s *SQLiteStore) GetLabels(ctx context.Context, conversationID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT label FROM labels WHERE conversation_id = ? ORDER BY created_at, label`,
		conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	labels := []string{}
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}

// SetRead records whether a conversation has been read.
func (s *SQLiteStore) SetRead(ctx context.Context, conversationID string, read bool) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO read_state (conversation_id, is_read, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(conversation_id) DO UPDATE SET is_read = excluded.is_read, updated_at = excluded.updated_at`,
		conversationID, boolToInt(read), time.Now().UTC())
	return err
}

// IsRead reports whether a conversation has been read. Unknown
// conversations are unread.
func (s *SQLiteStore) IsRead(ctx context.Context, conversationID string) (bool, error) {
	var isRead int
	err := s.db.QueryRowContext(ctx,
		`SELECT is_read FROM read_state WHERE conversation_id = ?`,
		conversationID).Scan(&isRead)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return isRead != 0, nil
}

// UpsertDraft creates or replaces the reply draft of a conversation.
func (s *SQLiteStore) UpsertDraft(ctx context.Context, conversationID, body string) (*domain.Draft, error) {
	now := time.Now().UTC()
	draftID := "draft_" + uuid.New().String()[:8]

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO drafts (draft_id, conversation_id, body, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(conversation_id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		draftID, conversationID, body, now)
	if err != nil {
		return nil, err
	}

	return s.GetDraft(ctx, conversationID)
}

// GetDraft returns the reply draft of a conversation, nil when there is none.
func (s *SQLiteStore) GetDraft(ctx context.Context, conversationID string) (*domain.Draft, error) {
	var draft domain.Draft
	err := s.db.QueryRowContext(ctx,
		`SELECT draft_id, conversation_id, body, updated_at FROM drafts WHERE conversation_id = ?`,
		conversationID).Scan(&draft.ID, &draft.ConversationID, &draft.Body, &draft.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// DeleteDraft removes the reply draft of a conversation.
func (s *SQLiteStore) DeleteDraft(ctx context.Context, conversationID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE conversation_id = ?`, conversationID)
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
