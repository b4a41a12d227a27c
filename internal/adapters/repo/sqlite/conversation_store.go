// Package sqlite persists conversation histories in a local SQLite
// database through the pure Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/persona-relay/internal/domain"
	"github.com/bnema/persona-relay/internal/ports"
	"github.com/spf13/viper"

	_ "modernc.org/sqlite"
)

const (
	historyPathKey = "history.path"
	databaseDir    = ".persona"
	databaseFile   = "conversations.db"
	databaseDirMod = 0o700
)

const schema = `
CREATE TABLE IF NOT EXISTS messages (
	seq            INTEGER PRIMARY KEY AUTOINCREMENT,
	personality_id TEXT    NOT NULL,
	role           TEXT    NOT NULL,
	content        TEXT    NOT NULL,
	created_at     TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_messages_personality ON messages(personality_id, seq);
`

type ConversationStore struct {
	db   *sql.DB
	path string
}

var _ ports.ConversationStore = (*ConversationStore)(nil)

// NewConversationStore opens (creating if needed) the database at
// history.path, defaulting to ~/.persona/conversations.db.
func NewConversationStore(cfg *viper.Viper) (*ConversationStore, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(historyPathKey)
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, databaseDir, databaseFile)
	}

	return Open(path)
}

func Open(path string) (*ConversationStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), databaseDirMod); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			return nil, errors.Join(fmt.Errorf("set pragma: %w", err), db.Close())
		}
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, errors.Join(fmt.Errorf("initialize schema: %w", err), db.Close())
	}

	return &ConversationStore{db: db, path: path}, nil
}

func (s *ConversationStore) Path() string {
	return s.path
}

func (s *ConversationStore) Append(ctx context.Context, id domain.PersonalityID, message domain.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO messages (personality_id, role, content, created_at) VALUES (?, ?, ?, ?)",
		string(id), string(message.Role), message.Content, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}

	return nil
}

func (s *ConversationStore) Snapshot(ctx context.Context, id domain.PersonalityID) ([]domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT role, content FROM messages WHERE personality_id = ? ORDER BY seq",
		string(id),
	)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		var role, content string
		if err := rows.Scan(&role, &content); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, domain.Message{Role: domain.Role(role), Content: content})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}

	return messages, nil
}

func (s *ConversationStore) Clear(ctx context.Context, id domain.PersonalityID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM messages WHERE personality_id = ?", string(id)); err != nil {
		return fmt.Errorf("delete messages: %w", err)
	}

	return nil
}

func (s *ConversationStore) Close() error {
	return s.db.Close()
}
