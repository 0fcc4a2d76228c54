package chatcache

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotFoundError reports a lookup for a session that is not cached.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("session %s not found", e.ID)
}

// UpsertSession inserts or replaces a session row. Last write wins; an
// empty ID gets a fresh UUID. Returns the stored session ID.
func (s *Store) UpsertSession(sess *Session) (string, error) {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if sess.CreatedAt == "" {
		sess.CreatedAt = now
	}
	sess.UpdatedAt = now

	query := `
		INSERT OR REPLACE INTO sessions (id, title, locale, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := s.db.Exec(query, sess.ID, sess.Title, sess.Locale, sess.CreatedAt, sess.UpdatedAt); err != nil {
		return "", fmt.Errorf("failed to upsert session %s: %w", sess.ID, err)
	}
	return sess.ID, nil
}

// AppendMessage appends a message to a session and bumps its updated_at.
// An empty message ID gets a fresh UUID. Returns the stored message ID.
func (s *Store) AppendMessage(sessionID string, msg *Message) (string, error) {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if msg.CreatedAt == "" {
		msg.CreatedAt = now
	}

	query := `
		INSERT OR REPLACE INTO messages (id, session_id, role, content, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := s.db.Exec(query, msg.ID, sessionID, msg.Role, msg.Content, msg.CreatedAt); err != nil {
		return "", fmt.Errorf("failed to append message to %s: %w", sessionID, err)
	}

	if _, err := s.db.Exec("UPDATE sessions SET updated_at = ? WHERE id = ?", now, sessionID); err != nil {
		return "", fmt.Errorf("failed to touch session %s: %w", sessionID, err)
	}
	return msg.ID, nil
}

// ListSessions returns summaries of all cached sessions, newest first.
func (s *Store) ListSessions() ([]SessionSummary, error) {
	query := `
		SELECT s.id, s.title, s.locale, s.created_at, s.updated_at, COUNT(m.id)
		FROM sessions s
		LEFT JOIN messages m ON m.session_id = s.id
		GROUP BY s.id
		ORDER BY s.updated_at DESC
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var summaries []SessionSummary
	for rows.Next() {
		var sum SessionSummary
		var title, locale sql.NullString
		if err := rows.Scan(&sum.ID, &title, &locale, &sum.CreatedAt, &sum.UpdatedAt, &sum.MessageCount); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		sum.Title = title.String
		sum.Locale = locale.String
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return summaries, nil
}

// GetSession loads a session and its messages in chronological order.
func (s *Store) GetSession(id string) (*Session, error) {
	var sess Session
	var title, locale sql.NullString
	query := "SELECT id, title, locale, created_at, updated_at FROM sessions WHERE id = ?"
	err := s.db.QueryRow(query, id).Scan(&sess.ID, &title, &locale, &sess.CreatedAt, &sess.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session %s: %w", id, err)
	}
	sess.Title = title.String
	sess.Locale = locale.String

	rows, err := s.db.Query(
		"SELECT id, role, content, created_at FROM messages WHERE session_id = ? ORDER BY created_at, id", id)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages for %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var msg Message
		if err := rows.Scan(&msg.ID, &msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		sess.Messages = append(sess.Messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return &sess, nil
}

// DeleteSession removes a session and, via cascade, its messages.
func (s *Store) DeleteSession(id string) error {
	res, err := s.db.Exec("DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	if n == 0 {
		return &NotFoundError{ID: id}
	}
	return nil
}

// Clear removes all cached sessions and messages.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("failed to clear sessions: %w", err)
	}
	return nil
}

// Prune keeps only the newest keep sessions and deletes the rest.
func (s *Store) Prune(keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}
	query := `
		DELETE FROM sessions WHERE id NOT IN (
			SELECT id FROM sessions ORDER BY updated_at DESC LIMIT ?
		)
	`
	res, err := s.db.Exec(query, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to prune sessions: %w", err)
	}
	return int(n), nil
}
