package chatcache

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "chat.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_UpsertSessionAssignsID(t *testing.T) {
	s := openTestStore(t)

	id, err := s.UpsertSession(&Session{Title: "Scan results"})
	if err != nil {
		t.Fatalf("UpsertSession() error = %v", err)
	}
	if id == "" {
		t.Error("UpsertSession() assigned empty ID")
	}

	loaded, err := s.GetSession(id)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if loaded.Title != "Scan results" {
		t.Errorf("GetSession() title = %q, want %q", loaded.Title, "Scan results")
	}
	if loaded.CreatedAt == "" || loaded.UpdatedAt == "" {
		t.Error("GetSession() missing timestamps")
	}
}

func TestStore_UpsertSessionLastWriteWins(t *testing.T) {
	s := openTestStore(t)

	id, err := s.UpsertSession(&Session{ID: "sess-1", Title: "First", Locale: "en"})
	if err != nil {
		t.Fatalf("UpsertSession() error = %v", err)
	}
	if _, err := s.UpsertSession(&Session{ID: "sess-1", Title: "Second", Locale: "pt-BR"}); err != nil {
		t.Fatalf("UpsertSession() error = %v", err)
	}

	loaded, err := s.GetSession(id)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if loaded.Title != "Second" {
		t.Errorf("GetSession() title = %q, want %q", loaded.Title, "Second")
	}
	if loaded.Locale != "pt-BR" {
		t.Errorf("GetSession() locale = %q, want %q", loaded.Locale, "pt-BR")
	}

	summaries, err := s.ListSessions()
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if len(summaries) != 1 {
		t.Errorf("ListSessions() returned %d sessions, want 1", len(summaries))
	}
}

func TestStore_AppendMessageOrder(t *testing.T) {
	s := openTestStore(t)
	id, _ := s.UpsertSession(&Session{ID: "sess-1"})

	msgs := []Message{
		{Role: "user", Content: "What does this rash mean?", CreatedAt: "2026-01-01T10:00:00Z"},
		{Role: "assistant", Content: "I can help you look into that.", CreatedAt: "2026-01-01T10:00:05Z"},
		{Role: "user", Content: "Thanks.", CreatedAt: "2026-01-01T10:01:00Z"},
	}
	for i := range msgs {
		if _, err := s.AppendMessage(id, &msgs[i]); err != nil {
			t.Fatalf("AppendMessage() error = %v", err)
		}
	}

	loaded, err := s.GetSession(id)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if len(loaded.Messages) != 3 {
		t.Fatalf("GetSession() returned %d messages, want 3", len(loaded.Messages))
	}
	for i, msg := range loaded.Messages {
		if msg.Content != msgs[i].Content {
			t.Errorf("message %d content = %q, want %q", i, msg.Content, msgs[i].Content)
		}
	}
}

func TestStore_ListSessionsNewestFirst(t *testing.T) {
	s := openTestStore(t)

	old := time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)
	if _, err := s.DB().Exec(
		"INSERT INTO sessions (id, title, created_at, updated_at) VALUES (?, ?, ?, ?)",
		"sess-old", "Old", old, old); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, err := s.UpsertSession(&Session{ID: "sess-new", Title: "New"}); err != nil {
		t.Fatalf("UpsertSession() error = %v", err)
	}

	summaries, err := s.ListSessions()
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("ListSessions() returned %d sessions, want 2", len(summaries))
	}
	if summaries[0].ID != "sess-new" {
		t.Errorf("ListSessions() first = %q, want %q", summaries[0].ID, "sess-new")
	}
}

func TestStore_ListSessionsMessageCount(t *testing.T) {
	s := openTestStore(t)
	id, _ := s.UpsertSession(&Session{ID: "sess-1"})
	s.AppendMessage(id, &Message{Role: "user", Content: "hello"})
	s.AppendMessage(id, &Message{Role: "assistant", Content: "hi"})

	summaries, err := s.ListSessions()
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if summaries[0].MessageCount != 2 {
		t.Errorf("MessageCount = %d, want 2", summaries[0].MessageCount)
	}
}

func TestStore_GetSessionNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetSession("missing")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("GetSession() error = %v, want NotFoundError", err)
	}
}

func TestStore_DeleteSessionCascades(t *testing.T) {
	s := openTestStore(t)
	id, _ := s.UpsertSession(&Session{ID: "sess-1"})
	s.AppendMessage(id, &Message{Role: "user", Content: "hello"})

	if err := s.DeleteSession(id); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}

	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM messages").Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("messages remaining after delete = %d, want 0", count)
	}

	var nf *NotFoundError
	if err := s.DeleteSession(id); !errors.As(err, &nf) {
		t.Errorf("DeleteSession() on missing = %v, want NotFoundError", err)
	}
}

func TestStore_Clear(t *testing.T) {
	s := openTestStore(t)
	s.UpsertSession(&Session{ID: "sess-1"})
	s.UpsertSession(&Session{ID: "sess-2"})

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	summaries, err := s.ListSessions()
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("ListSessions() after Clear() returned %d sessions, want 0", len(summaries))
	}
}

func TestStore_Prune(t *testing.T) {
	s := openTestStore(t)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		ts := base.Add(time.Duration(i) * time.Minute).Format(time.RFC3339)
		if _, err := s.DB().Exec(
			"INSERT INTO sessions (id, created_at, updated_at) VALUES (?, ?, ?)",
			[]string{"a", "b", "c", "d", "e"}[i], ts, ts); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	removed, err := s.Prune(2)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if removed != 3 {
		t.Errorf("Prune() removed %d, want 3", removed)
	}

	summaries, _ := s.ListSessions()
	if len(summaries) != 2 {
		t.Fatalf("ListSessions() returned %d sessions, want 2", len(summaries))
	}
	if summaries[0].ID != "e" || summaries[1].ID != "d" {
		t.Errorf("Prune() kept %q/%q, want e/d", summaries[0].ID, summaries[1].ID)
	}
}
