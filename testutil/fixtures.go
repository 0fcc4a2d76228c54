package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// chatSchema mirrors the chat-history cache schema for fixtures.
const chatSchema = `
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    title TEXT,
    locale TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS messages (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL,
    role TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at TEXT NOT NULL,
    FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
);
`

// CreateChatDBFixture creates a chat-history database with one sample
// session and two messages, and returns the database path.
func CreateChatDBFixture(t *testing.T, dir string) string {
	t.Helper()
	dbPath := filepath.Join(dir, "chat.db")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open fixture database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(chatSchema); err != nil {
		t.Fatalf("Failed to create fixture schema: %v", err)
	}

	if _, err := db.Exec(
		"INSERT INTO sessions (id, title, locale, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		"sess-fixture", "Rash follow-up", "en",
		"2026-01-01T10:00:00Z", "2026-01-01T10:01:00Z"); err != nil {
		t.Fatalf("Failed to insert fixture session: %v", err)
	}

	messages := []struct {
		id, role, content, createdAt string
	}{
		{"m1", "user", "What does this rash mean?", "2026-01-01T10:00:00Z"},
		{"m2", "assistant", "I can help you look into that.", "2026-01-01T10:00:05Z"},
	}
	for _, m := range messages {
		if _, err := db.Exec(
			"INSERT INTO messages (id, session_id, role, content, created_at) VALUES (?, ?, ?, ?, ?)",
			m.id, "sess-fixture", m.role, m.content, m.createdAt); err != nil {
			t.Fatalf("Failed to insert fixture message: %v", err)
		}
	}

	return dbPath
}

// WriteLocaleFixture writes a minimal locale catalog set under dir/locales.
func WriteLocaleFixture(t *testing.T, dir string) string {
	t.Helper()
	localeDir := filepath.Join(dir, "locales")
	WriteFile(t, filepath.Join(localeDir, "en.yaml"),
		[]byte("greeting: Hello\ninstall.cta: Install MediScan\n"))
	WriteFile(t, filepath.Join(localeDir, "pt-BR.yaml"),
		[]byte("greeting: Oi\n"))
	return localeDir
}
