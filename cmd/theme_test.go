package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/mediscan/appshell/internal/config"
	"github.com/mediscan/appshell/testutil"
)

func TestTheme_ShowDefault(t *testing.T) {
	home := testutil.CreateTempDir(t)

	out, err := execute(t, "--home", home, "theme")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "system") {
		t.Errorf("theme output missing default mode:\n%s", out)
	}
}

func TestTheme_SetPersists(t *testing.T) {
	home := testutil.CreateTempDir(t)

	if _, err := execute(t, "--home", home, "theme", "dark"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	cfg, err := config.LoadFrom(filepath.Join(home, "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("persisted theme = %q, want %q", cfg.Theme, "dark")
	}
}

func TestTheme_RejectsUnknownMode(t *testing.T) {
	home := testutil.CreateTempDir(t)

	if _, err := execute(t, "--home", home, "theme", "midnight"); err == nil {
		t.Error("Execute() error = nil for unknown theme, want error")
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	home := testutil.CreateTempDir(t)
	testutil.WriteFile(t, filepath.Join(home, "session.json"), []byte(`{"uid":"u1","id_token":"tok"}`))

	out, err := execute(t, "--home", home, "logout")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "Signed out") {
		t.Errorf("logout output = %q", out)
	}

	// Logout is idempotent.
	if _, err := execute(t, "--home", home, "logout"); err != nil {
		t.Errorf("second logout error = %v", err)
	}
}
