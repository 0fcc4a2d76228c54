package cmd

import (
	"bytes"
	"strings"
	"testing"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	out, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, sub := range []string{"run", "install", "status", "history", "export", "locale", "theme", "logout"} {
		if !strings.Contains(out, sub) {
			t.Errorf("help output missing %q subcommand", sub)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "dev") {
		t.Errorf("version output = %q, want it to contain %q", out, "dev")
	}
}

func TestRootCommand_UnknownSubcommand(t *testing.T) {
	if _, err := execute(t, "bogus"); err == nil {
		t.Error("Execute() error = nil for unknown subcommand, want error")
	}
}
