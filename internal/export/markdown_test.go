package export

import (
	"bytes"
	"strings"
	"testing"
)

func TestMarkdownExporter_Header(t *testing.T) {
	var buf bytes.Buffer
	if err := (&MarkdownExporter{}).Export(sampleSession(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "# Rash follow-up\n") {
		t.Errorf("output does not start with title heading:\n%s", out)
	}
	if !strings.Contains(out, "**Locale:** en") {
		t.Errorf("output missing locale line:\n%s", out)
	}
	if !strings.Contains(out, "**Messages:** 2") {
		t.Errorf("output missing message count:\n%s", out)
	}
}

func TestMarkdownExporter_UntitledFallsBackToID(t *testing.T) {
	sess := sampleSession()
	sess.Title = ""

	var buf bytes.Buffer
	if err := (&MarkdownExporter{}).Export(sess, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "# Session sess-1\n") {
		t.Errorf("untitled session heading = %q", strings.SplitN(buf.String(), "\n", 2)[0])
	}
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "emphasis escaped",
			in:   "this is **bold** text",
			want: "this is \\*\\*bold\\*\\* text",
		},
		{
			name: "code block preserved",
			in:   "```\n**not bold**\n```",
			want: "```\n**not bold**\n```",
		},
		{
			name: "plain text untouched",
			in:   "take twice daily",
			want: "take twice daily",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeMarkdown(tt.in); got != tt.want {
				t.Errorf("escapeMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
