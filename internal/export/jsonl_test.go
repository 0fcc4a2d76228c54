package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mediscan/appshell/internal/chatcache"
)

func TestJSONLExporter_OneLinePerMessage(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONLExporter{}).Export(sampleSession(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Export() produced %d lines, want 2", len(lines))
	}

	for i, line := range lines {
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		if obj["role"] == "" {
			t.Errorf("line %d missing role", i)
		}
	}
}

func TestJSONLExporter_EmptySession(t *testing.T) {
	var buf bytes.Buffer
	err := (&JSONLExporter{}).Export(&chatcache.Session{ID: "empty"}, &buf)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Export() of empty session wrote %q, want nothing", buf.String())
	}
}
