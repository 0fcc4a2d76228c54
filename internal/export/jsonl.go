package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mediscan/appshell/internal/chatcache"
)

// JSONLExporter exports transcripts in JSONL format (one message per line)
type JSONLExporter struct{}

// Export writes one JSON object per message
func (e *JSONLExporter) Export(session *chatcache.Session, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, msg := range session.Messages {
		obj := map[string]interface{}{
			"role":    msg.Role,
			"content": msg.Content,
		}
		if msg.CreatedAt != "" {
			obj["created_at"] = msg.CreatedAt
		}

		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("failed to encode message: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
