package export

import (
	"encoding/json"
	"io"

	"github.com/mediscan/appshell/internal/chatcache"
)

// JSONExporter exports transcripts in JSON format (pretty-printed)
type JSONExporter struct{}

// Export writes a session transcript as indented JSON
func (e *JSONExporter) Export(session *chatcache.Session, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(session)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
