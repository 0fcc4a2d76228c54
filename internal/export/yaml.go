package export

import (
	"io"

	"github.com/mediscan/appshell/internal/chatcache"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports transcripts in YAML format
type YAMLExporter struct{}

// Export writes a session transcript as YAML
func (e *YAMLExporter) Export(session *chatcache.Session, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(session)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
