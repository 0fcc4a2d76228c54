package export

import (
	"fmt"
	"io"

	"github.com/mediscan/appshell/internal/chatcache"
)

// Exporter defines the interface for all transcript export formats
type Exporter interface {
	Export(session *chatcache.Session, w io.Writer) error
	Extension() string
}

// Error reports a failed export.
type Error struct {
	Format string
	Path   string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "jsonl":
		return &JSONLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: jsonl, md, yaml, json)", format)
	}
}
