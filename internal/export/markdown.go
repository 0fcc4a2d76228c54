package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/mediscan/appshell/internal/chatcache"
)

// MarkdownExporter exports transcripts in Markdown format
type MarkdownExporter struct{}

// Export writes a session transcript as Markdown
func (e *MarkdownExporter) Export(session *chatcache.Session, w io.Writer) error {
	title := session.Title
	if title == "" {
		title = fmt.Sprintf("Session %s", session.ID)
	}
	_, _ = fmt.Fprintf(w, "# %s\n\n", title)

	if session.Locale != "" {
		_, _ = fmt.Fprintf(w, "**Locale:** %s  \n", session.Locale)
	}
	if session.CreatedAt != "" {
		_, _ = fmt.Fprintf(w, "**Started:** %s  \n", session.CreatedAt)
	}
	_, _ = fmt.Fprintf(w, "**Messages:** %d\n\n", len(session.Messages))

	_, _ = fmt.Fprintf(w, "---\n\n")

	for i, msg := range session.Messages {
		timestamp := ""
		if msg.CreatedAt != "" {
			timestamp = fmt.Sprintf(" (%s)", msg.CreatedAt)
		}

		content := escapeMarkdown(msg.Content)

		_, _ = fmt.Fprintf(w, "**%s:**%s\n\n%s\n\n", msg.Role, timestamp, content)

		if i < len(session.Messages)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// escapeMarkdown escapes emphasis markers outside fenced code blocks
func escapeMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	var result []string
	inCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			result = append(result, line)
		} else if inCodeBlock {
			result = append(result, line)
		} else {
			line = strings.ReplaceAll(line, "**", "\\*\\*")
			line = strings.ReplaceAll(line, "__", "\\_\\_")
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
