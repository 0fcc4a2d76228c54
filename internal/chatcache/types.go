package chatcache

// Session represents a cached MediScan conversation.
type Session struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title,omitempty" yaml:"title,omitempty"`
	Locale    string    `json:"locale,omitempty" yaml:"locale,omitempty"`
	CreatedAt string    `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt string    `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
	Messages  []Message `json:"messages" yaml:"messages"`
}

// Message represents a single chat message.
type Message struct {
	ID        string `json:"id" yaml:"id"`
	Role      string `json:"role" yaml:"role"` // "user" or "assistant"
	Content   string `json:"content" yaml:"content"`
	CreatedAt string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// SessionSummary is a session row without its messages, for listings.
type SessionSummary struct {
	ID           string
	Title        string
	Locale       string
	CreatedAt    string
	UpdatedAt    string
	MessageCount int
}
