package authboot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

var (
	// ErrNoSession is returned when no credential session is cached.
	ErrNoSession = errors.New("no cached session")
	// ErrSessionExpired is returned when the cached session is past its
	// expiry and could not be refreshed.
	ErrSessionExpired = errors.New("session expired")
)

// refreshWindow is how close to expiry a session gets refreshed eagerly.
const refreshWindow = 5 * time.Minute

// Session is the cached credential session for the signed-in user.
type Session struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email,omitempty"`
	IDToken      string    `json:"id_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Expired reports whether the session's ID token is past expiry.
func (s *Session) Expired() bool {
	return !s.ExpiresAt.After(time.Now())
}

// needsRefresh reports whether the token expires inside the refresh window.
func (s *Session) needsRefresh() bool {
	return time.Until(s.ExpiresAt) < refreshWindow
}

// TokenSource refreshes an ID token through the identity backend. The
// backend itself (a Firebase-style service) is an external collaborator;
// only this interface is known here.
type TokenSource interface {
	Refresh(ctx context.Context, refreshToken string) (*Session, error)
}

// Store persists the credential session as a JSON file readable only by
// the owning user.
type Store struct {
	path string
}

// NewStore creates a session store at the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the cached session. A missing file yields ErrNoSession.
func (st *Store) Load() (*Session, error) {
	data, err := os.ReadFile(st.path)
	if os.IsNotExist(err) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	return &sess, nil
}

// Save writes the session with owner-only permissions.
func (st *Store) Save(sess *Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return os.WriteFile(st.path, data, 0600)
}

// Clear removes the cached session. Clearing an absent session is a no-op.
func (st *Store) Clear() error {
	if err := os.Remove(st.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Bootstrap resolves the startup auth state: load the cached session,
// refresh it through the token source when it is at or near expiry, and
// degrade to signed-out (nil session, ErrNoSession / ErrSessionExpired)
// instead of propagating backend failures.
func Bootstrap(ctx context.Context, st *Store, ts TokenSource) (*Session, error) {
	sess, err := st.Load()
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return nil, ErrNoSession
		}
		// A corrupt cache file is treated as signed-out, not fatal.
		_ = st.Clear()
		return nil, ErrNoSession
	}

	if !sess.needsRefresh() {
		return sess, nil
	}

	if ts == nil || sess.RefreshToken == "" {
		if sess.Expired() {
			_ = st.Clear()
			return nil, ErrSessionExpired
		}
		return sess, nil
	}

	fresh, err := ts.Refresh(ctx, sess.RefreshToken)
	if err != nil {
		if sess.Expired() {
			_ = st.Clear()
			return nil, ErrSessionExpired
		}
		// Still valid for a short while; keep serving the cached token.
		return sess, nil
	}

	if err := st.Save(fresh); err != nil {
		return fresh, nil
	}
	return fresh, nil
}
