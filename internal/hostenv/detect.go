package hostenv

import (
	"os"
	"path/filepath"
	"runtime"
)

// Marker files the embedding webview maintains in the runtime directory.
const (
	standaloneMarker = "standalone"
	offerMarker      = "install-offer"
	promptRequest    = "install-prompt"
	choiceMarker     = "install-choice"
)

// Env answers environment queries against the webview runtime directory.
// Every query degrades to the conservative "not available" answer when the
// directory is absent or unreadable.
type Env struct {
	runtimeDir string
}

// New creates an Env rooted at the given runtime directory.
func New(runtimeDir string) *Env {
	return &Env{runtimeDir: runtimeDir}
}

// RuntimeDir returns the watched runtime directory.
func (e *Env) RuntimeDir() string {
	return e.runtimeDir
}

// Installed reports whether the app runs in standalone (installed) mode.
// MEDISCAN_DISPLAY_MODE overrides the marker-file probe.
func (e *Env) Installed() bool {
	switch os.Getenv("MEDISCAN_DISPLAY_MODE") {
	case "standalone":
		return true
	case "browser":
		return false
	}
	if e.runtimeDir == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(e.runtimeDir, standaloneMarker))
	return err == nil && !info.IsDir()
}

// Platform classifies the host OS family. MEDISCAN_PLATFORM overrides
// runtime.GOOS so the embedding runtime can report the real device OS.
func (e *Env) Platform() string {
	if p := os.Getenv("MEDISCAN_PLATFORM"); p != "" {
		return p
	}
	return runtime.GOOS
}

// SupportedPlatform reports whether the install flow applies to this host.
// Only the mobile OS families get the native install prompt.
func (e *Env) SupportedPlatform() bool {
	switch e.Platform() {
	case "android", "ios":
		return true
	default:
		return false
	}
}

// offerPath returns the eligibility marker location.
func (e *Env) offerPath() string {
	return filepath.Join(e.runtimeDir, offerMarker)
}

// standalonePath returns the installed marker location.
func (e *Env) standalonePath() string {
	return filepath.Join(e.runtimeDir, standaloneMarker)
}
