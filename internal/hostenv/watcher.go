package hostenv

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/mediscan/appshell/internal/installprompt"
	"github.com/mediscan/appshell/internal/logging"
)

// Watcher observes the runtime directory and feeds host signals into the
// install-prompt controller: the eligibility marker becomes a new offer,
// the standalone marker clears any held one.
type Watcher struct {
	env    *Env
	ctrl   *installprompt.Controller
	fsw    *fsnotify.Watcher
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher wiring env signals into ctrl.
func NewWatcher(env *Env, ctrl *installprompt.Controller) (*Watcher, error) {
	if env == nil || env.runtimeDir == "" {
		return nil, fmt.Errorf("runtime directory not configured")
	}
	if ctrl == nil {
		return nil, fmt.Errorf("controller cannot be nil")
	}
	return &Watcher{
		env:    env,
		ctrl:   ctrl,
		stopCh: make(chan struct{}),
	}, nil
}

// Start creates the runtime directory if needed, replays any marker
// already on disk, and begins watching for new ones.
func (w *Watcher) Start() error {
	if err := os.MkdirAll(w.env.runtimeDir, 0755); err != nil {
		return fmt.Errorf("failed to create runtime directory: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fs watcher: %w", err)
	}
	if err := fsw.Add(w.env.runtimeDir); err != nil {
		fsw.Close()
		return fmt.Errorf("failed to watch runtime directory: %w", err)
	}
	w.fsw = fsw

	// Markers written before we started watching still count.
	w.replayExisting()

	w.wg.Add(1)
	go w.run()

	return nil
}

// Stop halts the watcher.
func (w *Watcher) Stop() error {
	close(w.stopCh)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.handleMarker(filepath.Base(ev.Name))
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logging.Warnf("runtime watcher error: %v", err)
		case <-w.stopCh:
			return
		}
	}
}

// replayExisting applies markers that predate the watcher.
func (w *Watcher) replayExisting() {
	if _, err := os.Stat(w.env.standalonePath()); err == nil {
		w.handleMarker(standaloneMarker)
	}
	if _, err := os.Stat(w.env.offerPath()); err == nil {
		w.handleMarker(offerMarker)
	}
}

func (w *Watcher) handleMarker(name string) {
	switch name {
	case offerMarker:
		logging.Debugf("install eligibility signal received")
		// Re-signals replace the held offer; the controller coalesces.
		w.ctrl.Offer(w.env.newPrompt())
	case standaloneMarker:
		logging.Debugf("standalone marker observed; app installed")
		w.ctrl.HandleInstalled()
	}
}
