package hostenv

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mediscan/appshell/internal/installprompt"
	"github.com/mediscan/appshell/internal/logging"
)

// choicePollInterval is how often the prompt waits poll for the host's
// choice file. The wait itself is unbounded; the host owns the modal.
const choicePollInterval = 50 * time.Millisecond

// newPrompt builds the single-use prompt capability for one install offer.
// Invoking it asks the webview to show the native install dialog (by
// writing the prompt-request marker) and blocks until the choice file
// appears. Any failure resolves as dismissed; the host contract has no
// error channel.
func (e *Env) newPrompt() installprompt.PromptFunc {
	return func(ctx context.Context) installprompt.Choice {
		choicePath := filepath.Join(e.runtimeDir, choiceMarker)
		requestPath := filepath.Join(e.runtimeDir, promptRequest)

		// Drop any stale choice from an earlier offer.
		_ = os.Remove(choicePath)

		if err := os.WriteFile(requestPath, nil, 0644); err != nil {
			logging.Warnf("install prompt request failed: %v", err)
			return installprompt.ChoiceDismissed
		}

		ticker := time.NewTicker(choicePollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return installprompt.ChoiceDismissed
			case <-ticker.C:
				data, err := os.ReadFile(choicePath)
				if os.IsNotExist(err) {
					continue
				}
				if err != nil {
					logging.Warnf("install choice unreadable: %v", err)
					return installprompt.ChoiceDismissed
				}

				// The offer is spent either way; clean the markers up.
				_ = os.Remove(choicePath)
				_ = os.Remove(requestPath)
				_ = os.Remove(e.offerPath())

				if strings.TrimSpace(string(data)) == "accepted" {
					return installprompt.ChoiceAccepted
				}
				return installprompt.ChoiceDismissed
			}
		}
	}
}
