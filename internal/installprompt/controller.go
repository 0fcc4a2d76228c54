package installprompt

import (
	"context"
	"sync"
)

// Choice is the user's decision on the native install dialog.
type Choice int

const (
	ChoiceDismissed Choice = iota
	ChoiceAccepted
)

// Outcome is the result of a Trigger call.
type Outcome int

const (
	// OutcomeNoOffer means no install offer was held when Trigger ran.
	// This is a normal result, not an error.
	OutcomeNoOffer Outcome = iota
	OutcomeAccepted
	OutcomeDismissed
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeDismissed:
		return "dismissed"
	default:
		return "no-offer"
	}
}

// State is the derived installation state of the application.
type State int

const (
	StateNotOffered State = iota
	StateOffered
	StateInstalled
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateOffered:
		return "offered"
	case StateInstalled:
		return "installed"
	default:
		return "not-offered"
	}
}

// PromptFunc shows the native install dialog and blocks until the user
// decides. The capability is single-use; implementations resolve any host
// failure as ChoiceDismissed rather than returning an error.
type PromptFunc func(ctx context.Context) Choice

// Environment answers ambient questions about the host the shell runs in.
// A nil Environment degrades every query to the safe "not available" answer.
type Environment interface {
	// Installed reports whether the app is running in standalone mode.
	Installed() bool
	// SupportedPlatform reports whether the host OS family is eligible
	// for the install flow. Informational; gates nothing.
	SupportedPlatform() bool
}

// Controller mediates between the host's install-eligibility signal and UI
// consumers. It holds at most one live install offer process-wide and emits
// an availability-changed notification whenever that slot transitions.
type Controller struct {
	mu      sync.Mutex
	env     Environment
	offer   PromptFunc
	subs    map[int]chan struct{}
	nextSub int
}

// New creates a controller bound to the given environment.
func New(env Environment) *Controller {
	return &Controller{
		env:  env,
		subs: make(map[int]chan struct{}),
	}
}

// Installed reports whether the app runs installed/standalone.
func (c *Controller) Installed() bool {
	if c.env == nil {
		return false
	}
	return c.env.Installed()
}

// SupportedPlatform reports whether the host platform is eligible for the
// install flow.
func (c *Controller) SupportedPlatform() bool {
	if c.env == nil {
		return false
	}
	return c.env.SupportedPlatform()
}

// HasPendingOffer reports whether a live install offer is held. Installed
// takes precedence: once the app runs standalone this is always false.
func (c *Controller) HasPendingOffer() bool {
	if c.Installed() {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offer != nil
}

// InstallationState derives the tri-state view from the offer slot and the
// environment's standalone signal.
func (c *Controller) InstallationState() State {
	if c.Installed() {
		return StateInstalled
	}
	if c.HasPendingOffer() {
		return StateOffered
	}
	return StateNotOffered
}

// Offer installs a new prompt capability into the slot. An unresolved prior
// offer is discarded, never merged or queued. Called by the host adapter
// when the eligibility signal fires.
func (c *Controller) Offer(prompt PromptFunc) {
	if prompt == nil {
		return
	}
	c.mu.Lock()
	c.offer = prompt
	c.mu.Unlock()
	c.notify()
}

// HandleInstalled clears any held offer in response to the external "now
// installed" signal. Notifies only when a held offer was actually cleared.
func (c *Controller) HandleInstalled() {
	c.mu.Lock()
	cleared := c.offer != nil
	c.offer = nil
	c.mu.Unlock()
	if cleared {
		c.notify()
	}
}

// Trigger consumes the held offer and shows the native install dialog,
// blocking until the user decides. Callers must invoke it in direct
// response to a user action; the controller does not enforce that.
//
// The slot is cleared before the dialog is shown, so the capability can
// never be invoked twice: a second caller racing during the wait observes
// an empty slot and gets OutcomeNoOffer immediately.
func (c *Controller) Trigger(ctx context.Context) Outcome {
	c.mu.Lock()
	prompt := c.offer
	if prompt == nil || c.Installed() {
		c.mu.Unlock()
		return OutcomeNoOffer
	}
	c.offer = nil
	c.mu.Unlock()
	c.notify()

	if prompt(ctx) == ChoiceAccepted {
		return OutcomeAccepted
	}
	return OutcomeDismissed
}

// Subscribe registers an availability-changed listener. The returned channel
// receives a coalesced signal after every offer-slot transition; receivers
// re-query the controller for current state. The cancel func unregisters.
func (c *Controller) Subscribe() (<-chan struct{}, func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	ch := make(chan struct{}, 1)
	c.subs[id] = ch
	c.mu.Unlock()

	cancel := func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
	return ch, cancel
}

func (c *Controller) notify() {
	c.mu.Lock()
	subs := make([]chan struct{}, 0, len(c.subs))
	for _, ch := range c.subs {
		subs = append(subs, ch)
	}
	c.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
			// Subscriber already has a pending signal; coalesce.
		}
	}
}
