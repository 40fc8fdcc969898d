// Package modal implements the open/close lifecycle of the project detail overlay.
//
// The Controller is a plain state machine. Every transition returns the
// Effects the host must carry out (scroll lock, Esc listener, focus, the
// delayed clear); Apply runs them against a Host.
package modal

import (
	"time"

	"folio/internal/content"
)

// DefaultCloseDelay matches the overlay's exit transition.
const DefaultCloseDelay = 300 * time.Millisecond

// EscapeKey is the key that dismisses an open modal.
const EscapeKey = "esc"

// State is what the view layer renders.
// Open implies Selected != nil. Selected outlives Open by the close delay.
type State struct {
	Selected *content.Project
	Open     bool
}

// Closing reports whether the modal is in its exit transition.
func (s State) Closing() bool {
	return !s.Open && s.Selected != nil
}

// Controller owns the modal state.
type Controller struct {
	closeDelay time.Duration

	state       State
	gen         int
	escAttached bool
	scrollHeld  bool
	tornDown    bool
}

// NewController creates a closed controller. A non-positive delay uses DefaultCloseDelay.
func NewController(closeDelay time.Duration) *Controller {
	if closeDelay <= 0 {
		closeDelay = DefaultCloseDelay
	}
	return &Controller{closeDelay: closeDelay}
}

// CloseDelay returns the configured delay before the selection is cleared.
func (c *Controller) CloseDelay() time.Duration {
	return c.closeDelay
}

// State returns the current modal state.
func (c *Controller) State() State {
	return c.state
}

// Generation identifies the latest close; ClearExpired only honours it.
func (c *Controller) Generation() int {
	return c.gen
}

// EscAttached reports whether the Esc listener is installed.
func (c *Controller) EscAttached() bool {
	return c.escAttached
}

// ScrollHeld reports whether the controller holds the scroll lock.
func (c *Controller) ScrollHeld() bool {
	return c.scrollHeld
}

// Open selects p and shows the modal. Opening while another project is
// shown replaces the selection without passing through a closed state.
func (c *Controller) Open(p content.Project) []Effect {
	if c.tornDown {
		return nil
	}
	selected := p
	c.state.Selected = &selected
	c.state.Open = true
	// Invalidate any clear still pending from an earlier close.
	c.gen++

	var effects []Effect
	if !c.scrollHeld {
		c.scrollHeld = true
		effects = append(effects, Effect{Kind: AcquireScrollLock})
	}
	if !c.escAttached {
		c.escAttached = true
		effects = append(effects, Effect{Kind: AttachEscListener})
	}
	return append(effects, Effect{Kind: FocusDismiss})
}

// Close hides the modal. The selection is kept until the host delivers
// ClearExpired with the returned generation. Closing a closed modal is a no-op.
func (c *Controller) Close() []Effect {
	if c.tornDown || !c.state.Open {
		return nil
	}
	c.state.Open = false
	c.gen++
	effects := c.releaseAll()
	return append(effects, Effect{Kind: ScheduleClear, After: c.closeDelay, Gen: c.gen})
}

// ClearExpired drops the selection if gen is the latest close and the
// modal has not been reopened since. Returns true if state changed.
func (c *Controller) ClearExpired(gen int) bool {
	if c.tornDown || gen != c.gen || c.state.Open || c.state.Selected == nil {
		return false
	}
	c.state.Selected = nil
	return true
}

// HandleKey treats Esc as Close while open. Other keys and Esc while closed do nothing.
func (c *Controller) HandleKey(key string) []Effect {
	if key != EscapeKey || !c.state.Open {
		return nil
	}
	return c.Close()
}

// Teardown releases everything the controller holds. The controller is
// inert afterwards.
func (c *Controller) Teardown() []Effect {
	if c.tornDown {
		return nil
	}
	effects := c.releaseAll()
	c.state = State{}
	c.gen++
	c.tornDown = true
	return effects
}

func (c *Controller) releaseAll() []Effect {
	var effects []Effect
	if c.scrollHeld {
		c.scrollHeld = false
		effects = append(effects, Effect{Kind: ReleaseScrollLock})
	}
	if c.escAttached {
		c.escAttached = false
		effects = append(effects, Effect{Kind: DetachEscListener})
	}
	return effects
}
