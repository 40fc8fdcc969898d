package ui

import (
	"time"

	"folio/internal/modal"
)

// Ensure AppModel carries out modal effects.
var _ modal.Host = (*AppModel)(nil)

// AcquireScrollLock implements modal.Host.
func (a *AppModel) AcquireScrollLock() {
	if a.releaseScroll == nil {
		a.releaseScroll = a.ScrollLock.Acquire()
	}
}

// ReleaseScrollLock implements modal.Host.
func (a *AppModel) ReleaseScrollLock() {
	if a.releaseScroll != nil {
		a.releaseScroll()
		a.releaseScroll = nil
	}
}

// AttachEscListener implements modal.Host by binding Esc in the registry.
// Binding replaces, so repeated attaches never stack handlers.
func (a *AppModel) AttachEscListener() {
	a.KeyHandler.Registry.BindWithDescForMode(modal.EscapeKey, modalKeyCmd(modal.EscapeKey), "Close", []AppMode{ModeModal})
}

// DetachEscListener implements modal.Host.
func (a *AppModel) DetachEscListener() {
	a.KeyHandler.Registry.Unbind(modal.EscapeKey)
}

// FocusDismiss implements modal.Host. Focus moves when focusDismissMsg arrives.
func (a *AppModel) FocusDismiss() {
	a.pending = append(a.pending, focusDismissCmd)
}

// ScheduleClear implements modal.Host.
func (a *AppModel) ScheduleClear(after time.Duration, gen int) {
	a.pending = append(a.pending, clearModalCmd(after, gen))
}
