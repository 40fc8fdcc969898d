// Package scroll models the page's scroll state as a single shared resource.
// Holders acquire it for the span of an overlay and release it when the
// overlay goes away; the page refuses scroll input while any hold exists.
package scroll

import "sync"

// Lock is a counted scroll lock. The zero value is unlocked and ready to use.
type Lock struct {
	mu    sync.Mutex
	holds int
}

// Default is the process-wide lock used by the page.
var Default = &Lock{}

// Release returns a hold. Calling it more than once has no further effect.
type Release func()

// Acquire takes a hold and returns the function that gives it back.
func (l *Lock) Acquire() Release {
	l.mu.Lock()
	l.holds++
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			if l.holds > 0 {
				l.holds--
			}
			l.mu.Unlock()
		})
	}
}

// Locked reports whether scrolling is currently suppressed.
func (l *Lock) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holds > 0
}

// Holds returns the number of outstanding holds.
func (l *Lock) Holds() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holds
}
