package modal

import "time"

// EffectKind tags an Effect.
type EffectKind int

const (
	AcquireScrollLock EffectKind = iota
	ReleaseScrollLock
	AttachEscListener
	DetachEscListener
	FocusDismiss  // move focus to the close control after the next render
	ScheduleClear // call ClearExpired(Gen) after After
)

func (k EffectKind) String() string {
	switch k {
	case AcquireScrollLock:
		return "acquire-scroll-lock"
	case ReleaseScrollLock:
		return "release-scroll-lock"
	case AttachEscListener:
		return "attach-esc"
	case DetachEscListener:
		return "detach-esc"
	case FocusDismiss:
		return "focus-dismiss"
	case ScheduleClear:
		return "schedule-clear"
	default:
		return "unknown"
	}
}

// Effect is a side effect requested by the Controller.
type Effect struct {
	Kind  EffectKind
	After time.Duration // ScheduleClear only
	Gen   int           // ScheduleClear only
}

// Host carries out effects. Implementations live in the view layer.
type Host interface {
	AcquireScrollLock()
	ReleaseScrollLock()
	AttachEscListener()
	DetachEscListener()
	FocusDismiss()
	ScheduleClear(after time.Duration, gen int)
}

// Apply runs effects against h in order.
func Apply(h Host, effects []Effect) {
	for _, e := range effects {
		switch e.Kind {
		case AcquireScrollLock:
			h.AcquireScrollLock()
		case ReleaseScrollLock:
			h.ReleaseScrollLock()
		case AttachEscListener:
			h.AttachEscListener()
		case DetachEscListener:
			h.DetachEscListener()
		case FocusDismiss:
			h.FocusDismiss()
		case ScheduleClear:
			h.ScheduleClear(e.After, e.Gen)
		}
	}
}
