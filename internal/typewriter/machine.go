package typewriter

import (
	"time"

	"golang.org/x/text/unicode/norm"
)

// Phase is the current step of the type/pause/delete cycle.
type Phase int

const (
	PhaseTyping Phase = iota
	PhasePausingBeforeDelete
	PhaseDeleting
)

// String returns a human-readable label for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseTyping:
		return "typing"
	case PhasePausingBeforeDelete:
		return "pausing"
	case PhaseDeleting:
		return "deleting"
	default:
		return "unknown"
	}
}

// Config is immutable for the lifetime of a Machine.
type Config struct {
	Texts        []string
	TypeSpeed    time.Duration
	DeleteSpeed  time.Duration
	DelayBetween time.Duration
}

// State is a snapshot of the machine for rendering and tests.
type State struct {
	Index   int
	Display string
	Phase   Phase
}

// Effect is the side effect the host loop must perform after a transition.
// The zero value means nothing is scheduled.
type Effect struct {
	Schedule bool
	After    time.Duration
}

// None is the empty effect.
var None = Effect{}

func schedule(d time.Duration) Effect {
	return Effect{Schedule: true, After: d}
}

// Machine cycles through Config.Texts forever, one rune per tick.
// It holds no timers; callers interpret the returned Effect.
type Machine struct {
	cfg     Config
	texts   [][]rune
	index   int
	shown   int // runes of texts[index] currently displayed
	phase   Phase
	stopped bool
}

// New creates a machine in the Typing phase at index 0 with empty display.
// Texts are NFC-normalized so a precomposable accent is typed in one step.
func New(cfg Config) *Machine {
	texts := make([][]rune, len(cfg.Texts))
	for i, s := range cfg.Texts {
		texts[i] = []rune(norm.NFC.String(s))
	}
	return &Machine{cfg: cfg, texts: texts, phase: PhaseTyping}
}

// State returns the current state.
func (m *Machine) State() State {
	return State{Index: m.index, Display: m.Display(), Phase: m.phase}
}

// Display returns the text to render.
func (m *Machine) Display() string {
	if len(m.texts) == 0 {
		return ""
	}
	return string(m.texts[m.index][:m.shown])
}

// Stopped reports whether Stop has been called.
func (m *Machine) Stopped() bool {
	return m.stopped
}

// Start returns the effect that schedules the first tick.
// Empty configurations and stopped machines schedule nothing.
func (m *Machine) Start() Effect {
	if m.stopped || len(m.texts) == 0 {
		return None
	}
	return schedule(m.cfg.TypeSpeed)
}

// Tick advances the machine by exactly one step and returns the next effect.
func (m *Machine) Tick() Effect {
	if m.stopped || len(m.texts) == 0 {
		return None
	}
	cur := m.texts[m.index]

	switch m.phase {
	case PhaseTyping:
		if m.shown < len(cur) {
			m.shown++
		}
		if m.shown == len(cur) {
			m.phase = PhasePausingBeforeDelete
			return schedule(m.cfg.DelayBetween)
		}
		return schedule(m.cfg.TypeSpeed)

	case PhasePausingBeforeDelete:
		m.phase = PhaseDeleting
		return m.deleteOne()

	case PhaseDeleting:
		return m.deleteOne()
	}
	return None
}

func (m *Machine) deleteOne() Effect {
	if m.shown > 0 {
		m.shown--
	}
	if m.shown == 0 {
		m.index = (m.index + 1) % len(m.texts)
		m.phase = PhaseTyping
		return schedule(m.cfg.TypeSpeed)
	}
	return schedule(m.cfg.DeleteSpeed)
}

// Stop tears the machine down. Subsequent ticks are no-ops.
func (m *Machine) Stop() {
	m.stopped = true
}
