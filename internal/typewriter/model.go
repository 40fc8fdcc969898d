package typewriter

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg drives a Model. ID and Tag route it to the instance and
// generation that scheduled it; anything else is dropped.
type TickMsg struct {
	Time time.Time
	ID   int
	Tag  int
}

// Model adapts a Machine to Bubble Tea. It interprets the machine's
// effects as tea.Tick commands so there is at most one outstanding tick.
type Model struct {
	Style  lipgloss.Style
	Cursor string

	machine *Machine
	id      int
	tag     int
}

// NewModel creates a Bubble Tea model for the given configuration.
func NewModel(cfg Config) Model {
	return Model{
		Cursor:  "▌",
		machine: New(cfg),
		id:      nextID(),
	}
}

// ID returns the instance identifier carried by this model's ticks.
func (m Model) ID() int {
	return m.id
}

// State returns the underlying machine state.
func (m Model) State() State {
	return m.machine.State()
}

// Init starts the cycle.
func (m Model) Init() tea.Cmd {
	return m.interpret(m.machine.Start())
}

// Update handles TickMsg for this instance.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok {
		return m, nil
	}
	if tick.ID != m.id || tick.Tag != m.tag || m.machine.Stopped() {
		return m, nil
	}
	m.tag++
	return m, m.interpret(m.machine.Tick())
}

// Stop tears down the effect. Ticks already in flight are ignored when
// they arrive because the tag no longer matches.
func (m Model) Stop() Model {
	m.machine.Stop()
	m.tag++
	return m
}

// View renders the current display text followed by the cursor.
func (m Model) View() string {
	return m.Style.Render(m.machine.Display() + m.Cursor)
}

func (m Model) interpret(e Effect) tea.Cmd {
	if !e.Schedule {
		return nil
	}
	id, tag := m.id, m.tag
	return tea.Tick(e.After, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id, Tag: tag}
	})
}
