package typewriter

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_InitSchedulesTick(t *testing.T) {
	m := NewModel(unitConfig("hi"))
	require.NotNil(t, m.Init())
}

func TestModel_InitWithEmptyTextsSchedulesNothing(t *testing.T) {
	m := NewModel(unitConfig())
	assert.Nil(t, m.Init())
	assert.Equal(t, "▌", m.View())
}

func TestModel_TickAdvancesAndReschedules(t *testing.T) {
	m := NewModel(unitConfig("hi"))

	m, cmd := m.Update(TickMsg{ID: m.ID(), Tag: 0})
	require.NotNil(t, cmd)
	assert.Equal(t, "h", m.State().Display)

	m, cmd = m.Update(TickMsg{ID: m.ID(), Tag: 1})
	require.NotNil(t, cmd)
	assert.Equal(t, "hi", m.State().Display)
	assert.True(t, strings.HasPrefix(m.View(), "hi"))
}

func TestModel_IgnoresForeignAndStaleTicks(t *testing.T) {
	m := NewModel(unitConfig("hi"))
	other := NewModel(unitConfig("hi"))
	require.NotEqual(t, m.ID(), other.ID())

	m, cmd := m.Update(TickMsg{ID: other.ID(), Tag: 0})
	assert.Nil(t, cmd)
	assert.Equal(t, "", m.State().Display)

	m, _ = m.Update(TickMsg{ID: m.ID(), Tag: 0})
	// Replaying the same tag must not double-step.
	m, cmd = m.Update(TickMsg{ID: m.ID(), Tag: 0})
	assert.Nil(t, cmd)
	assert.Equal(t, "h", m.State().Display)
}

func TestModel_NoMutationAfterStop(t *testing.T) {
	m := NewModel(unitConfig("hello"))
	m, _ = m.Update(TickMsg{ID: m.ID(), Tag: 0})
	before := m.State()

	m = m.Stop()

	// Tag 1 was in flight at teardown; none of these may step the machine.
	for tag := 0; tag < 5; tag++ {
		var cmd tea.Cmd
		m, cmd = m.Update(TickMsg{ID: m.ID(), Tag: tag})
		assert.Nil(t, cmd)
	}
	assert.Equal(t, before, m.State())
}

func TestModel_IgnoresOtherMessages(t *testing.T) {
	m := NewModel(unitConfig("hi"))
	m, cmd := m.Update("not a tick")
	assert.Nil(t, cmd)
	assert.Equal(t, "", m.State().Display)
}
