package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func modalKeyCmd(key string) tea.Cmd {
	return func() tea.Msg { return modalKeyMsg{Key: key} }
}

func quitCmd() tea.Msg { return QuitMsg{} }

func toggleHelpCmd() tea.Msg { return ToggleHelpMsg{} }

func jumpCmd(section string) tea.Cmd {
	return func() tea.Msg { return JumpToSectionMsg{Section: section} }
}

// focusDismissCmd defers focusing the close control until Bubble Tea has
// rendered the frame in which the modal first appears.
func focusDismissCmd() tea.Msg { return focusDismissMsg{} }

// clearModalCmd schedules the end of the modal's exit transition.
func clearModalCmd(after time.Duration, gen int) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearModalMsg{Gen: gen}
	})
}
