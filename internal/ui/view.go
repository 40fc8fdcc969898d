package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a page region with Bubble Tea's Init/Update/View trio. Update
// returns the View so regions can be swapped without a type switch.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
