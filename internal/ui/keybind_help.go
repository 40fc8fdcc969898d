package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient help bar shown after SPC.
// With a partial sequence (e.g. "SPC g") it shows the next-level keys.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil {
		return ""
	}
	km := NewKeyMap(keyHandler.Registry, keyHandler, mode)
	bindings := km.ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = Styles.Selected
	helpModel.Styles.ShortDesc = Styles.Muted
	helpModel.Styles.ShortSeparator = Styles.Muted

	prefix := keyHandler.LeaderSeq
	if len(keyHandler.Buffer) > 0 {
		prefix = strings.Join(keyHandler.Buffer, " ")
	}
	content := Styles.Muted.Render(prefix) + " " + helpModel.ShortHelpView(bindings)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		Render(content)
}

// RenderFooter is the always-visible one-line hint under the page.
func RenderFooter(mode AppMode) string {
	if mode == ModeModal {
		return Styles.Hint.Render("esc close  tab cycle links  SPC commands")
	}
	return Styles.Hint.Render("tab section  j/k move  enter open  SPC commands  q quit")
}

// RenderFullHelp lists every binding for mode, two columns, sorted by key (SPC ?).
func RenderFullHelp(reg *KeybindRegistry, mode AppMode) string {
	if reg == nil {
		return ""
	}
	hints := reg.Hints(mode)
	seqs := make([]string, 0, len(hints))
	for s := range hints {
		seqs = append(seqs, s)
	}
	sort.Strings(seqs)

	half := (len(seqs) + 1) / 2
	columns := [][]key.Binding{nil, nil}
	for i, s := range seqs {
		b := key.NewBinding(key.WithKeys(s), key.WithHelp(s, hints[s]))
		columns[i/max(half, 1)] = append(columns[i/max(half, 1)], b)
	}

	helpModel := help.New()
	helpModel.Styles.FullKey = Styles.Selected
	helpModel.Styles.FullDesc = Styles.Muted
	helpModel.Styles.FullSeparator = Styles.Muted
	return helpModel.FullHelpView(columns)
}
