package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"folio/internal/content"
	"folio/internal/modal"
)

// modalControls returns the focusable controls of the modal for p, close first.
func modalControls(p content.Project) []string {
	ids := []string{FocusModalClose}
	if p.DemoURL != "" {
		ids = append(ids, FocusModalDemo)
	}
	if p.GithubURL != "" {
		ids = append(ids, FocusModalGithub)
	}
	return ids
}

var controlLabels = map[string]string{
	FocusModalClose:  "✕ Close",
	FocusModalDemo:   "Live demo",
	FocusModalGithub: "Source",
}

// RenderProjectModal renders the detail box for st. While the modal is
// closing it renders dimmed; with no selection it renders nothing.
func RenderProjectModal(st modal.State, focused string, width int) string {
	if st.Selected == nil {
		return ""
	}
	p := *st.Selected
	inner := modalWidth(width)

	var b strings.Builder
	b.WriteString(Styles.Title.Render(p.Title))
	b.WriteString("\n\n")
	b.WriteString(wrap(p.Detail(), inner))

	if len(p.Technologies) > 0 {
		b.WriteString("\n\n" + Styles.Muted.Render("Technologies") + "\n")
		tags := make([]string, len(p.Technologies))
		for i, t := range p.Technologies {
			tags[i] = Styles.Tag.Render(t)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tags...))
	}
	if len(p.Features) > 0 {
		b.WriteString("\n\n" + Styles.Muted.Render("Features"))
		for _, f := range p.Features {
			b.WriteString("\n• " + runewidth.Truncate(f, inner-2, "…"))
		}
	}
	if p.Challenges != "" {
		b.WriteString("\n\n" + Styles.Muted.Render("Challenges") + "\n")
		b.WriteString(wrap(p.Challenges, inner))
	}
	if p.DemoURL != "" || p.GithubURL != "" {
		b.WriteString("\n")
		if p.DemoURL != "" {
			b.WriteString("\n" + Styles.Link.Render(p.DemoURL))
		}
		if p.GithubURL != "" {
			b.WriteString("\n" + Styles.Link.Render(p.GithubURL))
		}
	}

	controls := modalControls(p)
	buttons := make([]string, len(controls))
	for i, id := range controls {
		style := Styles.Button
		if st.Open && id == focused {
			style = Styles.ButtonOn
		}
		buttons[i] = style.Render(controlLabels[id])
	}
	b.WriteString("\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, buttons...))

	box := Styles.Modal
	if st.Closing() {
		box = Styles.ModalClosing
	}
	return box.Width(inner + 4).Render(b.String())
}

// modalWidth is the text width inside the modal box for a terminal width.
func modalWidth(termWidth int) int {
	w := termWidth - 12
	switch {
	case w > 72:
		return 72
	case w < 20:
		return 20
	}
	return w
}

// wrap word-wraps s to width columns, keeping paragraph breaks.
func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(strings.TrimSpace(s))
}
