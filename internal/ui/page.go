package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
)

// sectionOrder is the top-to-bottom layout of the page and its tab order.
var sectionOrder = []string{FocusHero, FocusAbout, FocusProjects, FocusContact}

var sectionTitles = map[string]string{
	FocusHero:     "Home",
	FocusAbout:    "About",
	FocusProjects: "Projects",
	FocusContact:  "Contact",
}

// pageRender is the rendered page plus the line offset of each section anchor.
type pageRender struct {
	Body    string
	Anchors map[string]int
}

// renderPage lays out all sections. hero is the typewriter line; gallery the
// rendered project list.
func renderPage(profile content.Profile, hero, gallery, focused string, width int) pageRender {
	inner := width - 6
	if inner < 20 {
		inner = 20
	}
	sections := map[string]string{
		FocusHero:     renderHero(profile, hero),
		FocusAbout:    renderAbout(profile, inner),
		FocusProjects: gallery,
		FocusContact:  renderContact(profile),
	}

	out := pageRender{Anchors: make(map[string]int, len(sectionOrder))}
	var blocks []string
	line := 0
	for _, id := range sectionOrder {
		frame := Styles.Section
		if id == focused {
			frame = Styles.SectionFocused
		}
		title := Styles.Title.Render(sectionTitles[id])
		block := frame.Width(inner + 4).Render(title + "\n" + sections[id])
		out.Anchors[id] = line
		line += lipgloss.Height(block)
		blocks = append(blocks, block)
	}
	out.Body = strings.Join(blocks, "\n")
	return out
}

func renderHero(profile content.Profile, typed string) string {
	var b strings.Builder
	b.WriteString(Styles.Hero.Render(profile.Name))
	if profile.Role != "" {
		b.WriteString(Styles.Muted.Render("  ·  " + profile.Role))
	}
	b.WriteString("\n\n")
	b.WriteString(typed)
	if profile.Location != "" {
		b.WriteString("\n" + Styles.Muted.Render(profile.Location))
	}
	return b.String()
}

func renderAbout(profile content.Profile, width int) string {
	var b strings.Builder
	if profile.About != "" {
		b.WriteString(wrap(profile.About, width))
		b.WriteString("\n")
	}
	if len(profile.Skills) == 0 {
		return b.String()
	}
	b.WriteString("\n" + renderSkillGrid(profile.Skills, width))
	return b.String()
}

// renderSkillGrid packs skill cards into rows that fit width.
func renderSkillGrid(skills []content.Skill, width int) string {
	cardWidth := lipgloss.Width(Styles.Card.Render(""))
	perRow := width / cardWidth
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for start := 0; start < len(skills); start += perRow {
		end := start + perRow
		if end > len(skills) {
			end = len(skills)
		}
		cards := make([]string, 0, end-start)
		for _, s := range skills[start:end] {
			body := Styles.Selected.Render(s.Name) + "\n" + Styles.Normal.Render(strings.Join(s.Items, ", "))
			cards = append(cards, Styles.Card.Render(body))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderContact(profile content.Profile) string {
	var lines []string
	if profile.Email != "" {
		lines = append(lines, fmt.Sprintf("%s  %s", Styles.Muted.Render("Email"), Styles.Link.Render(profile.Email)))
	}
	for _, l := range profile.Links {
		lines = append(lines, fmt.Sprintf("%s  %s", Styles.Muted.Render(l.Label), Styles.Link.Render(l.URL)))
	}
	if profile.Resume != "" {
		lines = append(lines, fmt.Sprintf("%s  %s", Styles.Muted.Render("Résumé"), Styles.Link.Render(profile.Resume)))
	}
	if len(lines) == 0 {
		return Styles.Empty.Render("No contact details.")
	}
	return strings.Join(lines, "\n")
}
