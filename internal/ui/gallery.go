package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/content"
)

// projectItem implements list.DefaultItem for a Project.
type projectItem struct {
	project content.Project
}

func (p projectItem) FilterValue() string { return p.project.Title }
func (p projectItem) Title() string { return p.project.Title }
func (p projectItem) Description() string {
	desc := p.project.Description
	if len(p.project.Technologies) > 0 {
		desc += "  [" + strings.Join(p.project.Technologies, ", ") + "]"
	}
	return desc
}

// GalleryView lists projects. Enter on the selected item asks the app to open it.
type GalleryView struct {
	list     list.Model
	Projects []content.Project
}

// Ensure GalleryView implements View.
var _ View = (*GalleryView)(nil)

// NewGalleryView creates a gallery for the given projects.
func NewGalleryView(projects []content.Project) *GalleryView {
	items := make([]list.Item, len(projects))
	for i, p := range projects {
		items[i] = projectItem{project: p}
	}

	l := list.New(items, NewCompactListDelegate(), 60, galleryHeight(len(projects)))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(len(projects) > maxGalleryRows)
	l.DisableQuitKeybindings()

	return &GalleryView{list: l, Projects: projects}
}

const maxGalleryRows = 6

// Each default-delegate row is two lines high.
func galleryHeight(n int) int {
	if n > maxGalleryRows {
		n = maxGalleryRows
	}
	if n == 0 {
		n = 1
	}
	return n*2 + 1
}

// Selected returns the index of the highlighted project.
func (g *GalleryView) Selected() int {
	return g.list.Index()
}

// SelectedProject returns the highlighted project.
func (g *GalleryView) SelectedProject() (content.Project, bool) {
	i := g.list.Index()
	if i < 0 || i >= len(g.Projects) {
		return content.Project{}, false
	}
	return g.Projects[i], true
}

// SetWidth resizes the list.
func (g *GalleryView) SetWidth(w int) {
	g.list.SetWidth(w)
}

// Init implements View.
func (g *GalleryView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (g *GalleryView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "enter" {
		p, ok := g.SelectedProject()
		if !ok {
			return g, nil
		}
		return g, func() tea.Msg { return OpenProjectMsg{Project: p} }
	}
	var cmd tea.Cmd
	g.list, cmd = g.list.Update(msg)
	return g, cmd
}

// View implements View.
func (g *GalleryView) View() string {
	if len(g.Projects) == 0 {
		return Styles.Empty.Render("No projects yet.")
	}
	return g.list.View()
}
