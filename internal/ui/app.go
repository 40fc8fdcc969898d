package ui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	oteltrace "go.opentelemetry.io/otel/trace"

	"folio/internal/content"
	"folio/internal/modal"
	"folio/internal/scroll"
	"folio/internal/telemetry"
	"folio/internal/typewriter"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	footerHeight  = 3
)

// Options configures NewAppModel. Zero values pick sensible defaults.
type Options struct {
	Portfolio  content.Portfolio
	Typewriter typewriter.Config // Texts default to the profile's hero texts
	CloseDelay time.Duration
	ScrollLock *scroll.Lock
	Logger     *logrus.Logger
}

// AppModel is the root model: the scrolling page plus the project modal.
type AppModel struct {
	Portfolio  content.Portfolio
	Typewriter typewriter.Model
	Gallery    *GalleryView
	Modal      *modal.Controller
	Focus      *FocusManager
	KeyHandler *KeyHandler
	ScrollLock *scroll.Lock
	Log        *logrus.Logger

	page     viewport.Model
	anchors  map[string]int
	width    int
	showHelp bool
	torn     bool

	releaseScroll scroll.Release
	pending       []tea.Cmd // commands queued by modal effects
	span          oteltrace.Span
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	twCfg := opts.Typewriter
	if twCfg.Texts == nil {
		twCfg.Texts = opts.Portfolio.Profile.HeroTexts
	}
	lock := opts.ScrollLock
	if lock == nil {
		lock = scroll.Default
	}
	log := opts.Logger
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	tw := typewriter.NewModel(twCfg)
	tw.Style = Styles.Typewriter

	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", quitCmd, "Quit")
	reg.BindWithDesc("ctrl+c", quitCmd, "Quit")
	reg.BindWithDesc("SPC q", quitCmd, "Quit")
	reg.BindWithDesc("SPC ?", toggleHelpCmd, "Help")
	page := []AppMode{ModePage}
	reg.BindWithDescForMode("SPC g h", jumpCmd(FocusHero), "Home", page)
	reg.BindWithDescForMode("SPC g a", jumpCmd(FocusAbout), "About", page)
	reg.BindWithDescForMode("SPC g p", jumpCmd(FocusProjects), "Projects", page)
	reg.BindWithDescForMode("SPC g c", jumpCmd(FocusContact), "Contact", page)

	a := &AppModel{
		Portfolio:  opts.Portfolio,
		Typewriter: tw,
		Gallery:    NewGalleryView(opts.Portfolio.Projects),
		Modal:      modal.NewController(opts.CloseDelay),
		Focus:      &FocusManager{Current: FocusHero, Order: append([]string(nil), sectionOrder...)},
		KeyHandler: NewKeyHandler(reg),
		ScrollLock: lock,
		Log:        log,
		page:       viewport.New(defaultWidth, defaultHeight-footerHeight),
		width:      defaultWidth,
	}
	a.refresh()
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Mode is ModeModal while a project modal is open.
func (a *AppModel) Mode() AppMode {
	if a.Modal.State().Open {
		return ModeModal
	}
	return ModePage
}

// ScrollOffset returns the page's vertical scroll position.
func (a *AppModel) ScrollOffset() int {
	return a.page.YOffset
}

// Anchor returns the line offset of a section.
func (a *AppModel) Anchor(section string) int {
	return a.anchors[section]
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.Typewriter.Init(), a.Gallery.Init())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.torn {
		return a, nil
	}
	cmd := a.update(msg)
	if !a.torn {
		a.refresh()
	}
	return a, cmd
}

func (a *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.page.Width = msg.Width
		a.page.Height = max(msg.Height-footerHeight, 1)
		a.Gallery.SetWidth(max(msg.Width-8, 20))
		return nil
	case typewriter.TickMsg:
		var cmd tea.Cmd
		a.Typewriter, cmd = a.Typewriter.Update(msg)
		return cmd
	case OpenProjectMsg:
		return a.openProject(msg.Project)
	case modalKeyMsg:
		return a.finishClose(a.Modal.HandleKey(msg.Key))
	case focusDismissMsg:
		a.focusDismiss()
		return nil
	case clearModalMsg:
		a.clearModal(msg.Gen)
		return nil
	case JumpToSectionMsg:
		a.jumpTo(msg.Section)
		return nil
	case ToggleHelpMsg:
		a.showHelp = !a.showHelp
		return nil
	case QuitMsg:
		a.Teardown()
		return tea.Quit
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.MouseMsg:
		return a.scrollPage(msg)
	}
	return nil
}

func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
		return cmd
	}

	if a.Mode() == ModeModal {
		// The page underneath gets no input while the modal is open.
		switch msg.String() {
		case "tab", "right", "l":
			a.Focus.Next()
		case "shift+tab", "left", "h":
			a.Focus.Prev()
		case "enter":
			if a.Focus.Current == FocusModalClose {
				return a.closeModal()
			}
		}
		return nil
	}

	switch msg.String() {
	case "tab":
		a.jumpTo(a.Focus.Next())
		return nil
	case "shift+tab":
		a.jumpTo(a.Focus.Prev())
		return nil
	}

	if a.Focus.Current == FocusProjects {
		switch msg.String() {
		case "j", "k", "up", "down", "home", "end", "enter":
			v, cmd := a.Gallery.Update(msg)
			if g, ok := v.(*GalleryView); ok {
				a.Gallery = g
			}
			return cmd
		}
	}
	return a.scrollPage(msg)
}

// scrollPage forwards input to the page viewport unless scrolling is locked.
func (a *AppModel) scrollPage(msg tea.Msg) tea.Cmd {
	if a.ScrollLock.Locked() {
		return nil
	}
	var cmd tea.Cmd
	a.page, cmd = a.page.Update(msg)
	return cmd
}

func (a *AppModel) jumpTo(section string) {
	if a.Mode() == ModeModal || a.ScrollLock.Locked() {
		return
	}
	off, ok := a.anchors[section]
	if !ok {
		return
	}
	a.Focus.SetFocus(section)
	a.page.SetYOffset(off)
}

func (a *AppModel) openProject(p content.Project) tea.Cmd {
	if a.torn {
		return nil
	}
	replacing := a.Modal.State().Open
	modal.Apply(a, a.Modal.Open(p))
	a.Focus.Trap(modalControls(p))

	attrs := oteltrace.WithAttributes(telemetry.ProjectAttributes(p)...)
	if a.span == nil {
		_, a.span = telemetry.Tracer().Start(context.Background(), telemetry.SpanModal, attrs)
	} else {
		a.span.AddEvent("project.replace", attrs)
	}

	a.Log.WithFields(logrus.Fields{
		"project":   p.ID,
		"title":     p.Title,
		"replacing": replacing,
	}).Info("modal opened")
	return a.flush()
}

func (a *AppModel) closeModal() tea.Cmd {
	return a.finishClose(a.Modal.Close())
}

// finishClose applies the effects of a close. Empty effects mean the modal
// was not open and nothing happens.
func (a *AppModel) finishClose(effects []modal.Effect) tea.Cmd {
	if effects == nil {
		return nil
	}
	modal.Apply(a, effects)
	a.Focus.Release()
	if a.span != nil {
		a.span.AddEvent("project.close")
	}
	a.Log.WithField("delay", a.Modal.CloseDelay()).Info("modal closing")
	return a.flush()
}

func (a *AppModel) focusDismiss() {
	if !a.Modal.State().Open {
		return
	}
	a.Focus.SetFocus(FocusModalClose)
}

func (a *AppModel) clearModal(gen int) {
	if !a.Modal.ClearExpired(gen) {
		a.Log.WithField("gen", gen).Debug("stale modal clear ignored")
		return
	}
	a.endSpan()
	a.Log.Debug("modal cleared")
}

func (a *AppModel) endSpan() {
	if a.span != nil {
		a.span.End()
		a.span = nil
	}
}

// flush returns queued effect commands as one batch.
func (a *AppModel) flush() tea.Cmd {
	cmds := a.pending
	a.pending = nil
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// Teardown stops the typewriter and releases everything the modal holds.
// The model ignores all messages afterwards.
func (a *AppModel) Teardown() {
	if a.torn {
		return
	}
	a.Typewriter = a.Typewriter.Stop()
	modal.Apply(a, a.Modal.Teardown())
	a.ReleaseScrollLock()
	a.Focus.Release()
	a.pending = nil
	a.endSpan()
	a.torn = true
	a.Log.Info("page torn down")
}

// refresh re-renders the page content and recomputes section anchors.
func (a *AppModel) refresh() {
	focused := a.Focus.Current
	if a.Focus.Trapped() {
		focused = ""
	}
	r := renderPage(a.Portfolio.Profile, a.Typewriter.View(), a.Gallery.View(), focused, a.width)
	a.page.SetContent(r.Body)
	a.anchors = r.Anchors
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	body := a.page.View()
	if st := a.Modal.State(); st.Selected != nil {
		box := RenderProjectModal(st, a.Focus.Current, a.width)
		body = lipgloss.Place(a.width, a.page.Height, lipgloss.Center, lipgloss.Center, box)
	}

	mode := a.Mode()
	footer := RenderFooter(mode)
	switch {
	case a.KeyHandler.LeaderWaiting:
		footer = RenderKeybindHelp(a.KeyHandler, mode)
	case a.showHelp:
		footer = RenderFullHelp(a.KeyHandler.Registry, mode)
	}
	return body + "\n" + footer
}
