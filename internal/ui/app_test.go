package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/content"
	"folio/internal/modal"
	"folio/internal/scroll"
	"folio/internal/typewriter"
)

var testPortfolio = content.Portfolio{
	Profile: content.Profile{
		Name:      "Test Person",
		Role:      "Engineer",
		HeroTexts: []string{"ab"},
		About:     "About text.",
		Email:     "me@example.dev",
		Skills: []content.Skill{
			{Name: "Languages", Items: []string{"Go"}},
			{Name: "Tools", Items: []string{"tmux"}},
		},
	},
	Projects: []content.Project{
		{ID: 1, Title: "Mailroom", Description: "mail", GithubURL: "https://example.dev/mailroom"},
		{ID: 2, Title: "Tunewire", Description: "music"},
	},
}

func newTestApp(t *testing.T) (*AppModel, *appModelAdapter, *scroll.Lock) {
	t.Helper()
	lock := &scroll.Lock{}
	a := NewAppModel(Options{
		Portfolio: testPortfolio,
		Typewriter: typewriter.Config{
			TypeSpeed:    time.Millisecond,
			DeleteSpeed:  time.Millisecond,
			DelayBetween: time.Millisecond,
		},
		ScrollLock: lock,
	})
	return a, &appModelAdapter{AppModel: a}, lock
}

// send delivers msg and, for synchronous commands, the message they produce.
func send(adapter *appModelAdapter, msg tea.Msg) tea.Cmd {
	_, cmd := adapter.Update(msg)
	return cmd
}

// openFirstProject opens project 1 through the gallery and returns the
// command queued by the open (the deferred focus).
func openFirstProject(t *testing.T, a *AppModel, adapter *appModelAdapter) tea.Cmd {
	t.Helper()
	a.Focus.SetFocus(FocusProjects)
	cmd := send(adapter, keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter in gallery should produce OpenProjectMsg")
	}
	msg, ok := cmd().(OpenProjectMsg)
	if !ok {
		t.Fatalf("expected OpenProjectMsg, got %T", cmd())
	}
	return send(adapter, msg)
}

func TestApp_EnterOpensSelectedProject(t *testing.T) {
	a, adapter, lock := newTestApp(t)

	focusCmd := openFirstProject(t, a, adapter)

	st := a.Modal.State()
	if !st.Open || st.Selected == nil || st.Selected.ID != 1 {
		t.Fatalf("expected project 1 open, got %+v", st)
	}
	if a.Mode() != ModeModal {
		t.Errorf("Mode: got %v", a.Mode())
	}
	if !lock.Locked() {
		t.Error("scroll should be locked while open")
	}
	if !a.KeyHandler.Registry.Bound(modal.EscapeKey) {
		t.Error("esc should be bound while open")
	}
	if a.Focus.Current == FocusModalClose {
		t.Error("focus must not move before the modal has rendered")
	}

	if focusCmd == nil {
		t.Fatal("expected deferred focus command")
	}
	if !strings.Contains(adapter.View(), "Mailroom") {
		t.Error("modal should render the project title")
	}
	send(adapter, focusCmd())
	if a.Focus.Current != FocusModalClose {
		t.Errorf("focus: expected %q, got %q", FocusModalClose, a.Focus.Current)
	}
}

func TestApp_EscClosesAndKeepsSelectionUntilDelay(t *testing.T) {
	a, adapter, lock := newTestApp(t)
	send(adapter, openFirstProject(t, a, adapter)())

	cmd := send(adapter, keyMsg("esc"))
	if cmd == nil {
		t.Fatal("esc should be handled while open")
	}
	msg, ok := cmd().(modalKeyMsg)
	if !ok || msg.Key != modal.EscapeKey {
		t.Fatalf("expected modalKeyMsg for esc, got %+v", cmd())
	}
	if clear := send(adapter, msg); clear == nil {
		t.Error("close should schedule the clear")
	}

	st := a.Modal.State()
	if st.Open {
		t.Error("expected closed")
	}
	if st.Selected == nil || st.Selected.ID != 1 {
		t.Fatalf("selection should be readable during the exit transition, got %+v", st.Selected)
	}
	if lock.Locked() {
		t.Error("scroll should be restored on close")
	}
	if a.KeyHandler.Registry.Bound(modal.EscapeKey) {
		t.Error("esc should be unbound after close")
	}
	if a.Focus.Current != FocusProjects {
		t.Errorf("focus should return to projects, got %q", a.Focus.Current)
	}
	if !strings.Contains(adapter.View(), "Mailroom") {
		t.Error("closing modal should still render")
	}

	send(adapter, clearModalMsg{Gen: a.Modal.Generation()})
	if a.Modal.State().Selected != nil {
		t.Error("selection should clear after the delay")
	}
}

func TestApp_EscWhileClosedDoesNothing(t *testing.T) {
	a, adapter, lock := newTestApp(t)

	if cmd := send(adapter, keyMsg("esc")); cmd != nil {
		t.Errorf("esc while closed should produce no command")
	}
	if a.Modal.State() != (modal.State{}) {
		t.Errorf("state changed: %+v", a.Modal.State())
	}
	if lock.Locked() {
		t.Error("scroll should not be locked")
	}
}

func TestApp_OpenWhileOpenReplaces(t *testing.T) {
	a, adapter, lock := newTestApp(t)
	openFirstProject(t, a, adapter)

	send(adapter, OpenProjectMsg{Project: testPortfolio.Projects[1]})

	st := a.Modal.State()
	if !st.Open || st.Selected == nil || st.Selected.ID != 2 {
		t.Fatalf("expected project 2 open, got %+v", st)
	}
	if lock.Holds() != 1 {
		t.Errorf("expected a single scroll hold, got %d", lock.Holds())
	}
}

func TestApp_ReopenDuringDelayIgnoresStaleClear(t *testing.T) {
	a, adapter, _ := newTestApp(t)
	openFirstProject(t, a, adapter)
	send(adapter, modalKeyMsg{Key: modal.EscapeKey})
	stale := a.Modal.Generation()

	send(adapter, OpenProjectMsg{Project: testPortfolio.Projects[1]})
	send(adapter, clearModalMsg{Gen: stale})

	st := a.Modal.State()
	if !st.Open || st.Selected == nil || st.Selected.ID != 2 {
		t.Fatalf("stale clear must not affect the reopened modal, got %+v", st)
	}
}

func TestApp_NonEscModalKeyKeepsModalOpen(t *testing.T) {
	a, adapter, lock := newTestApp(t)
	openFirstProject(t, a, adapter)

	if cmd := send(adapter, modalKeyMsg{Key: "q"}); cmd != nil {
		t.Error("non-esc modal key should produce no command")
	}
	if !a.Modal.State().Open || !lock.Locked() {
		t.Error("modal should stay open")
	}
}

func TestApp_EscDuringLeaderClosesModal(t *testing.T) {
	a, adapter, lock := newTestApp(t)
	send(adapter, openFirstProject(t, a, adapter)())

	send(adapter, keyMsg(" "))
	if !a.KeyHandler.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}
	cmd := send(adapter, keyMsg("esc"))
	if a.KeyHandler.LeaderWaiting {
		t.Error("esc should cancel the leader")
	}
	if cmd == nil {
		t.Fatal("esc should still reach the modal binding")
	}
	send(adapter, cmd())
	if a.Modal.State().Open {
		t.Error("esc during leader should close the modal")
	}
	if lock.Locked() {
		t.Error("scroll should be restored")
	}
}

func TestApp_TabCyclesModalControls(t *testing.T) {
	a, adapter, _ := newTestApp(t)
	send(adapter, openFirstProject(t, a, adapter)())

	send(adapter, keyMsg("tab"))
	if a.Focus.Current != FocusModalGithub {
		t.Errorf("tab: got %q", a.Focus.Current)
	}
	send(adapter, keyMsg("tab"))
	if a.Focus.Current != FocusModalClose {
		t.Errorf("tab should wrap inside the modal, got %q", a.Focus.Current)
	}
}

func TestApp_EnterOnCloseControlCloses(t *testing.T) {
	a, adapter, _ := newTestApp(t)
	send(adapter, openFirstProject(t, a, adapter)())

	send(adapter, keyMsg("enter"))
	if a.Modal.State().Open {
		t.Error("enter on close control should close the modal")
	}
}

func TestApp_ScrollLockedWhileOpen(t *testing.T) {
	a, adapter, _ := newTestApp(t)
	send(adapter, tea.WindowSizeMsg{Width: 80, Height: 10})

	send(adapter, keyMsg("down"))
	if a.ScrollOffset() != 1 {
		t.Fatalf("page should scroll when closed, offset=%d", a.ScrollOffset())
	}

	openFirstProject(t, a, adapter)
	before := a.ScrollOffset()
	send(adapter, keyMsg("down"))
	send(adapter, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if a.ScrollOffset() != before {
		t.Errorf("page scrolled while modal open: %d -> %d", before, a.ScrollOffset())
	}
}

func TestApp_JumpToSection(t *testing.T) {
	a, adapter, _ := newTestApp(t)
	send(adapter, tea.WindowSizeMsg{Width: 80, Height: 10})

	send(adapter, keyMsg(" "))
	send(adapter, keyMsg("g"))
	cmd := send(adapter, keyMsg("c"))
	if cmd == nil {
		t.Fatal("SPC g c should be bound")
	}
	send(adapter, cmd())

	if a.Focus.Current != FocusContact {
		t.Errorf("focus: got %q", a.Focus.Current)
	}
	if a.ScrollOffset() == 0 {
		t.Error("page should scroll towards the contact anchor")
	}
	if a.Anchor(FocusContact) <= a.Anchor(FocusProjects) {
		t.Errorf("anchors out of order: %d <= %d", a.Anchor(FocusContact), a.Anchor(FocusProjects))
	}
}

func TestApp_LeaderShowsHelp(t *testing.T) {
	_, adapter, _ := newTestApp(t)
	send(adapter, keyMsg(" "))
	if !strings.Contains(adapter.View(), "Go to") {
		t.Error("leader help should list the Go to submenu")
	}
}

func TestApp_TypewriterTickUpdatesHero(t *testing.T) {
	a, adapter, _ := newTestApp(t)

	cmd := send(adapter, typewriter.TickMsg{ID: a.Typewriter.ID(), Tag: 0})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if got := a.Typewriter.State().Display; got != "a" {
		t.Errorf("Display: got %q", got)
	}
	if !strings.Contains(adapter.View(), "a") {
		t.Error("hero should render typed text")
	}
}

func TestApp_QuitTearsDownEverything(t *testing.T) {
	a, adapter, lock := newTestApp(t)
	send(adapter, typewriter.TickMsg{ID: a.Typewriter.ID(), Tag: 0})
	openFirstProject(t, a, adapter)
	display := a.Typewriter.State().Display

	cmd := send(adapter, QuitMsg{})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if lock.Locked() {
		t.Error("teardown must release the scroll lock")
	}
	if a.KeyHandler.Registry.Bound(modal.EscapeKey) {
		t.Error("teardown must detach esc")
	}
	if a.Modal.State() != (modal.State{}) {
		t.Errorf("modal state after teardown: %+v", a.Modal.State())
	}

	for tag := 0; tag < 4; tag++ {
		if c := send(adapter, typewriter.TickMsg{ID: a.Typewriter.ID(), Tag: tag}); c != nil {
			t.Errorf("tick %d after teardown scheduled more work", tag)
		}
	}
	if a.Typewriter.State().Display != display {
		t.Errorf("typewriter mutated after teardown: %q -> %q", display, a.Typewriter.State().Display)
	}
}

func TestApp_GalleryNavigation(t *testing.T) {
	a, adapter, _ := newTestApp(t)
	a.Focus.SetFocus(FocusProjects)

	send(adapter, keyMsg("j"))
	if a.Gallery.Selected() != 1 {
		t.Fatalf("j should move selection, got %d", a.Gallery.Selected())
	}
	cmd := send(adapter, keyMsg("enter"))
	msg, ok := cmd().(OpenProjectMsg)
	if !ok || msg.Project.ID != 2 {
		t.Errorf("expected OpenProjectMsg for project 2, got %+v", msg)
	}
}
