package ui

// Focus targets on the page and inside the project modal.
const (
	FocusHero     = "hero"
	FocusAbout    = "about"
	FocusProjects = "projects"
	FocusContact  = "contact"

	FocusModalClose  = "modal.close"
	FocusModalDemo   = "modal.demo"
	FocusModalGithub = "modal.github"
)

// FocusManager tracks and rotates focus. A trap narrows the order to an
// overlay's controls until it is released, then the previous focus returns.
type FocusManager struct {
	Current  string   // ID of the focused target
	Order    []string // Tab order
	OnChange func(from, to string)

	saved *focusScope
}

type focusScope struct {
	current string
	order   []string
}

// Next advances focus to the next target in order and returns it.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous target in order and returns it.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.indexOf(f.Current)
	var next int
	switch {
	case idx < 0 && delta > 0:
		next = 0
	case idx < 0:
		next = len(f.Order) - 1
	default:
		next = (idx + delta + len(f.Order)) % len(f.Order)
	}
	f.set(f.Order[next])
	return f.Current
}

// SetFocus focuses id if it is in the current order. A missing target is a no-op.
func (f *FocusManager) SetFocus(id string) bool {
	if f.indexOf(id) < 0 {
		return false
	}
	f.set(id)
	return true
}

// Has reports whether id is a focus target in the current order.
func (f *FocusManager) Has(id string) bool {
	return f.indexOf(id) >= 0
}

// Trap saves the current focus scope and restricts focus to order.
// Trapping while already trapped replaces the trapped order but keeps the
// originally saved scope.
func (f *FocusManager) Trap(order []string) {
	if f.saved == nil {
		f.saved = &focusScope{current: f.Current, order: f.Order}
	}
	f.Order = append([]string(nil), order...)
	if f.indexOf(f.Current) < 0 {
		f.Current = ""
	}
}

// Trapped reports whether a trap is active.
func (f *FocusManager) Trapped() bool {
	return f.saved != nil
}

// Release ends the trap and restores the saved focus. No-op when not trapped.
func (f *FocusManager) Release() {
	if f.saved == nil {
		return
	}
	s := f.saved
	f.saved = nil
	f.Order = s.order
	f.set(s.current)
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}
