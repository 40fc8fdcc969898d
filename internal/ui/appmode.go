package ui

// AppMode is the top-level interaction mode: browsing the page or reading a project modal.
type AppMode int

const (
	ModePage AppMode = iota
	ModeModal
)

func (m AppMode) String() string {
	switch m {
	case ModePage:
		return "Page"
	case ModeModal:
		return "Modal"
	default:
		return "Unknown"
	}
}
