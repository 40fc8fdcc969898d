package ui

import "folio/internal/content"

// OpenProjectMsg opens the detail modal for a project (enter in the gallery).
type OpenProjectMsg struct {
	Project content.Project
}

// modalKeyMsg hands a key to the modal controller. Sent by the Esc binding,
// which exists only while the modal is open.
type modalKeyMsg struct {
	Key string
}

// JumpToSectionMsg scrolls the page to a section anchor and focuses it (SPC g _).
type JumpToSectionMsg struct {
	Section string
}

// ToggleHelpMsg shows or hides the full key help (SPC ?).
type ToggleHelpMsg struct{}

// QuitMsg tears the page down and exits.
type QuitMsg struct{}

// focusDismissMsg moves focus to the modal's close control. It is
// delivered as a command result, i.e. after the open state has rendered.
type focusDismissMsg struct{}

// clearModalMsg fires when the close delay elapses for generation Gen.
type clearModalMsg struct {
	Gen int
}
