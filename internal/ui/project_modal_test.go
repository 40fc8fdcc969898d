package ui

import (
	"strings"
	"testing"

	"folio/internal/content"
	"folio/internal/modal"
)

func TestRenderProjectModal_NoSelection(t *testing.T) {
	if got := RenderProjectModal(modal.State{}, "", 80); got != "" {
		t.Errorf("expected empty render, got %q", got)
	}
}

func TestRenderProjectModal_Content(t *testing.T) {
	p := content.Project{
		ID:              3,
		Title:           "Gamefinder",
		Description:     "short",
		FullDescription: "A longer description.",
		Technologies:    []string{"Python", "Flask"},
		Features:        []string{"Filters"},
		Challenges:      "Tuning similarity.",
		DemoURL:         "https://demo.example.dev",
	}
	out := RenderProjectModal(modal.State{Selected: &p, Open: true}, FocusModalClose, 100)

	for _, want := range []string{"Gamefinder", "A longer description.", "Python", "Flask", "Filters", "Tuning similarity.", "https://demo.example.dev", "Close", "Live demo"} {
		if !strings.Contains(out, want) {
			t.Errorf("modal missing %q", want)
		}
	}
	if strings.Contains(out, "short") {
		t.Error("full description should replace the short one")
	}
	if strings.Contains(out, "Source") {
		t.Error("no github url, no source control")
	}
}

func TestModalControls(t *testing.T) {
	tests := []struct {
		name string
		p    content.Project
		want []string
	}{
		{"close only", content.Project{}, []string{FocusModalClose}},
		{"demo", content.Project{DemoURL: "d"}, []string{FocusModalClose, FocusModalDemo}},
		{"both", content.Project{DemoURL: "d", GithubURL: "g"}, []string{FocusModalClose, FocusModalDemo, FocusModalGithub}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := modalControls(tt.p)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModalWidth_Clamps(t *testing.T) {
	if got := modalWidth(10); got != 20 {
		t.Errorf("narrow: got %d", got)
	}
	if got := modalWidth(500); got != 72 {
		t.Errorf("wide: got %d", got)
	}
	if got := modalWidth(60); got != 48 {
		t.Errorf("medium: got %d", got)
	}
}

func TestRenderPage_AnchorsInOrder(t *testing.T) {
	r := renderPage(testPortfolio.Profile, "typed", "gallery", FocusAbout, 80)

	prev := -1
	for _, id := range sectionOrder {
		off, ok := r.Anchors[id]
		if !ok {
			t.Fatalf("missing anchor %q", id)
		}
		if off <= prev {
			t.Errorf("anchor %q at %d not after %d", id, off, prev)
		}
		prev = off
	}
	for _, want := range []string{"Test Person", "typed", "Languages", "me@example.dev"} {
		if !strings.Contains(r.Body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRenderContact_Empty(t *testing.T) {
	if got := renderContact(content.Profile{}); !strings.Contains(got, "No contact details") {
		t.Errorf("got %q", got)
	}
}
