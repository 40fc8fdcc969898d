// Package content holds the static portfolio data: profile copy, skills and projects.
package content

import (
	"errors"
	"fmt"
	"strings"
)

// Project is a portfolio entry shown in the gallery and the detail modal.
type Project struct {
	ID              int      `yaml:"id"`
	Title           string   `yaml:"title"`
	Description     string   `yaml:"description"`
	FullDescription string   `yaml:"full_description,omitempty"`
	Technologies    []string `yaml:"technologies"`
	Features        []string `yaml:"features,omitempty"`
	Challenges      string   `yaml:"challenges,omitempty"`
	DemoURL         string   `yaml:"demo_url,omitempty"`
	GithubURL       string   `yaml:"github_url,omitempty"`
	Image           string   `yaml:"image,omitempty"`
}

// Detail returns FullDescription, falling back to Description.
func (p Project) Detail() string {
	if p.FullDescription != "" {
		return p.FullDescription
	}
	return p.Description
}

// Skill is one tile in the about/skills grid.
type Skill struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

// Link is a contact entry (e.g. "GitHub" -> URL).
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Profile is the hero, about and contact copy.
type Profile struct {
	Name      string   `yaml:"name"`
	Role      string   `yaml:"role"`
	HeroTexts []string `yaml:"hero_texts"`
	About     string   `yaml:"about"`
	Email     string   `yaml:"email"`
	Links     []Link   `yaml:"links"`
	Location  string   `yaml:"location,omitempty"`
	Resume    string   `yaml:"resume,omitempty"`
	Skills    []Skill  `yaml:"skills"`
}

// Portfolio is everything the page renders.
type Portfolio struct {
	Profile  Profile   `yaml:"profile"`
	Projects []Project `yaml:"projects"`
}

// ErrInvalid is wrapped by Validate failures.
var ErrInvalid = errors.New("invalid portfolio")

// Validate checks project identity. Empty hero texts are allowed.
func (p Portfolio) Validate() error {
	seen := make(map[int]bool, len(p.Projects))
	for i, proj := range p.Projects {
		if proj.ID == 0 {
			return fmt.Errorf("%w: project %d has no id", ErrInvalid, i)
		}
		if seen[proj.ID] {
			return fmt.Errorf("%w: duplicate project id %d", ErrInvalid, proj.ID)
		}
		seen[proj.ID] = true
		if strings.TrimSpace(proj.Title) == "" {
			return fmt.Errorf("%w: project %d has no title", ErrInvalid, proj.ID)
		}
	}
	return nil
}

// ProjectByID returns the project with the given id.
func (p Portfolio) ProjectByID(id int) (Project, bool) {
	for _, proj := range p.Projects {
		if proj.ID == id {
			return proj, true
		}
	}
	return Project{}, false
}
