package content

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DirEnv is the env var override for the content directory.
	DirEnv = "FOLIO_CONTENT_DIR"
	// FileName is the content file looked up inside the directory.
	FileName = "content.yaml"
)

//go:embed content.yaml
var defaultContent []byte

// Store reads portfolio content from a directory, falling back to the
// embedded default when no content file exists there.
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at dir, or at FOLIO_CONTENT_DIR if dir is empty.
// An empty result means only the embedded content is used.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = os.Getenv(DirEnv)
	}
	return &Store{baseDir: dir}
}

// BaseDir returns the directory the store reads from.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Path returns the content file path, or "" when using embedded content.
func (s *Store) Path() string {
	if s.baseDir == "" {
		return ""
	}
	return filepath.Join(s.baseDir, FileName)
}

// Load reads and validates the portfolio.
// A missing file yields the embedded default; malformed content is an error.
func (s *Store) Load() (Portfolio, error) {
	data := defaultContent
	source := "embedded " + FileName
	if path := s.Path(); path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			data, source = b, path
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Portfolio{}, fmt.Errorf("read %s: %w", path, err)
		}
	}
	return Parse(data, source)
}

// Parse decodes YAML content; source is used in error messages.
func Parse(data []byte, source string) (Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Portfolio{}, fmt.Errorf("parse %s: %w", source, err)
	}
	if err := p.Validate(); err != nil {
		return Portfolio{}, fmt.Errorf("%s: %w", source, err)
	}
	return p, nil
}

// Default returns the embedded portfolio. It panics if the embedded file is broken,
// which the package tests guard against.
func Default() Portfolio {
	p, err := Parse(defaultContent, "embedded "+FileName)
	if err != nil {
		panic(err)
	}
	return p
}
