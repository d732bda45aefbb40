// Package questions loads the static question catalogs fed to the scoring engine.
package questions

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/mbti/internal/scoring"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// ErrUnknownMode is returned for a mode name that is neither quick nor deep.
var ErrUnknownMode = errors.New("unknown quiz mode")

// Mode selects which question set is asked.
type Mode string

const (
	ModeQuick Mode = "quick"
	ModeDeep  Mode = "deep"
)

// Modes returns all modes in menu order.
func Modes() []Mode {
	return []Mode{ModeQuick, ModeDeep}
}

// ParseMode converts a user-supplied string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeQuick, ModeDeep:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// ModeInfo describes a mode for the selection screen.
type ModeInfo struct {
	Title   string `yaml:"title"`
	Blurb   string `yaml:"blurb"`
	Minutes int    `yaml:"minutes"`
}

type entry struct {
	scoring.Question `yaml:",inline"`
	Quick            bool `yaml:"quick"`
}

type document struct {
	Version   int               `yaml:"version"`
	Modes     map[Mode]ModeInfo `yaml:"modes"`
	Questions []entry           `yaml:"questions"`
}

// Catalog is a parsed, validated question catalog.
type Catalog struct {
	modes map[Mode]ModeInfo
	sets  map[Mode][]scoring.Question
}

// CatalogError reports why a catalog document was rejected.
type CatalogError struct {
	Source string
	Err    error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("invalid question catalog %s: %v", e.Source, e.Err)
}

func (e *CatalogError) Unwrap() error { return e.Err }

var defaultCatalog *Catalog

func init() {
	c, err := Parse("embedded", embeddedCatalog)
	if err != nil {
		panic(err)
	}
	defaultCatalog = c
}

// Default returns the catalog bundled with the binary.
func Default() *Catalog {
	return defaultCatalog
}

// Load returns the bundled questions for mode.
func Load(mode Mode) ([]scoring.Question, error) {
	return defaultCatalog.Questions(mode)
}

// LoadFile reads and validates a catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes a YAML catalog, validates it against the catalog schema, and
// checks its structure. source is used only in error messages.
func Parse(source string, data []byte) (*Catalog, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &CatalogError{Source: source, Err: fmt.Errorf("decode yaml: %w", err)}
	}
	if err := validateDocument(raw); err != nil {
		return nil, &CatalogError{Source: source, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &CatalogError{Source: source, Err: fmt.Errorf("decode catalog: %w", err)}
	}

	c := &Catalog{
		modes: doc.Modes,
		sets:  make(map[Mode][]scoring.Question, 2),
	}
	for _, e := range doc.Questions {
		c.sets[ModeDeep] = append(c.sets[ModeDeep], e.Question)
		if e.Quick {
			c.sets[ModeQuick] = append(c.sets[ModeQuick], e.Question)
		}
	}

	if err := validateSets(c.sets); err != nil {
		return nil, &CatalogError{Source: source, Err: err}
	}
	return c, nil
}

// Questions returns a copy of the ordered question set for mode.
func (c *Catalog) Questions(mode Mode) ([]scoring.Question, error) {
	set, ok := c.sets[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	out := make([]scoring.Question, len(set))
	copy(out, set)
	return out, nil
}

// Info returns the display metadata for mode.
func (c *Catalog) Info(mode Mode) ModeInfo {
	return c.modes[mode]
}

// Count returns the number of questions in mode.
func (c *Catalog) Count(mode Mode) int {
	return len(c.sets[mode])
}
