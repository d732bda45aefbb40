// Package profiles holds the descriptive catalog keyed by type code.
package profiles

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/mbti/internal/scoring"
)

//go:embed profiles.yaml
var embeddedProfiles []byte

// ErrUnknownCode is returned by Lookup for a code with no profile.
var ErrUnknownCode = errors.New("unknown type code")

// Profile is the descriptive content for one type code.
type Profile struct {
	Code            string   `yaml:"code" json:"code"`
	Name            string   `yaml:"name" json:"name"`
	Avatar          string   `yaml:"avatar" json:"avatar"`
	Description     string   `yaml:"description" json:"description"`
	Strengths       []string `yaml:"strengths" json:"strengths"`
	Habits          []string `yaml:"habits" json:"habits"`
	Representatives []string `yaml:"representatives" json:"representatives"`
	Growth          []string `yaml:"growth" json:"growth"`
}

// Sentences splits the description into sentences, each keeping its full stop.
func (p Profile) Sentences() []string {
	var out []string
	for _, part := range strings.SplitAfter(p.Description, ". ") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Summary returns the first sentence of the description.
func (p Profile) Summary() string {
	s := p.Sentences()
	if len(s) == 0 {
		return p.Description
	}
	return s[0]
}

// Temperament returns the profile's temperament group.
func (p Profile) Temperament() Temperament {
	return TemperamentOf(p.Code)
}

// Temperament groups the 16 types into four families.
type Temperament string

const (
	TemperamentNT Temperament = "NT"
	TemperamentNF Temperament = "NF"
	TemperamentSJ Temperament = "SJ"
	TemperamentSP Temperament = "SP"
)

// DisplayName returns the family name of the temperament.
func (t Temperament) DisplayName() string {
	switch t {
	case TemperamentNT:
		return "Analysts"
	case TemperamentNF:
		return "Diplomats"
	case TemperamentSJ:
		return "Sentinels"
	case TemperamentSP:
		return "Explorers"
	default:
		return string(t)
	}
}

// TemperamentOf derives the temperament from a type code: intuitive types
// group by their TF letter, sensing types by their JP letter.
func TemperamentOf(code string) Temperament {
	if len(code) != 4 {
		return ""
	}
	if code[1] == 'N' {
		return Temperament("N" + code[2:3])
	}
	return Temperament("S" + code[3:4])
}

var catalog = mustLoad(embeddedProfiles)

func mustLoad(data []byte) []Profile {
	ps, err := parse(data)
	if err != nil {
		panic(fmt.Errorf("load profiles: %w", err))
	}
	return ps
}

func parse(data []byte) ([]Profile, error) {
	var ps []Profile
	if err := yaml.Unmarshal(data, &ps); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	seen := make(map[string]bool, len(ps))
	for _, p := range ps {
		if !scoring.ValidCode(p.Code) {
			return nil, fmt.Errorf("profile has invalid code %q", p.Code)
		}
		if seen[p.Code] {
			return nil, fmt.Errorf("duplicate profile %q", p.Code)
		}
		seen[p.Code] = true
	}
	for _, code := range scoring.TypeCodes() {
		if !seen[code] {
			return nil, fmt.Errorf("missing profile %q", code)
		}
	}

	slices.SortFunc(ps, func(a, b Profile) int {
		return slices.Compare(galleryKey(a.Code), galleryKey(b.Code))
	})
	return ps, nil
}

// galleryOrder puts I, N, T, J first in each position.
var galleryOrder = [4]string{"IE", "NS", "TF", "JP"}

func galleryKey(code string) []int {
	key := make([]int, len(galleryOrder))
	for i, order := range galleryOrder {
		key[i] = strings.IndexByte(order, code[i])
	}
	return key
}

// All returns every profile in gallery order (INTJ first, ESFP last).
func All() []Profile {
	return slices.Clone(catalog)
}

// Lookup returns the profile for code.
func Lookup(code string) (Profile, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, p := range catalog {
		if p.Code == code {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrUnknownCode, code)
}

// Filter returns the profiles whose code contains every given pole, in
// gallery order. No poles returns everything.
func Filter(poles []scoring.Pole) []Profile {
	if len(poles) == 0 {
		return All()
	}
	var out []Profile
	for _, p := range catalog {
		match := true
		for _, pole := range poles {
			if !strings.Contains(p.Code, string(pole)) {
				match = false
				break
			}
		}
		if match {
			out = append(out, p)
		}
	}
	return out
}
