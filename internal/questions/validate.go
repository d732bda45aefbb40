package questions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/mbti/internal/scoring"
)

// validateSets checks that IDs are unique and that every mode covers every
// dimension. Returns a combined error describing all problems found.
func validateSets(sets map[Mode][]scoring.Question) error {
	var errs []string

	seen := make(map[string]bool)
	for _, q := range sets[ModeDeep] {
		if seen[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		seen[q.ID] = true
		if !q.Dimension.Valid() {
			errs = append(errs, fmt.Sprintf("question %q has unknown dimension %q", q.ID, q.Dimension))
		}
		if q.Target != scoring.TargetFirst && q.Target != scoring.TargetSecond {
			errs = append(errs, fmt.Sprintf("question %q has unknown target %q", q.ID, q.Target))
		}
	}

	for _, m := range Modes() {
		counts := make(map[scoring.Dimension]int)
		for _, q := range sets[m] {
			counts[q.Dimension]++
		}
		for _, d := range scoring.AllDimensions() {
			if counts[d] == 0 {
				errs = append(errs, fmt.Sprintf("mode %s has no questions for dimension %s", m, d))
			}
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
