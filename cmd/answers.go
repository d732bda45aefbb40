package cmd

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/mbti/internal/scoring"
)

var validate = validator.New()

// parseAnswerList reads "5,4,,3" positionally against qs. Empty entries and
// "-" leave that question unanswered.
func parseAnswerList(s string, qs []scoring.Question) (scoring.Answers, error) {
	parts := strings.Split(s, ",")
	if len(parts) > len(qs) {
		return nil, fmt.Errorf("got %d answers for %d questions", len(parts), len(qs))
	}
	answers := make(scoring.Answers, len(parts))
	for i, raw := range parts {
		raw = strings.TrimSpace(raw)
		if raw == "" || raw == "-" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("answer %d: %q is not a number", i+1, raw)
		}
		answers[qs[i].ID] = v
	}
	return answers, nil
}

// loadAnswerFile reads a YAML mapping of question ID to answer.
func loadAnswerFile(path string) (scoring.Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	var answers scoring.Answers
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("parse answers %s: %w", path, err)
	}
	return answers, nil
}

// checkAnswers rejects unknown question IDs and values off the scale.
func checkAnswers(answers scoring.Answers, qs []scoring.Question, scale scoring.Scale) error {
	known := make(map[string]bool, len(qs))
	for _, q := range qs {
		known[q.ID] = true
	}
	rule := fmt.Sprintf("min=1,max=%d", scale.Points)

	var problems []string
	for _, q := range qs {
		v, ok := answers[q.ID]
		if !ok {
			continue
		}
		if err := validate.Var(v, rule); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %d is not in 1..%d", q.ID, v, scale.Points))
		}
	}
	for _, id := range slices.Sorted(maps.Keys(answers)) {
		if !known[id] {
			problems = append(problems, fmt.Sprintf("%s: unknown question", id))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid answers: %s", strings.Join(problems, "; "))
	}
	return nil
}
