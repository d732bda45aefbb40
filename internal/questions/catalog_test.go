package questions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mbti/internal/scoring"
)

func TestDefault_Counts(t *testing.T) {
	c := Default()
	assert.Equal(t, 32, c.Count(ModeQuick))
	assert.Equal(t, 80, c.Count(ModeDeep))
}

func TestDefault_BalancedDimensions(t *testing.T) {
	for _, m := range Modes() {
		qs, err := Load(m)
		require.NoError(t, err)

		counts := make(map[scoring.Dimension]int)
		targets := make(map[scoring.Dimension]map[scoring.Target]int)
		for _, q := range qs {
			counts[q.Dimension]++
			if targets[q.Dimension] == nil {
				targets[q.Dimension] = make(map[scoring.Target]int)
			}
			targets[q.Dimension][q.Target]++
		}
		for _, d := range scoring.AllDimensions() {
			assert.Equal(t, len(qs)/4, counts[d], "mode %s dimension %s", m, d)
			assert.Equal(t, targets[d][scoring.TargetFirst], targets[d][scoring.TargetSecond],
				"mode %s dimension %s should balance targets", m, d)
		}
	}
}

func TestDefault_QuickIsSubsetOfDeep(t *testing.T) {
	quick, err := Load(ModeQuick)
	require.NoError(t, err)
	deep, err := Load(ModeDeep)
	require.NoError(t, err)

	ids := make(map[string]bool, len(deep))
	for _, q := range deep {
		ids[q.ID] = true
	}
	for _, q := range quick {
		assert.True(t, ids[q.ID], "quick question %s missing from deep set", q.ID)
	}
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	a, err := Load(ModeQuick)
	require.NoError(t, err)
	a[0].Text = "changed"

	b, err := Load(ModeQuick)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", b[0].Text)
}

func TestQuestions_UnknownMode(t *testing.T) {
	_, err := Load(Mode("marathon"))
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Deep ")
	require.NoError(t, err)
	assert.Equal(t, ModeDeep, m)

	_, err = ParseMode("full")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestInfo(t *testing.T) {
	info := Default().Info(ModeQuick)
	assert.NotEmpty(t, info.Title)
	assert.Positive(t, info.Minutes)
}

const minimalCatalog = `
version: 1
modes:
  quick: {title: Quick}
  deep: {title: Deep}
questions:
  - {id: a, dimension: EI, target: first, quick: true, text: "A"}
  - {id: b, dimension: SN, target: second, quick: true, text: "B"}
  - {id: c, dimension: TF, target: first, quick: true, text: "C"}
  - {id: d, dimension: JP, target: second, quick: true, text: "D"}
`

func TestParse_Minimal(t *testing.T) {
	c, err := Parse("test", []byte(minimalCatalog))
	require.NoError(t, err)
	assert.Equal(t, 4, c.Count(ModeQuick))
	assert.Equal(t, 4, c.Count(ModeDeep))

	qs, err := c.Questions(ModeDeep)
	require.NoError(t, err)
	assert.Equal(t, scoring.Question{ID: "b", Text: "B", Dimension: scoring.DimensionSN, Target: scoring.TargetSecond}, qs[1])
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "questions: [unterminated"},
		{"bad dimension", `
version: 1
modes: {quick: {title: Q}, deep: {title: D}}
questions:
  - {id: a, dimension: XY, target: first, text: "A"}
`},
		{"bad target", `
version: 1
modes: {quick: {title: Q}, deep: {title: D}}
questions:
  - {id: a, dimension: EI, target: both, text: "A"}
`},
		{"missing mode", `
version: 1
modes: {quick: {title: Q}}
questions:
  - {id: a, dimension: EI, target: first, text: "A"}
`},
		{"unknown field", `
version: 1
modes: {quick: {title: Q}, deep: {title: D}}
questions:
  - {id: a, dimension: EI, target: first, text: "A", weight: 2}
`},
		{"duplicate id", `
version: 1
modes: {quick: {title: Q}, deep: {title: D}}
questions:
  - {id: a, dimension: EI, target: first, quick: true, text: "A"}
  - {id: a, dimension: SN, target: first, quick: true, text: "B"}
  - {id: c, dimension: TF, target: first, quick: true, text: "C"}
  - {id: d, dimension: JP, target: first, quick: true, text: "D"}
`},
		{"quick set misses a dimension", `
version: 1
modes: {quick: {title: Q}, deep: {title: D}}
questions:
  - {id: a, dimension: EI, target: first, quick: true, text: "A"}
  - {id: b, dimension: SN, target: first, quick: true, text: "B"}
  - {id: c, dimension: TF, target: first, quick: true, text: "C"}
  - {id: d, dimension: JP, target: first, text: "D"}
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test", []byte(tt.doc))
			require.Error(t, err)
			var ce *CatalogError
			assert.ErrorAs(t, err, &ce)
			assert.Equal(t, "test", ce.Source)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalCatalog), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Count(ModeDeep))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
