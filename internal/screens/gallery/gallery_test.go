package gallery

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mbti/internal/router"
	"github.com/abhisek/mbti/internal/scoring"
)

func press(g *GalleryScreen, s string) tea.Cmd {
	_, cmd := g.Update(tea.KeyPressMsg{Code: rune(s[0]), Text: s})
	return cmd
}

func codes(g *GalleryScreen) []string {
	var out []string
	for _, p := range g.Items() {
		out = append(out, p.Code)
	}
	return out
}

func TestGallery_ShowsAllByDefault(t *testing.T) {
	g := New()
	assert.Len(t, g.Items(), 16)
	assert.Equal(t, "16 of 16", g.Status())
	assert.Equal(t, "INTJ", g.Items()[0].Code)
}

func TestGallery_LetterFilters(t *testing.T) {
	g := New()

	press(g, "n")
	press(g, "t")
	assert.Equal(t, []scoring.Pole{scoring.PoleN, scoring.PoleT}, g.Filters())
	assert.Equal(t, []string{"INTJ", "INTP", "ENTJ", "ENTP"}, codes(g))

	// Upper case works too, and J/P is a filter, not movement.
	press(g, "J")
	assert.Equal(t, []string{"INTJ", "ENTJ"}, codes(g))
}

func TestGallery_ToggleSameDimensionReplaces(t *testing.T) {
	g := New()
	press(g, "e")
	press(g, "i")
	assert.Equal(t, []scoring.Pole{scoring.PoleI}, g.Filters())
	for _, c := range codes(g) {
		assert.Equal(t, byte('I'), c[0])
	}

	press(g, "i")
	assert.Empty(t, g.Filters())
	assert.Len(t, g.Items(), 16)
}

func TestGallery_ClearFilters(t *testing.T) {
	g := New()
	press(g, "s")
	press(g, "f")
	require.Len(t, g.Items(), 4)

	press(g, "x")
	assert.Empty(t, g.Filters())
	assert.Len(t, g.Items(), 16)
}

func TestGallery_CursorClampsAfterFilter(t *testing.T) {
	g := New()
	for range 15 {
		g.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	}
	assert.Equal(t, 15, g.cursor)

	press(g, "n")
	press(g, "t")
	press(g, "j")
	assert.Equal(t, 1, g.cursor)
}

func TestGallery_GridMovement(t *testing.T) {
	g := New()
	g.View(120, 40)
	require.Equal(t, 4, g.cols)

	g.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 4, g.cursor)
	g.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	g.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, g.cursor)
	g.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, 0, g.cursor)
}

func TestGallery_EnterOpensProfile(t *testing.T) {
	g := New()
	_, cmd := g.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Contains(t, msg.Screen.Title(), "INTJ")
}

func TestGallery_ViewNoMatches(t *testing.T) {
	g := New()
	g.filters[scoring.DimensionEI] = "X"
	g.refresh()
	assert.Contains(t, g.View(80, 24), "No types match")
	_, cmd := g.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestGallery_ViewNarrowUsesOneColumn(t *testing.T) {
	g := New()
	view := g.View(30, 40)
	assert.Equal(t, 1, g.cols)
	assert.Contains(t, view, "INTJ")
}
