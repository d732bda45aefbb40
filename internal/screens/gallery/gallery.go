package gallery

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mbti/internal/profiles"
	"github.com/abhisek/mbti/internal/router"
	"github.com/abhisek/mbti/internal/scoring"
	"github.com/abhisek/mbti/internal/screen"
	profilescreen "github.com/abhisek/mbti/internal/screens/profile"
	"github.com/abhisek/mbti/internal/ui/components"
	"github.com/abhisek/mbti/internal/ui/layout"
	"github.com/abhisek/mbti/internal/ui/theme"
)

const cardWidth = 18

var clearKey = key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters"))

// GalleryScreen lists all 16 types in a grid with letter filters.
type GalleryScreen struct {
	filters map[scoring.Dimension]scoring.Pole
	items   []profiles.Profile
	cursor  int
	cols    int
}

var _ screen.Screen = (*GalleryScreen)(nil)
var _ screen.KeyHintProvider = (*GalleryScreen)(nil)
var _ screen.StatusProvider = (*GalleryScreen)(nil)

// New creates a new GalleryScreen with no filters.
func New() *GalleryScreen {
	return &GalleryScreen{
		filters: make(map[scoring.Dimension]scoring.Pole),
		items:   profiles.All(),
		cols:    4,
	}
}

func (g *GalleryScreen) Init() tea.Cmd {
	return nil
}

func (g *GalleryScreen) Title() string {
	return "Type Gallery"
}

func (g *GalleryScreen) Status() string {
	return fmt.Sprintf("%d of 16", len(g.items))
}

func (g *GalleryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Move"},
		{Key: "Enter", Description: "Open"},
		{Key: "E/I S/N T/F J/P", Description: "Filter"},
		{Key: "x", Description: "Clear"},
		{Key: "Esc", Description: "Back"},
	}
}

// Filters returns the active pole filters in dimension order.
func (g *GalleryScreen) Filters() []scoring.Pole {
	var out []scoring.Pole
	for _, d := range scoring.AllDimensions() {
		if p, ok := g.filters[d]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Items returns the profiles currently shown.
func (g *GalleryScreen) Items() []profiles.Profile {
	return g.items
}

// Toggle switches a pole filter. Selecting the other pole of a filtered
// dimension replaces it; selecting the same pole clears it.
func (g *GalleryScreen) Toggle(p scoring.Pole) {
	d := p.Dimension()
	if cur, ok := g.filters[d]; ok && cur == p {
		delete(g.filters, d)
	} else {
		g.filters[d] = p
	}
	g.refresh()
}

func (g *GalleryScreen) refresh() {
	g.items = profiles.Filter(g.Filters())
	if g.cursor >= len(g.items) {
		g.cursor = max(len(g.items)-1, 0)
	}
}

func (g *GalleryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	// Pole letters take priority over vim-style movement keys.
	if s := kmsg.String(); len(s) == 1 {
		if p := scoring.Pole(strings.ToUpper(s)); p.Dimension() != "" {
			g.Toggle(p)
			return g, nil
		}
	}

	switch {
	case key.Matches(kmsg, clearKey):
		clear(g.filters)
		g.refresh()
	case key.Matches(kmsg, components.Keys.Left):
		if g.cursor > 0 {
			g.cursor--
		}
	case key.Matches(kmsg, components.Keys.Right):
		if g.cursor < len(g.items)-1 {
			g.cursor++
		}
	case key.Matches(kmsg, components.Keys.Up):
		if g.cursor-g.cols >= 0 {
			g.cursor -= g.cols
		}
	case key.Matches(kmsg, components.Keys.Down):
		if g.cursor+g.cols < len(g.items) {
			g.cursor += g.cols
		}
	case key.Matches(kmsg, components.Keys.Select):
		if len(g.items) == 0 {
			return g, nil
		}
		p := g.items[g.cursor]
		return g, func() tea.Msg {
			return router.PushScreenMsg{Screen: profilescreen.New(p)}
		}
	}
	return g, nil
}

func (g *GalleryScreen) View(width, height int) string {
	g.cols = max(min((width-4)/(cardWidth+2), 4), 1)

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, g.renderFilters()))
	b.WriteString("\n\n")

	if len(g.items) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No types match these filters.")))
		return b.String()
	}

	var rows []string
	for start := 0; start < len(g.items); start += g.cols {
		end := min(start+g.cols, len(g.items))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, g.renderCard(g.items[i], i == g.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, grid))
	return b.String()
}

func (g *GalleryScreen) renderFilters() string {
	parts := make([]string, 0, 4)
	for _, d := range scoring.AllDimensions() {
		first, second := d.Poles()
		parts = append(parts, g.renderPole(first)+" "+g.renderPole(second))
	}
	return strings.Join(parts, "   ")
}

func (g *GalleryScreen) renderPole(p scoring.Pole) string {
	if g.filters[p.Dimension()] == p {
		return components.Badge(string(p), theme.Primary)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 1).Render(string(p))
}

func (g *GalleryScreen) renderCard(p profiles.Profile, selected bool) string {
	border := theme.Border
	if selected {
		border = theme.Primary
	}
	accent := theme.Temperament[string(p.Temperament())]
	content := p.Avatar + " " +
		lipgloss.NewStyle().Bold(true).Foreground(accent).Render(p.Code) + "\n" +
		theme.Body.Render(p.Name)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cardWidth).
		Padding(0, 1).
		Render(content)
}
