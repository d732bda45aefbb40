package profile

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mbti/internal/profiles"
	"github.com/abhisek/mbti/internal/screen"
	"github.com/abhisek/mbti/internal/ui/components"
	"github.com/abhisek/mbti/internal/ui/layout"
	"github.com/abhisek/mbti/internal/ui/theme"
)

// ProfileScreen shows the full description of one type in a scrollable view.
type ProfileScreen struct {
	profile  profiles.Profile
	viewport viewport.Model
	width    int
	height   int
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a new ProfileScreen.
func New(p profiles.Profile) *ProfileScreen {
	return &ProfileScreen{
		profile:  p,
		viewport: viewport.New(),
	}
}

func (s *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (s *ProfileScreen) Title() string {
	return s.profile.Code + " · " + s.profile.Name
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

func (s *ProfileScreen) View(width, height int) string {
	if width != s.width || height != s.height {
		s.width, s.height = width, height
		cw := components.ContentWidth(width)
		s.viewport.SetWidth(cw + 2)
		s.viewport.SetHeight(max(height-1, 1))
		s.viewport.SetContent(s.render(cw))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s.viewport.View())
}

func (s *ProfileScreen) render(cw int) string {
	p := s.profile
	temp := p.Temperament()

	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s  %s\n",
		p.Avatar,
		components.Badge(p.Code, theme.Temperament[string(temp)]),
		lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Render(p.Name)))
	b.WriteString(theme.Hint.Render(temp.DisplayName()))
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Width(cw).Render(p.Description))
	b.WriteString("\n")

	section(&b, "Strengths", p.Strengths, cw)
	section(&b, "Habits", p.Habits, cw)
	section(&b, "Growth", p.Growth, cw)
	section(&b, "Well-known examples", p.Representatives, cw)

	return b.String()
}

func section(b *strings.Builder, heading string, items []string, cw int) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(heading))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(cw, 40))))
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString(theme.Body.Width(cw).Render("• " + item))
		b.WriteString("\n")
	}
}
