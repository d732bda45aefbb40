package result

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/mbti/internal/profiles"
	"github.com/abhisek/mbti/internal/questions"
	"github.com/abhisek/mbti/internal/router"
	"github.com/abhisek/mbti/internal/scoring"
	"github.com/abhisek/mbti/internal/screen"
	profilescreen "github.com/abhisek/mbti/internal/screens/profile"
	"github.com/abhisek/mbti/internal/ui/components"
	"github.com/abhisek/mbti/internal/ui/layout"
	"github.com/abhisek/mbti/internal/ui/theme"
)

const (
	topStrengths = 3
	maxRadarRows = 21
)

// ResultScreen shows the type code, its profile and the radar chart.
type ResultScreen struct {
	result  scoring.Result
	profile profiles.Profile
	found   bool
	mode    questions.Mode
	elapsed time.Duration
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)
var _ screen.StatusProvider = (*ResultScreen)(nil)

// New creates a new ResultScreen.
func New(res scoring.Result, mode questions.Mode, elapsed time.Duration, logger *zap.Logger) *ResultScreen {
	p, err := profiles.Lookup(res.Code)
	if err != nil {
		logger.Warn("no profile for result", zap.String("code", res.Code), zap.Error(err))
	}
	return &ResultScreen{
		result:  res,
		profile: p,
		found:   err == nil,
		mode:    mode,
		elapsed: elapsed,
	}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Your Result"
}

func (s *ResultScreen) Status() string {
	return s.result.Code
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if s.found {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Full profile"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Home"})
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && s.found && key.Matches(kmsg, components.Keys.Select) {
		p := s.profile
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: profilescreen.New(p)}
		}
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	if !layout.IsCompactWidth(width) {
		info := s.renderInfo(46)
		rows := min(height-2, maxRadarRows)
		plot := components.RadarPlot{Percentages: s.result.Percentages(), Rows: rows}.View()
		body := lipgloss.JoinHorizontal(lipgloss.Center, info, "    ", plot)
		return components.Frame(body, width, height)
	}

	cw := components.ContentWidth(width)
	info := s.renderInfo(cw)
	rows := min(height-lipgloss.Height(info)-2, 15)
	body := info
	if plot := (components.RadarPlot{Percentages: s.result.Percentages(), Rows: rows}).View(); plot != "" {
		body += "\n\n" + lipgloss.PlaceHorizontal(cw, lipgloss.Center, plot)
	}
	return components.Frame(body, width, height)
}

func (s *ResultScreen) renderInfo(w int) string {
	var b strings.Builder

	b.WriteString(theme.Hint.Render("You are"))
	b.WriteString("\n")

	accent := theme.Primary
	if s.found {
		accent = theme.Temperament[string(s.profile.Temperament())]
	}
	headline := components.Badge(s.result.Code, accent)
	if s.found {
		headline = s.profile.Avatar + "  " + headline + "  " +
			lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(s.profile.Name)
	}
	b.WriteString(headline)
	b.WriteString("\n")

	if s.found {
		b.WriteString(theme.Hint.Render(s.profile.Temperament().DisplayName()))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Width(w).Render(s.profile.Summary()))
		b.WriteString("\n\n")

		strengths := s.profile.Strengths[:min(topStrengths, len(s.profile.Strengths))]
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Strengths  "))
		b.WriteString(theme.Body.Render(strings.Join(strengths, " · ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, ds := range s.result.Dimensions {
		b.WriteString(components.DimensionBar{Score: ds, Width: w}.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	mins := int(s.elapsed.Minutes())
	secs := int(s.elapsed.Seconds()) % 60
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%s mode · finished in %d:%02d", s.mode, mins, secs)))

	return b.String()
}
