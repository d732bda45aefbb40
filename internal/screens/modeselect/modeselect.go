package modeselect

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/mbti/internal/questions"
	"github.com/abhisek/mbti/internal/router"
	"github.com/abhisek/mbti/internal/screen"
	"github.com/abhisek/mbti/internal/screens/notice"
	"github.com/abhisek/mbti/internal/screens/quiz"
	"github.com/abhisek/mbti/internal/session"
	"github.com/abhisek/mbti/internal/ui/components"
	"github.com/abhisek/mbti/internal/ui/theme"
)

// ModeSelectScreen lets the user choose between the quick and deep question sets.
type ModeSelectScreen struct {
	menu    components.Menu
	catalog *questions.Catalog
	modes   []questions.Mode
	logger  *zap.Logger
}

var _ screen.Screen = (*ModeSelectScreen)(nil)

// New creates a new ModeSelectScreen with preferred highlighted.
func New(catalog *questions.Catalog, preferred questions.Mode, logger *zap.Logger) *ModeSelectScreen {
	s := &ModeSelectScreen{
		catalog: catalog,
		modes:   questions.Modes(),
		logger:  logger,
	}

	items := make([]components.MenuItem, 0, len(s.modes))
	for _, m := range s.modes {
		info := catalog.Info(m)
		items = append(items, components.MenuItem{
			Label:  strings.ToUpper(info.Title),
			Hint:   fmt.Sprintf("%d questions · ~%d min", catalog.Count(m), info.Minutes),
			Action: func() tea.Cmd { return s.start(m) },
		})
	}
	s.menu = components.NewMenu(items)
	for i, m := range s.modes {
		if m == preferred {
			s.menu.Selected = i
		}
	}
	return s
}

// start builds a session for mode and swaps this screen for the quiz.
func (s *ModeSelectScreen) start(mode questions.Mode) tea.Cmd {
	qs, err := s.catalog.Questions(mode)
	if err == nil {
		var st *session.State
		st, err = session.New(mode, qs)
		if err == nil {
			s.logger.Info("quiz started",
				zap.String("session_id", st.ID),
				zap.String("mode", string(mode)),
				zap.Int("questions", st.Len()))
			return func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: quiz.New(st, s.logger)}
			}
		}
	}

	s.logger.Error("start quiz", zap.String("mode", string(mode)), zap.Error(err))
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: notice.New("Cannot start quiz", err.Error())}
	}
}

func (s *ModeSelectScreen) Init() tea.Cmd {
	return nil
}

func (s *ModeSelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ModeSelectScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	selected := s.modes[s.menu.Selected]
	info := s.catalog.Info(selected)

	heading := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("How deep do you want to go?")

	blurb := lipgloss.NewStyle().
		Width(cw - 6).
		Foreground(theme.TextDim).
		Render(info.Blurb)

	body := s.menu.View() + "\n" + blurb
	return components.Frame(heading+"\n\n"+components.Card(body, cw-6), width, height)
}

func (s *ModeSelectScreen) Title() string {
	return "Choose a mode"
}
