package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/mbti/internal/questions"
	"github.com/abhisek/mbti/internal/router"
	"github.com/abhisek/mbti/internal/screen"
	"github.com/abhisek/mbti/internal/screens/gallery"
	"github.com/abhisek/mbti/internal/screens/modeselect"
	"github.com/abhisek/mbti/internal/ui/components"
	"github.com/abhisek/mbti/internal/ui/layout"
	"github.com/abhisek/mbti/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu    components.Menu
	catalog *questions.Catalog
	mode    questions.Mode
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. mode is preselected when starting a quiz.
func New(catalog *questions.Catalog, mode questions.Mode, logger *zap.Logger) *HomeScreen {
	items := []components.MenuItem{
		{Label: "TAKE THE QUIZ", Hint: "find your four letters", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: modeselect.New(catalog, mode, logger)}
			}
		}},
		{Label: "TYPE GALLERY", Hint: "browse all 16 types", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: gallery.New()}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		catalog: catalog,
		mode:    mode,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height) || width < 60
	cw := components.ContentWidth(width)

	info := h.catalog.Info(h.mode)
	modeLine := theme.Hint.Render(fmt.Sprintf("Default: %s · %d questions · about %d min",
		info.Title, h.catalog.Count(h.mode), info.Minutes))

	sections := []string{
		renderTitle(cw, compact),
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("Sixteen types. Four dimensions. One short quiz."),
	}
	if !compact {
		sections = append(sections, renderTemperaments(cw))
	}
	sections = append(sections,
		components.Card(h.menu.View(), cw-6),
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(modeLine),
	)

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
