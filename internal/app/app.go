package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/mbti/internal/questions"
	"github.com/abhisek/mbti/internal/router"
	"github.com/abhisek/mbti/internal/screen"
	"github.com/abhisek/mbti/internal/screens/home"
	"github.com/abhisek/mbti/internal/screens/welcome"
	"github.com/abhisek/mbti/internal/ui/layout"
	"github.com/abhisek/mbti/internal/ui/theme"
)

// Options configures the TUI.
type Options struct {
	Logger  *zap.Logger
	Catalog *questions.Catalog
	Mode    questions.Mode
	Theme   string
	// Initial, if set, is pushed above the home screen at start.
	Initial screen.Screen
	// Splash shows the welcome animation before home. Ignored when Initial is set.
	Splash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	logger *zap.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Catalog == nil {
		opts.Catalog = questions.Default()
	}
	if opts.Mode == "" {
		opts.Mode = questions.ModeQuick
	}

	homeScreen := func() screen.Screen {
		return home.New(opts.Catalog, opts.Mode, opts.Logger)
	}

	var r *router.Router
	switch {
	case opts.Initial != nil:
		r = router.New(homeScreen())
		r.Push(opts.Initial)
	case opts.Splash:
		r = router.New(welcome.New(homeScreen))
	default:
		r = router.New(homeScreen())
	}
	return AppModel{
		router: r,
		logger: opts.Logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if bi, ok := m.router.Active().(screen.BackInterceptor); ok && bi.InterceptBack() {
				return m, nil
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.WindowTitle = "MBTI"
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(footerHints, kp.KeyHints()...)
		footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run applies the theme and starts the Bubble Tea program.
func Run(opts Options) error {
	applied := theme.Apply(opts.Theme)
	if opts.Logger != nil {
		opts.Logger.Debug("tui starting", zap.String("theme", applied), zap.String("mode", string(opts.Mode)))
	}

	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
