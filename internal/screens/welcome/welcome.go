// Package welcome shows the opening splash before the home screen.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mbti/internal/router"
	"github.com/abhisek/mbti/internal/scoring"
	"github.com/abhisek/mbti/internal/screen"
	"github.com/abhisek/mbti/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	lockInterval = 500 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

// final is the code the slots settle on.
var final = [4]scoring.Pole{"M", "B", "T", "I"}

type tickMsg time.Time

// WelcomeScreen flips four letter slots through the pole pairs and locks
// them one by one, then waits for a key before moving to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Done reports whether every slot has locked.
func (w *WelcomeScreen) Done() bool {
	return w.elapsed >= totalDur
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.Done() {
			return w, nil
		}
		w.elapsed += tickInterval
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// The first key skips the animation, the next one moves on.
		if !w.Done() {
			w.elapsed = totalDur
			return w, nil
		}
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

// Slots returns the letters currently shown in each slot.
func (w *WelcomeScreen) Slots() [4]scoring.Pole {
	var out [4]scoring.Pole
	locked := int(w.elapsed / lockInterval)
	for i, d := range scoring.AllDimensions() {
		if i < locked {
			out[i] = final[i]
			continue
		}
		first, second := d.Poles()
		if (w.tickCount+i)%2 == 0 {
			out[i] = first
		} else {
			out[i] = second
		}
	}
	return out
}

func (w *WelcomeScreen) View(width, height int) string {
	locked := int(w.elapsed / lockInterval)
	slots := w.Slots()

	cells := make([]string, 0, len(slots))
	for i, p := range slots {
		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Bold(true)
		if i < locked {
			style = style.BorderForeground(theme.Primary).Foreground(theme.Primary)
		} else {
			style = style.BorderForeground(theme.Border).Foreground(theme.TextDim)
		}
		cells = append(cells, style.Render(string(p)))
	}

	sections := []string{lipgloss.JoinHorizontal(lipgloss.Top, cells...)}

	if w.Done() {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Find your four letters."),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
