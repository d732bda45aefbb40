package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mbti/internal/scoring"
	"github.com/abhisek/mbti/internal/ui/theme"
)

// LikertChosenMsg is emitted when the user picks a point on the scale.
type LikertChosenMsg struct {
	Value int
}

// Likert is a vertical agree/disagree selector. Points are 1-based.
type Likert struct {
	Scale    scoring.Scale
	Selected int // 1-based
	Answered int // previously recorded answer, 0 if none
}

// NewLikert creates a selector on scale. The cursor starts on the previous
// answer if there is one, otherwise on the centre point.
func NewLikert(scale scoring.Scale, previous int) Likert {
	sel := scale.Center()
	if scale.Contains(previous) {
		sel = previous
	} else {
		previous = 0
	}
	return Likert{Scale: scale, Selected: sel, Answered: previous}
}

// Update handles keyboard navigation and selection. Digit keys choose directly.
func (l Likert) Update(msg tea.Msg) (Likert, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch {
	case key.Matches(kmsg, Keys.Up):
		if l.Selected > 1 {
			l.Selected--
		}
		return l, nil
	case key.Matches(kmsg, Keys.Down):
		if l.Selected < l.Scale.Points {
			l.Selected++
		}
		return l, nil
	case key.Matches(kmsg, Keys.Select):
		return l, l.choose(l.Selected)
	}

	if s := kmsg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		v := int(s[0] - '0')
		if l.Scale.Contains(v) {
			l.Selected = v
			return l, l.choose(v)
		}
	}
	return l, nil
}

func (l Likert) choose(v int) tea.Cmd {
	return func() tea.Msg { return LikertChosenMsg{Value: v} }
}

// View renders the selector.
func (l Likert) View() string {
	var b strings.Builder
	for i, label := range l.Scale.Labels() {
		v := i + 1
		marker := " "
		if v == l.Answered {
			marker = "●"
		}
		line := fmt.Sprintf("%s %d  %s", marker, v, label)
		if v == l.Selected {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
