package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mbti/internal/scoring"
	"github.com/abhisek/mbti/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += theme.Body.Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := max(p.Width-labelWidth-percentWidth, 4)
	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}

// DimensionBar shows one dimension as a two-sided bar: the first pole's share
// fills from the left, the second pole's from the right.
type DimensionBar struct {
	Score scoring.DimensionScore
	Width int
}

// View renders "E 75% ██████░░ 25% I".
func (d DimensionBar) View() string {
	first, second := d.Score.Dimension.Poles()
	pct := d.Score.Percent

	left := fmt.Sprintf("%s %3d%% ", first, pct)
	right := fmt.Sprintf(" %3d%% %s", 100-pct, second)

	barWidth := max(d.Width-lipgloss.Width(left)-lipgloss.Width(right), 10)
	filled := min(max(pct*barWidth/100, 0), barWidth)

	leftStyle, rightStyle := theme.Body, theme.Hint
	if d.Score.Letter() == second {
		leftStyle, rightStyle = theme.Hint, theme.Body
	}

	return leftStyle.Bold(d.Score.Letter() == first).Render(left) +
		lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled)) +
		rightStyle.Bold(d.Score.Letter() == second).Render(right)
}
