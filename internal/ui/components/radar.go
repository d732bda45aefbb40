package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mbti/internal/radar"
	"github.com/abhisek/mbti/internal/scoring"
	"github.com/abhisek/mbti/internal/ui/theme"
)

// RadarPlot renders the 8-axis chart as coloured terminal text.
type RadarPlot struct {
	Percentages scoring.Percentages
	Rows        int
}

// View renders the plot, or an empty string if Rows is below radar.MinRasterRows.
func (r RadarPlot) View() string {
	g, err := radar.Raster(r.Percentages, r.Rows)
	if err != nil {
		return ""
	}

	styles := map[radar.Mark]lipgloss.Style{
		radar.MarkRing:   lipgloss.NewStyle().Foreground(theme.Border),
		radar.MarkAxis:   lipgloss.NewStyle().Foreground(theme.TextDim),
		radar.MarkEdge:   lipgloss.NewStyle().Foreground(theme.Primary),
		radar.MarkVertex: lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		radar.MarkLabel:  lipgloss.NewStyle().Foreground(theme.Text).Bold(true),
	}

	var b strings.Builder
	for y := range g.Height {
		// Group runs of the same mark so each run is styled once.
		var run []rune
		runMark := radar.MarkNone
		flush := func() {
			if len(run) == 0 {
				return
			}
			if s, ok := styles[runMark]; ok {
				b.WriteString(s.Render(string(run)))
			} else {
				b.WriteString(string(run))
			}
			run = run[:0]
		}
		for x := range g.Width {
			ch, m := g.At(x, y)
			if m != runMark {
				flush()
				runMark = m
			}
			run = append(run, ch)
		}
		flush()
		if y < g.Height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
