package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mbti/internal/profiles"
	"github.com/abhisek/mbti/internal/ui/components"
	"github.com/abhisek/mbti/internal/ui/theme"
)

const titleFull = `███╗   ███╗██████╗ ████████╗██╗
████╗ ████║██╔══██╗╚══██╔══╝██║
██╔████╔██║██████╔╝   ██║   ██║
██║╚██╔╝██║██╔══██╗   ██║   ██║
██║ ╚═╝ ██║██████╔╝   ██║   ██║
╚═╝     ╚═╝╚═════╝    ╚═╝   ╚═╝`

const titleCompact = "M · B · T · I"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(art))
}

// renderTemperaments shows the four families as coloured badges.
func renderTemperaments(cw int) string {
	temps := []profiles.Temperament{
		profiles.TemperamentNT, profiles.TemperamentNF,
		profiles.TemperamentSJ, profiles.TemperamentSP,
	}
	parts := make([]string, 0, len(temps))
	for _, t := range temps {
		parts = append(parts, components.Badge(t.DisplayName(), theme.Temperament[string(t)]))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(parts, " "))
}
