package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mbti/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), 72)
}

// Frame centres content vertically and horizontally within the given dimensions.
func Frame(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return AccentCard(content, cw, theme.Border)
}

// AccentCard is a Card with a custom border colour.
func AccentCard(content string, cw int, border color.Color) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw).
		Padding(1, 2).
		Render(content)
}

// Badge renders a short label on a coloured background.
func Badge(label string, bg color.Color) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.BgCard).
		Background(bg).
		Padding(0, 1).
		Render(label)
}
