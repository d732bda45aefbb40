package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is a named set of colours.
type Palette struct {
	Name      string
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color
}

// Palettes lists the selectable palettes by name.
var Palettes = map[string]Palette{
	"aurora": {
		Name:      "aurora",
		Primary:   lipgloss.Color("#38BDF8"), // Sky
		Secondary: lipgloss.Color("#34D399"), // Emerald
		Accent:    lipgloss.Color("#A78BFA"), // Violet
		Success:   lipgloss.Color("#22C55E"),
		Error:     lipgloss.Color("#F43F5E"),
		Text:      lipgloss.Color("#F4F4F5"),
		TextDim:   lipgloss.Color("#A1A1AA"),
		BgCard:    lipgloss.Color("#18181B"),
		Border:    lipgloss.Color("#3F3F46"),
	},
	"sunset": {
		Name:      "sunset",
		Primary:   lipgloss.Color("#FB7185"), // Rose
		Secondary: lipgloss.Color("#FCD34D"), // Amber
		Accent:    lipgloss.Color("#C084FC"),
		Success:   lipgloss.Color("#22C55E"),
		Error:     lipgloss.Color("#F43F5E"),
		Text:      lipgloss.Color("#FAFAFA"),
		TextDim:   lipgloss.Color("#D4D4D8"),
		BgCard:    lipgloss.Color("#2E1065"),
		Border:    lipgloss.Color("#4C1D95"),
	},
	"mono": {
		Name:      "mono",
		Primary:   lipgloss.Color("#E4E4E7"),
		Secondary: lipgloss.Color("#A1A1AA"),
		Accent:    lipgloss.Color("#FAFAFA"),
		Success:   lipgloss.Color("#D4D4D8"),
		Error:     lipgloss.Color("#71717A"),
		Text:      lipgloss.Color("#FAFAFA"),
		TextDim:   lipgloss.Color("#71717A"),
		BgCard:    lipgloss.Color("#18181B"),
		Border:    lipgloss.Color("#3F3F46"),
	},
	"light": {
		Name:      "light",
		Primary:   lipgloss.Color("#18181B"),
		Secondary: lipgloss.Color("#0EA5E9"),
		Accent:    lipgloss.Color("#10B981"),
		Success:   lipgloss.Color("#16A34A"),
		Error:     lipgloss.Color("#E11D48"),
		Text:      lipgloss.Color("#27272A"),
		TextDim:   lipgloss.Color("#71717A"),
		BgCard:    lipgloss.Color("#F4F4F5"),
		Border:    lipgloss.Color("#D4D4D8"),
	},
}

// Active palette colours. Set by Apply.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
)

// Components
var (
	Card           lipgloss.Style
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
)

// Temperament accent colours, shared by every palette.
var Temperament = map[string]color.Color{
	"NT": lipgloss.Color("#60A5FA"),
	"NF": lipgloss.Color("#A78BFA"),
	"SJ": lipgloss.Color("#34D399"),
	"SP": lipgloss.Color("#FBBF24"),
}

func init() {
	Apply("aurora")
}

// Apply switches the active palette. Unknown names fall back to aurora.
// Returns the name actually applied.
func Apply(name string) string {
	p, ok := Palettes[name]
	if !ok {
		p = Palettes["aurora"]
	}

	Primary, Secondary, Accent = p.Primary, p.Secondary, p.Accent
	Success, Error = p.Success, p.Error
	Text, TextDim = p.Text, p.TextDim
	BgCard, Border = p.BgCard, p.Border

	Title = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body = lipgloss.NewStyle().Foreground(Text)
	Hint = lipgloss.NewStyle().Foreground(TextDim).Italic(true)

	Selected = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty = lipgloss.NewStyle().Background(Border)

	return p.Name
}
