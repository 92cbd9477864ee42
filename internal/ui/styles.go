package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorDanger    = "196" // Red - for warnings, errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for very dim text
	ColorWarning   = "208" // Orange - for warning details
)

// Styles contains shared style definitions used across screens and modals.
var Styles = struct {
	Title        lipgloss.Style // Bold accent color - for main titles
	TitleWarning lipgloss.Style // Bold danger color - for warning titles

	Box       lipgloss.Style // Standard box with rounded border (accent border)
	BoxDanger lipgloss.Style // Warning box (danger border)

	Selected lipgloss.Style // Highlighted/selected items (bold highlight color)
	Muted    lipgloss.Style // Dimmed text (muted color)
	Normal   lipgloss.Style // Normal text (text color)
	Hint     lipgloss.Style // Help/hint text (muted color)
	Status   lipgloss.Style // Status indicators (accent color)
	Empty    lipgloss.Style // Empty state text (muted, italic)
	Label    lipgloss.Style // Modal label/content (default)

	ButtonFocused lipgloss.Style // Focused modal action
	ButtonBlurred lipgloss.Style // Unfocused modal action
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle(),
	ButtonFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 2),
	ButtonBlurred: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color("236")).
		Padding(0, 2),
}

// Gradient is a card background/border pairing keyed by a semantic name.
type Gradient struct {
	Border lipgloss.Color
	Accent lipgloss.Color
}

// gradients maps gradient keys to card styles. Unknown keys fall back to
// DefaultGradientKey rather than failing.
var gradients = map[string]Gradient{
	"emerald": {Border: lipgloss.Color("42"), Accent: lipgloss.Color("48")},
	"amber":   {Border: lipgloss.Color("214"), Accent: lipgloss.Color("220")},
	"violet":  {Border: lipgloss.Color("135"), Accent: lipgloss.Color("141")},
	"slate":   {Border: lipgloss.Color("245"), Accent: lipgloss.Color("250")},
	"rose":    {Border: lipgloss.Color("204"), Accent: lipgloss.Color("211")},
}

// DefaultGradientKey is the fallback for unknown gradient keys.
const DefaultGradientKey = "slate"

// GradientFor resolves a gradient key, applying the default fallback.
func GradientFor(key string) Gradient {
	if g, ok := gradients[key]; ok {
		return g
	}
	return gradients[DefaultGradientKey]
}
