package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"gamehub/internal/games"
	"gamehub/internal/nav"
)

// GameCard is a pure renderer for one hub tile. Identical inputs always
// produce identical output; the card holds no state and has no side effects.
type GameCard struct {
	Title          string
	Icon           string
	To             string // destination route; empty means non-navigable
	Status         games.Status
	Gradient       string
	AnimationDelay time.Duration
	Disabled       bool
}

// NewGameCard builds a card for a catalog entry.
func NewGameCard(g games.Game) GameCard {
	return GameCard{
		Title:          g.Title,
		Icon:           g.Icon,
		To:             destination(g),
		Status:         g.Status,
		Gradient:       g.Gradient,
		AnimationDelay: g.AnimationDelay,
	}
}

// destination returns the route for a game; games that are not playable get
// no destination, which locks the card.
func destination(g games.Game) string {
	if !g.Playable() {
		return ""
	}
	return nav.GamePath(g.ID)
}

// Locked reports whether the card is non-interactive: announced-only status,
// explicit disable, or a missing destination all lock it.
func (c GameCard) Locked() bool {
	return c.Status == games.StatusSoon || c.Disabled || c.To == ""
}

const cardWidth = 18

// Render draws the card. Locked cards are de-emphasized and carry a "soon"
// badge; the selected card gets a highlighted border.
func (c GameCard) Render(selected bool) string {
	grad := GradientFor(c.Gradient)

	border := grad.Border
	title := lipgloss.NewStyle().Bold(true).Foreground(grad.Accent)
	icon := c.Icon
	if icon == "" {
		icon = "🎮"
	}

	var badge string
	if c.Locked() {
		border = lipgloss.Color(ColorDim)
		title = Styles.Muted
		badge = "\n" + Styles.Empty.Render("soon")
	} else if selected {
		border = lipgloss.Color(ColorHighlight)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cardWidth).
		Align(lipgloss.Center).
		Padding(1, 1)
	if selected && !c.Locked() {
		box = box.Bold(true)
	}

	content := icon + "\n" + title.Render(c.Title) + badge
	return box.Render(content)
}
