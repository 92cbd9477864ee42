// Package games defines the game catalog consumed by the hub UI.
package games

import "time"

// Status describes whether a game can be played yet.
type Status int

const (
	// StatusSoon marks a game that is announced but not playable.
	// Zero value, so unparseable statuses degrade to locked rather than open.
	StatusSoon Status = iota
	// StatusPlayable marks a game that can be entered from the hub.
	StatusPlayable
)

func (s Status) String() string {
	switch s {
	case StatusPlayable:
		return "playable"
	case StatusSoon:
		return "soon"
	default:
		return "unknown"
	}
}

// ParseStatus maps a config string to a Status. Unknown values are treated
// as "soon" so a typo in a catalog entry locks the card instead of opening it.
func ParseStatus(s string) Status {
	if s == "playable" {
		return StatusPlayable
	}
	return StatusSoon
}

// Game is one entry in the hub catalog.
type Game struct {
	ID             string
	Title          string
	Icon           string
	Status         Status
	Gradient       string        // key into the ui gradient table
	Command        string        // optional external command run in a pty
	AnimationDelay time.Duration // entrance stagger on the hub grid
}

// Playable reports whether the game can be entered.
func (g Game) Playable() bool {
	return g.Status == StatusPlayable
}

// Catalog is an ordered set of games.
type Catalog struct {
	Games []Game
}

// ByID returns the game with the given ID.
func (c Catalog) ByID(id string) (Game, bool) {
	for _, g := range c.Games {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}

// Default returns the built-in catalog used when no config is present.
func Default() Catalog {
	return Catalog{Games: []Game{
		{ID: "snake", Title: "Snake", Icon: "🐍", Status: StatusPlayable, Gradient: "emerald", AnimationDelay: 0},
		{ID: "2048", Title: "2048", Icon: "🔢", Status: StatusPlayable, Gradient: "amber", AnimationDelay: 80 * time.Millisecond},
		{ID: "minesweeper", Title: "Minesweeper", Icon: "💣", Status: StatusPlayable, Gradient: "slate", AnimationDelay: 160 * time.Millisecond},
		{ID: "tetris", Title: "Tetris", Icon: "🧱", Status: StatusSoon, Gradient: "violet", AnimationDelay: 240 * time.Millisecond},
	}}
}
