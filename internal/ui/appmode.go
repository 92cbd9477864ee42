package ui

// AppMode represents the top-level application mode (Hub grid or a game screen).
type AppMode int

const (
	ModeHub AppMode = iota
	ModeGame
)

func (m AppMode) String() string {
	switch m {
	case ModeHub:
		return "Hub"
	case ModeGame:
		return "Game"
	default:
		return "Unknown"
	}
}
