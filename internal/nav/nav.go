// Package nav is the hub's navigation collaborator: a small route table and
// a message-driven Navigate command. Screens depend on Navigate and GoMsg
// only; the app model owns the actual route switch.
package nav

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RouteHub is the hub root path.
const RouteHub = "/"

// gamePrefix is the path prefix for game screens.
const gamePrefix = "/games/"

// GoMsg requests a route change. Emitted by Navigate; consumed by the app.
type GoMsg struct {
	Path string
}

// Navigate returns a command that requests navigation to path.
// Empty paths navigate to the hub root.
func Navigate(path string) tea.Cmd {
	if path == "" {
		path = RouteHub
	}
	return func() tea.Msg {
		return GoMsg{Path: path}
	}
}

// GamePath returns the route for a game ID.
func GamePath(id string) string {
	return gamePrefix + id
}

// GameID extracts the game ID from a game route.
// Returns ("", false) for any other path.
func GameID(path string) (string, bool) {
	if !strings.HasPrefix(path, gamePrefix) {
		return "", false
	}
	id := strings.TrimPrefix(path, gamePrefix)
	if id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

// IsHub reports whether path is the hub root.
func IsHub(path string) bool {
	return path == RouteHub || path == ""
}
