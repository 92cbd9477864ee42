package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gamehub/internal/games"
	"gamehub/internal/launcher"
)

// ShowToastMsg asks the app to surface a transient status message.
type ShowToastMsg struct {
	Message string
}

// gameStartedMsg reports a successful pty launch.
type gameStartedMsg struct {
	pty io.ReadWriteCloser
}

// gameOutputMsg carries a chunk of launcher output.
type gameOutputMsg struct {
	data []byte
}

// gameExitedMsg reports that the launched game ended.
type gameExitedMsg struct {
	err error
}

// GameScreen hosts one game: the home button (and its confirm modal), and
// either a placeholder body or the output of a pty-launched command.
type GameScreen struct {
	Game games.Game
	Home *HomeButton

	runner  launcher.Runner
	output  *launcher.OutputRing
	pty     io.ReadWriteCloser
	running bool
	width   int
	height  int
}

// Ensure GameScreen implements View.
var _ View = (*GameScreen)(nil)

// NewGameScreen creates the screen for a game.
func NewGameScreen(g games.Game, runner launcher.Runner) *GameScreen {
	return &GameScreen{
		Game:   g,
		Home:   NewHomeButton(),
		runner: runner,
		output: launcher.NewOutputRing(500),
	}
}

// Init implements View.
func (s *GameScreen) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (s *GameScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.forwardHome(msg)
		if s.running && s.runner != nil && s.pty != nil {
			_ = s.runner.Resize(s.pty, s.ptySize())
		}
		return s, nil
	case StayMsg:
		return s, s.forwardHome(msg)
	case LeaveMsg:
		// Leaving tears the launched game down before navigating.
		s.teardown()
		return s, s.forwardHome(msg)
	case gameStartedMsg:
		s.running = true
		s.pty = msg.pty
		s.Home.HasUnsavedProgress = true
		return s, readOutputCmd(s.pty)
	case gameOutputMsg:
		for _, line := range strings.Split(strings.TrimRight(string(msg.data), "\n"), "\n") {
			s.output.Append(line)
		}
		return s, readOutputCmd(s.pty)
	case gameExitedMsg:
		s.teardown()
		s.Home.HasUnsavedProgress = false
		text := fmt.Sprintf("%s exited", s.Game.Title)
		if msg.err != nil {
			text = fmt.Sprintf("%s: %v", s.Game.Title, msg.err)
		}
		return s, func() tea.Msg { return ShowToastMsg{Message: text} }
	case tea.MouseMsg:
		if s.Home.ModalOpen() {
			return s, s.forwardHome(msg)
		}
		return s, nil
	case tea.KeyMsg:
		if s.Home.ModalOpen() {
			return s, s.forwardHome(msg)
		}
		switch msg.String() {
		case "esc":
			return s, s.Home.Press()
		case "enter":
			if s.Game.Command != "" && !s.running {
				return s, s.launchCmd()
			}
			if s.running && s.pty != nil {
				_, _ = s.pty.Write([]byte("\r"))
				return s, nil
			}
		}
		if s.running && s.pty != nil && len(msg.Runes) > 0 {
			_, _ = s.pty.Write([]byte(string(msg.Runes)))
			return s, nil
		}
		if !s.running && len(msg.Runes) > 0 {
			// Placeholder play: any input counts as progress worth guarding.
			s.Home.HasUnsavedProgress = true
		}
		return s, nil
	}
	return s, nil
}

// forwardHome routes a message to the home button, keeping its pointer.
func (s *GameScreen) forwardHome(msg tea.Msg) tea.Cmd {
	v, cmd := s.Home.Update(msg)
	s.Home = v.(*HomeButton)
	return cmd
}

// teardown releases the pty, if any.
func (s *GameScreen) teardown() {
	if s.pty != nil {
		_ = s.pty.Close()
		s.pty = nil
	}
	s.running = false
}

// launchCmd starts the game's external command in a pty.
func (s *GameScreen) launchCmd() tea.Cmd {
	game := s.Game
	runner := s.runner
	size := s.ptySize()
	return func() tea.Msg {
		if runner == nil {
			return gameExitedMsg{err: fmt.Errorf("no launcher configured")}
		}
		cmd, err := launcher.Command(context.Background(), game.Command)
		if err != nil {
			return gameExitedMsg{err: err}
		}
		f, err := runner.Start(context.Background(), cmd, size)
		if err != nil {
			return gameExitedMsg{err: err}
		}
		return gameStartedMsg{pty: f}
	}
}

// readOutputCmd reads the next chunk of pty output.
func readOutputCmd(r io.Reader) tea.Cmd {
	return func() tea.Msg {
		buf := make([]byte, 4096)
		n, err := r.Read(buf)
		if n > 0 {
			return gameOutputMsg{data: buf[:n]}
		}
		return gameExitedMsg{err: ignoreEOF(err)}
	}
}

func ignoreEOF(err error) error {
	if err == io.EOF {
		return nil
	}
	return err
}

// ptySize maps the screen size to pty dimensions, reserving the header row.
func (s *GameScreen) ptySize() launcher.Size {
	rows, cols := s.height-2, s.width
	if rows < 1 {
		rows = 24
	}
	if cols < 1 {
		cols = 80
	}
	return launcher.Size{Rows: uint16(rows), Cols: uint16(cols)}
}

// View implements View.
func (s *GameScreen) View() string {
	if s.Home.ModalOpen() {
		return s.Home.ModalView()
	}

	icon := s.Game.Icon
	if icon == "" {
		icon = "🎮"
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		s.Home.View(),
		"   ",
		Styles.Title.Render(icon+" "+s.Game.Title),
	)

	var body string
	switch {
	case s.running || len(s.output.Lines()) > 0:
		height := s.height - 4
		if height < 1 {
			height = 20
		}
		body = strings.Join(s.output.Tail(height), "\n")
	case s.Game.Command != "":
		body = Styles.Empty.Render("Press Enter to launch " + s.Game.Title)
	default:
		body = Styles.Empty.Render("Demo mode: press any key to play")
	}

	return header + "\n\n" + body + "\n"
}
