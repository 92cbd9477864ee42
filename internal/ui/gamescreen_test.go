package ui

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"testing"

	"gamehub/internal/games"
	"gamehub/internal/launcher"
)

// stubPTY is an in-memory stand-in for a launched game's pty.
type stubPTY struct {
	out    chan []byte
	wrote  []byte
	closed bool
}

func newStubPTY() *stubPTY {
	return &stubPTY{out: make(chan []byte, 8)}
}

func (s *stubPTY) Read(p []byte) (int, error) {
	b, ok := <-s.out
	if !ok {
		return 0, io.EOF
	}
	return copy(p, b), nil
}

func (s *stubPTY) Write(p []byte) (int, error) {
	s.wrote = append(s.wrote, p...)
	return len(p), nil
}

func (s *stubPTY) Close() error {
	s.closed = true
	return nil
}

// stubRunner returns a fixed pty (or error) instead of spawning processes.
type stubRunner struct {
	pty io.ReadWriteCloser
	err error
}

func (r *stubRunner) Start(_ context.Context, _ *exec.Cmd, _ launcher.Size) (io.ReadWriteCloser, error) {
	return r.pty, r.err
}

func (r *stubRunner) Resize(_ io.ReadWriteCloser, _ launcher.Size) error {
	return nil
}

func TestGameScreen_PlaceholderView(t *testing.T) {
	s := NewGameScreen(games.Game{ID: "snake", Title: "Snake"}, nil)
	view := s.View()
	if !strings.Contains(view, "Snake") || !strings.Contains(view, "Home") {
		t.Errorf("view should show the title and home button:\n%s", view)
	}
	if !strings.Contains(view, "Demo mode") {
		t.Error("command-less game should show the demo placeholder")
	}
}

func TestGameScreen_LaunchHintWithCommand(t *testing.T) {
	s := NewGameScreen(games.Game{ID: "rogue", Title: "Rogue", Command: "rogue"}, nil)
	if !strings.Contains(s.View(), "Press Enter to launch") {
		t.Error("command game should show the launch hint")
	}
}

func TestGameScreen_LaunchFlow(t *testing.T) {
	pty := newStubPTY()
	s := NewGameScreen(games.Game{ID: "rogue", Title: "Rogue", Command: "rogue -n"}, &stubRunner{pty: pty})

	_, cmd := s.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter should launch the configured command")
	}
	msg := cmd()
	started, ok := msg.(gameStartedMsg)
	if !ok {
		t.Fatalf("expected gameStartedMsg, got %T", msg)
	}

	pty.out <- []byte("welcome\n")
	v, readCmd := s.Update(started)
	s = v.(*GameScreen)
	if !s.running || !s.Home.HasUnsavedProgress {
		t.Error("running game should mark unsaved progress")
	}

	// First read delivers the buffered output.
	outMsg := readCmd()
	v, readCmd = s.Update(outMsg)
	s = v.(*GameScreen)
	if !strings.Contains(s.View(), "welcome") {
		t.Error("launcher output should render in the body")
	}

	// Keyboard input is forwarded to the pty while running.
	s.Update(keyMsg("w"))
	if string(pty.wrote) != "w" {
		t.Errorf("expected key forwarded to pty, got %q", pty.wrote)
	}

	// EOF ends the game: progress cleared, pty closed, toast requested.
	close(pty.out)
	exitMsg := readCmd()
	v, toastCmd := s.Update(exitMsg)
	s = v.(*GameScreen)
	if s.running || s.Home.HasUnsavedProgress {
		t.Error("exit should clear running state and progress")
	}
	if !pty.closed {
		t.Error("exit should close the pty")
	}
	if toastCmd == nil {
		t.Fatal("exit should surface a toast")
	}
	toast, ok := toastCmd().(ShowToastMsg)
	if !ok || !strings.Contains(toast.Message, "Rogue") {
		t.Errorf("expected exit toast naming the game, got %+v", toast)
	}
}

func TestGameScreen_LaunchFailureSurfacesError(t *testing.T) {
	s := NewGameScreen(games.Game{ID: "rogue", Title: "Rogue", Command: "rogue"},
		&stubRunner{err: errors.New("no such game")})

	_, cmd := s.Update(keyMsg("enter"))
	msg := cmd()
	exited, ok := msg.(gameExitedMsg)
	if !ok {
		t.Fatalf("expected gameExitedMsg, got %T", msg)
	}
	_, toastCmd := s.Update(exited)
	if toastCmd == nil {
		t.Fatal("launch failure should surface a toast")
	}
	toast := toastCmd().(ShowToastMsg)
	if !strings.Contains(toast.Message, "no such game") {
		t.Errorf("toast should carry the error, got %q", toast.Message)
	}
}

func TestGameScreen_LeaveClosesPTY(t *testing.T) {
	pty := newStubPTY()
	s := NewGameScreen(games.Game{ID: "rogue", Title: "Rogue", Command: "rogue"}, &stubRunner{pty: pty})
	v, _ := s.Update(gameStartedMsg{pty: pty})
	s = v.(*GameScreen)

	// Leaving the screen must release the pty deterministically.
	v, _ = s.Update(LeaveMsg{})
	s = v.(*GameScreen)
	if !pty.closed || s.running {
		t.Error("leave should tear the launched game down")
	}
}

func TestGameScreen_ModalViewReplacesScreen(t *testing.T) {
	s := NewGameScreen(games.Game{ID: "snake", Title: "Snake"}, nil)
	s.Home.HasUnsavedProgress = true
	s.Update(keyMsg("esc"))
	if !s.Home.ModalOpen() {
		t.Fatal("expected modal")
	}
	if !strings.Contains(s.View(), "Leave game?") {
		t.Error("open modal should take over the view")
	}
}

func TestGameScreen_EnterWithoutCommandDoesNotLaunch(t *testing.T) {
	s := NewGameScreen(games.Game{ID: "snake", Title: "Snake"}, nil)
	_, cmd := s.Update(keyMsg("enter"))
	if cmd != nil {
		t.Error("enter without a command should do nothing")
	}
}
