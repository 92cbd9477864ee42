package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmExitModal_EscStays(t *testing.T) {
	m := NewConfirmExitModal()
	_, cmd := m.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("expected cmd from esc")
	}
	if _, ok := cmd().(StayMsg); !ok {
		t.Errorf("expected StayMsg, got %T", cmd())
	}
}

func TestConfirmExitModal_InitialFocusOnStay(t *testing.T) {
	m := NewConfirmExitModal()
	if m.Focused() != actionStay {
		t.Errorf("initial focus should be stay, got %q", m.Focused())
	}
	// Enter on initial focus stays.
	_, cmd := m.Update(keyMsg("enter"))
	if _, ok := cmd().(StayMsg); !ok {
		t.Errorf("expected StayMsg from enter on initial focus, got %T", cmd())
	}
}

func TestConfirmExitModal_FocusCycleAndLeave(t *testing.T) {
	m := NewConfirmExitModal()
	m.Update(keyMsg("right"))
	if m.Focused() != actionLeave {
		t.Fatalf("expected focus on leave after right, got %q", m.Focused())
	}
	_, cmd := m.Update(keyMsg("enter"))
	if _, ok := cmd().(LeaveMsg); !ok {
		t.Errorf("expected LeaveMsg, got %T", cmd())
	}

	// Tab wraps back around to stay.
	m.Update(keyMsg("tab"))
	if m.Focused() != actionStay {
		t.Errorf("expected focus to wrap to stay, got %q", m.Focused())
	}
}

func TestConfirmExitModal_YLeavesDirectly(t *testing.T) {
	m := NewConfirmExitModal()
	_, cmd := m.Update(keyMsg("y"))
	if _, ok := cmd().(LeaveMsg); !ok {
		t.Errorf("expected LeaveMsg from y, got %T", cmd())
	}
}

func TestConfirmExitModal_BackdropClickStays(t *testing.T) {
	m := NewConfirmExitModal()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	click := tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	_, cmd := m.Update(click)
	if cmd == nil {
		t.Fatal("backdrop click should dismiss")
	}
	if _, ok := cmd().(StayMsg); !ok {
		t.Errorf("expected StayMsg from backdrop click, got %T", cmd())
	}
}

func TestConfirmExitModal_DialogClickDoesNotDismiss(t *testing.T) {
	m := NewConfirmExitModal()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	// Dead center of the backdrop is inside the dialog.
	click := tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	_, cmd := m.Update(click)
	if cmd != nil {
		t.Errorf("click inside dialog must not dismiss, got %T", cmd())
	}
}

func TestConfirmExitModal_MouseMotionIgnored(t *testing.T) {
	m := NewConfirmExitModal()
	motion := tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion}
	_, cmd := m.Update(motion)
	if cmd != nil {
		t.Error("mouse motion should be ignored")
	}
}

func TestConfirmExitModal_ViewContainsActions(t *testing.T) {
	m := NewConfirmExitModal()
	view := m.View()
	for _, want := range []string{"Leave game?", "Stay", "Leave"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}
