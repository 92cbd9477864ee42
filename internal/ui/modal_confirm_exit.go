package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StayMsg is sent when the user chooses to stay in the current game.
type StayMsg struct{}

// LeaveMsg is sent when the user confirms leaving the game.
type LeaveMsg struct{}

// Modal action IDs for the focus ring.
const (
	actionStay  = "stay"
	actionLeave = "leave"
)

// ConfirmExitModal asks whether to abandon unsaved progress.
// Esc or clicking the backdrop stays; Enter activates the focused action;
// y confirms leaving directly. The modal holds no navigation logic itself.
type ConfirmExitModal struct {
	Title  string
	Prompt string

	focus  *FocusRing
	width  int
	height int
}

// Ensure ConfirmExitModal implements View.
var _ View = (*ConfirmExitModal)(nil)

// NewConfirmExitModal creates a modal with initial focus on Stay.
func NewConfirmExitModal() *ConfirmExitModal {
	return &ConfirmExitModal{
		Title:  "Leave game?",
		Prompt: "Your progress will be lost.",
		focus:  NewFocusRing(actionStay, actionLeave),
	}
}

// Focused returns the currently focused action ID.
func (m *ConfirmExitModal) Focused() string {
	return m.focus.Current
}

// Init implements View.
func (m *ConfirmExitModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmExitModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return StayMsg{} }
		case "y":
			return m, func() tea.Msg { return LeaveMsg{} }
		case "left", "right", "tab", "shift+tab", "h", "l":
			if msg.String() == "left" || msg.String() == "h" || msg.String() == "shift+tab" {
				m.focus.Prev()
			} else {
				m.focus.Next()
			}
			return m, nil
		case "enter":
			if m.focus.Current == actionLeave {
				return m, func() tea.Msg { return LeaveMsg{} }
			}
			return m, func() tea.Msg { return StayMsg{} }
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		// Clicks inside the dialog box never dismiss; the backdrop does.
		if m.inDialog(msg.X, msg.Y) {
			return m, nil
		}
		return m, func() tea.Msg { return StayMsg{} }
	}
	return m, nil
}

// View implements View. The dialog is centered over a full-screen backdrop.
func (m *ConfirmExitModal) View() string {
	w, h := m.bounds()
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, m.dialog())
}

// dialog renders the dialog box itself.
func (m *ConfirmExitModal) dialog() string {
	stay := Styles.ButtonBlurred.Render("Stay")
	leave := Styles.ButtonBlurred.Render("Leave")
	switch m.focus.Current {
	case actionStay:
		stay = Styles.ButtonFocused.Render("Stay")
	case actionLeave:
		leave = Styles.ButtonFocused.Render("Leave")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, stay, "  ", leave)

	content := Styles.TitleWarning.Render(m.Title) + "\n\n"
	content += Styles.Label.Render(m.Prompt) + "\n\n"
	content += buttons + "\n\n"
	content += Styles.Hint.Render("←/→: focus  Enter: select  y: leave  Esc: stay")
	return Styles.BoxDanger.Render(content)
}

// inDialog reports whether screen coordinates fall inside the dialog box.
func (m *ConfirmExitModal) inDialog(x, y int) bool {
	w, h := m.bounds()
	box := m.dialog()
	boxW := lipgloss.Width(box)
	boxH := lipgloss.Height(box)
	x0 := (w - boxW) / 2
	y0 := (h - boxH) / 2
	return x >= x0 && x < x0+boxW && y >= y0 && y < y0+boxH
}

// bounds returns the backdrop dimensions, with defaults for tests.
func (m *ConfirmExitModal) bounds() (int, int) {
	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}
	return w, h
}
