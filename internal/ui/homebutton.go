package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gamehub/internal/nav"
)

// HomeButton navigates back to the hub root. With unsaved progress it opens
// ConfirmExitModal first and only navigates once the user confirms leaving.
type HomeButton struct {
	HasUnsavedProgress bool

	modal  *ConfirmExitModal
	width  int
	height int
}

// Ensure HomeButton implements View.
var _ View = (*HomeButton)(nil)

// NewHomeButton creates a home button.
func NewHomeButton() *HomeButton {
	return &HomeButton{}
}

// Press activates the button. Without unsaved progress it navigates home
// immediately; otherwise it opens the confirm modal and defers navigation.
func (b *HomeButton) Press() tea.Cmd {
	if b.modal != nil {
		return nil
	}
	if !b.HasUnsavedProgress {
		return nav.Navigate(nav.RouteHub)
	}
	b.modal = NewConfirmExitModal()
	if b.width > 0 {
		v, _ := b.modal.Update(tea.WindowSizeMsg{Width: b.width, Height: b.height})
		b.modal = v.(*ConfirmExitModal)
	}
	return nil
}

// ModalOpen reports whether the confirm modal is showing.
func (b *HomeButton) ModalOpen() bool {
	return b.modal != nil
}

// Init implements View.
func (b *HomeButton) Init() tea.Cmd {
	return nil
}

// Update implements View. While the modal is open all input goes to it;
// its Stay/Leave messages close it here, and Leave also navigates home.
func (b *HomeButton) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		if b.modal != nil {
			v, _ := b.modal.Update(msg)
			b.modal = v.(*ConfirmExitModal)
		}
		return b, nil
	case StayMsg:
		b.modal = nil
		return b, nil
	case LeaveMsg:
		b.modal = nil
		return b, nav.Navigate(nav.RouteHub)
	}
	if b.modal != nil {
		v, cmd := b.modal.Update(msg)
		b.modal = v.(*ConfirmExitModal)
		return b, cmd
	}
	return b, nil
}

// View implements View; renders the button itself.
func (b *HomeButton) View() string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true)
	return style.Render("⌂ Home") + Styles.Hint.Render("  (esc)")
}

// ModalView renders the confirm modal overlay, or nothing while closed.
func (b *HomeButton) ModalView() string {
	if b.modal == nil {
		return ""
	}
	return b.modal.View()
}
