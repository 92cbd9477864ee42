package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// toastPhase is the toast lifecycle state.
type toastPhase int

const (
	toastHidden toastPhase = iota
	toastVisible
	toastFading
)

// toastFadeDelay is how long the fade-out phase lasts before the close
// notification fires.
const toastFadeDelay = 400 * time.Millisecond

// defaultToastDuration is used when no duration is configured.
const defaultToastDuration = 3 * time.Second

// toastTickMsg drives the toast's staged timers. Gen identifies the message
// lifecycle that scheduled the tick; ticks from superseded lifecycles are
// dropped, which is how pending timers are cancelled.
type toastTickMsg struct {
	Gen    int
	Fading bool
}

// ToastClosedMsg is emitted once per message lifecycle, after the fade-out
// delay has elapsed.
type ToastClosedMsg struct {
	Gen     int
	Message string
	ShownAt time.Time
}

// Toast displays a transient message for a fixed duration, then dismisses
// itself with a fade-out phase before emitting ToastClosedMsg.
type Toast struct {
	Message  string
	Duration time.Duration

	phase   toastPhase
	gen     int
	shownAt time.Time
	width   int
}

// Ensure Toast implements View.
var _ View = (*Toast)(nil)

// NewToast creates a hidden toast. Non-positive durations use the default.
func NewToast(duration time.Duration) *Toast {
	if duration <= 0 {
		duration = defaultToastDuration
	}
	return &Toast{Duration: duration}
}

// Show starts a new message lifecycle and returns the hide timer command.
// A new message supersedes any in-flight lifecycle: pending ticks for the
// old generation no longer match and are dropped on arrival. An empty
// message hides the toast without a close notification.
func (t *Toast) Show(message string) tea.Cmd {
	t.gen++
	if message == "" {
		t.Message = ""
		t.phase = toastHidden
		return nil
	}
	t.Message = message
	t.phase = toastVisible
	t.shownAt = time.Now()
	gen := t.gen
	return tea.Tick(t.Duration, func(time.Time) tea.Msg {
		return toastTickMsg{Gen: gen}
	})
}

// Dismiss cancels any in-flight lifecycle without a close notification.
func (t *Toast) Dismiss() {
	t.gen++
	t.Message = ""
	t.phase = toastHidden
}

// Visible reports whether the toast currently renders.
func (t *Toast) Visible() bool {
	return t.phase != toastHidden && t.Message != ""
}

// Init implements View.
func (t *Toast) Init() tea.Cmd {
	return nil
}

// Update implements View. The hide tick moves Visible to Fading and
// schedules the close tick; the close tick hides the toast and emits
// ToastClosedMsg. Stale generations are ignored.
func (t *Toast) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.width = msg.Width
		return t, nil
	case toastTickMsg:
		if msg.Gen != t.gen {
			return t, nil // superseded lifecycle
		}
		if !msg.Fading {
			if t.phase != toastVisible {
				return t, nil
			}
			t.phase = toastFading
			gen := t.gen
			return t, tea.Tick(toastFadeDelay, func(time.Time) tea.Msg {
				return toastTickMsg{Gen: gen, Fading: true}
			})
		}
		if t.phase != toastFading {
			return t, nil
		}
		closed := ToastClosedMsg{Gen: t.gen, Message: t.Message, ShownAt: t.shownAt}
		t.phase = toastHidden
		t.Message = ""
		return t, func() tea.Msg { return closed }
	}
	return t, nil
}

// View implements View. Hidden toasts render nothing.
func (t *Toast) View() string {
	if !t.Visible() {
		return ""
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)
	text := Styles.Normal
	if t.phase == toastFading {
		style = style.BorderForeground(lipgloss.Color(ColorDim))
		text = Styles.Muted
	}
	return style.Render(text.Render(t.Message))
}
