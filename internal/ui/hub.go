package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gamehub/internal/games"
	"gamehub/internal/nav"
)

// CatalogLoadedMsg delivers the game catalog to the hub.
type CatalogLoadedMsg struct {
	Catalog games.Catalog
}

// cardRevealMsg reveals one card during the staggered entrance.
type cardRevealMsg struct {
	Index int
}

// HubView is the hub root screen: a row of game cards with selection.
type HubView struct {
	Catalog  games.Catalog
	Cards    []GameCard
	Selected int

	loading  bool
	spinner  spinner.Model
	revealed []bool
	width    int
	height   int
}

// Ensure HubView implements View.
var _ View = (*HubView)(nil)

// NewHubView creates a hub waiting for its catalog (CatalogLoadedMsg).
func NewHubView() *HubView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &HubView{
		loading: true,
		spinner: s,
	}
}

// Init implements View.
func (h *HubView) Init() tea.Cmd {
	return h.spinner.Tick
}

// Update implements View.
func (h *HubView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
		h.height = msg.Height
		return h, nil
	case spinner.TickMsg:
		if h.loading {
			var cmd tea.Cmd
			h.spinner, cmd = h.spinner.Update(msg)
			return h, cmd
		}
		return h, nil
	case CatalogLoadedMsg:
		return h, h.setCatalog(msg.Catalog)
	case cardRevealMsg:
		if msg.Index >= 0 && msg.Index < len(h.revealed) {
			h.revealed[msg.Index] = true
		}
		return h, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "up", "k":
			h.moveSelection(-1)
		case "right", "l", "down", "j", "tab":
			h.moveSelection(1)
		case "enter":
			if c, ok := h.selectedCard(); ok && !c.Locked() {
				return h, nav.Navigate(c.To)
			}
		}
		return h, nil
	}
	return h, nil
}

// setCatalog builds the cards and schedules the staggered entrance.
func (h *HubView) setCatalog(c games.Catalog) tea.Cmd {
	h.Catalog = c
	h.loading = false
	h.Cards = make([]GameCard, len(c.Games))
	h.revealed = make([]bool, len(c.Games))

	var cmds []tea.Cmd
	for i, g := range c.Games {
		h.Cards[i] = NewGameCard(g)
		if g.AnimationDelay <= 0 {
			h.revealed[i] = true
			continue
		}
		idx := i
		cmds = append(cmds, tea.Tick(g.AnimationDelay, func(time.Time) tea.Msg {
			return cardRevealMsg{Index: idx}
		}))
	}
	h.Selected = 0
	if card, ok := h.selectedCard(); ok && card.Locked() {
		h.moveSelection(1)
	}
	return tea.Batch(cmds...)
}

// selectedCard returns the card under the cursor.
func (h *HubView) selectedCard() (GameCard, bool) {
	if h.Selected < 0 || h.Selected >= len(h.Cards) {
		return GameCard{}, false
	}
	return h.Cards[h.Selected], true
}

// moveSelection advances the cursor by delta, skipping locked cards.
// Wraps around; if every card is locked the cursor stays put.
func (h *HubView) moveSelection(delta int) {
	if len(h.Cards) == 0 {
		return
	}
	idx := h.Selected
	for i := 0; i < len(h.Cards); i++ {
		idx = (idx + delta + len(h.Cards)) % len(h.Cards)
		if !h.Cards[idx].Locked() {
			h.Selected = idx
			return
		}
	}
}

// View implements View.
func (h *HubView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Game Hub") + "\n")

	if h.loading {
		b.WriteString("\n" + h.spinner.View() + " " + Styles.Muted.Render("Loading games…") + "\n")
		return b.String()
	}
	if len(h.Cards) == 0 {
		b.WriteString("\n" + Styles.Empty.Render("No games configured") + "\n")
		return b.String()
	}

	width := h.width
	if width == 0 {
		width = 80
	}
	perRow := width / (cardWidth + 2)
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for start := 0; start < len(h.Cards); start += perRow {
		end := start + perRow
		if end > len(h.Cards) {
			end = len(h.Cards)
		}
		row := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			if !h.revealed[i] {
				// Staggered entrance: not yet revealed cards hold blank space.
				row = append(row, lipgloss.NewStyle().Width(cardWidth+2).Render(""))
				continue
			}
			row = append(row, h.Cards[i].Render(i == h.Selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n" + Styles.Hint.Render("←/→: select  Enter: play  SPC: commands") + "\n")
	return b.String()
}
