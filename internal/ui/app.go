package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"gamehub/internal/config"
	"gamehub/internal/games"
	"gamehub/internal/launcher"
	"gamehub/internal/nav"
	"gamehub/internal/telemetry"
)

// GoHomeMsg requests the home-button flow from anywhere (SPC h).
type GoHomeMsg struct{}

// AppModel is the root model. It switches between the hub and game screens
// by route and owns the app-level toast.
type AppModel struct {
	Mode  AppMode
	Route string

	Hub   *HubView
	Game  *GameScreen
	Toast *Toast

	KeyHandler *KeyHandler
	Catalog    games.Catalog
	Config     config.Config
	Tracer     *telemetry.Tracer
	Runner     launcher.Runner

	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(cfg config.Config, tracer *telemetry.Tracer, runner launcher.Runner) *AppModel {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDescForMode("SPC h", func() tea.Msg { return GoHomeMsg{} }, "Go home", []AppMode{ModeGame})

	return &AppModel{
		Mode:       ModeHub,
		Route:      nav.RouteHub,
		Hub:        NewHubView(),
		Toast:      NewToast(cfg.ToastDuration()),
		KeyHandler: NewKeyHandler(reg),
		Config:     cfg,
		Tracer:     tracer,
		Runner:     runner,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// loadCatalogCmd resolves the configured catalog off the update loop.
func loadCatalogCmd(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		return CatalogLoadedMsg{Catalog: cfg.Catalog()}
	}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(loadCatalogCmd(a.Config), a.Hub.Init())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		var cmds []tea.Cmd
		v, cmd := a.Hub.Update(msg)
		a.Hub = v.(*HubView)
		cmds = append(cmds, cmd)
		if a.Game != nil {
			v, cmd := a.Game.Update(msg)
			a.Game = v.(*GameScreen)
			cmds = append(cmds, cmd)
		}
		tv, cmd := a.Toast.Update(msg)
		a.Toast = tv.(*Toast)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case toastTickMsg:
		v, cmd := a.Toast.Update(msg)
		a.Toast = v.(*Toast)
		return a, cmd

	case ToastClosedMsg:
		a.Tracer.Toast(context.Background(), msg.Message, msg.ShownAt, a.Toast.Duration+toastFadeDelay)
		return a, nil

	case ShowToastMsg:
		return a, a.Toast.Show(msg.Message)

	case CatalogLoadedMsg:
		a.Catalog = msg.Catalog
		v, cmd := a.Hub.Update(msg)
		a.Hub = v.(*HubView)
		return a, cmd

	case nav.GoMsg:
		return a, a.navigate(msg.Path)

	case GoHomeMsg:
		if a.Mode == ModeGame && a.Game != nil {
			return a, a.Game.Home.Press()
		}
		return a, nil

	case tea.KeyMsg:
		// Keybind system (leader key, SPC-prefixed commands). The confirm
		// modal takes priority so esc reaches it rather than the leader.
		modalOpen := a.Game != nil && a.Game.Home.ModalOpen()
		if !modalOpen && a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

// navigate switches the active screen for a route change.
func (a *appModelAdapter) navigate(path string) tea.Cmd {
	from := a.Route

	if nav.IsHub(path) {
		a.Mode = ModeHub
		a.Game = nil
		a.Route = nav.RouteHub
		a.Tracer.Navigation(context.Background(), from, a.Route)
		return nil
	}

	id, ok := nav.GameID(path)
	if !ok {
		return a.Toast.Show("Unknown route: " + path)
	}
	g, ok := a.Catalog.ByID(id)
	if !ok {
		return a.Toast.Show("Unknown game: " + id)
	}
	if !g.Playable() {
		return a.Toast.Show(g.Title + " is coming soon")
	}

	a.Mode = ModeGame
	a.Game = NewGameScreen(g, a.Runner)
	a.Route = path
	a.Tracer.Navigation(context.Background(), from, path)

	var cmds []tea.Cmd
	cmds = append(cmds, a.Game.Init())
	if a.width > 0 {
		v, cmd := a.Game.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		a.Game = v.(*GameScreen)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.currentView().View()
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode)
	}
	if toast := a.Toast.View(); toast != "" {
		base += "\n" + toast
	}
	return base
}

func (a *appModelAdapter) currentView() View {
	if a.Mode == ModeGame && a.Game != nil {
		return a.Game
	}
	if a.Hub == nil {
		a.Hub = NewHubView()
	}
	return a.Hub
}

func (a *appModelAdapter) setCurrentView(v View) {
	switch a.Mode {
	case ModeHub:
		if h, ok := v.(*HubView); ok {
			a.Hub = h
		}
	case ModeGame:
		if g, ok := v.(*GameScreen); ok {
			a.Game = g
		}
	}
}
