package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"gamehub/internal/config"
	"gamehub/internal/launcher"
	"gamehub/internal/telemetry"
	"gamehub/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	tracer, err := telemetry.New(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = tracer.Shutdown(ctx)
	}()

	model := ui.NewAppModel(cfg, tracer, &launcher.CreackPTY{}).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
