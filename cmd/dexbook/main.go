package main

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoraes/dexbook/internal/app"
	"github.com/lmoraes/dexbook/internal/catalog"
	"github.com/lmoraes/dexbook/internal/config"
	"github.com/lmoraes/dexbook/internal/tui"
	"github.com/lmoraes/dexbook/internal/tui/anim"
	"github.com/lmoraes/dexbook/internal/tui/panel"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	client := catalog.NewClient(cfg.APIBaseURL, cfg.Languages, nil)
	service := app.NewService(client)

	opts := tui.DefaultOptions()
	opts.OpenDuration = time.Duration(cfg.OpenMs) * time.Millisecond
	opts.CloseDuration = time.Duration(cfg.CloseMs) * time.Millisecond
	opts.OpenEasing = anim.EasingByName("ease-out-cubic")
	opts.CloseEasing = anim.EasingByName("ease-in-cubic")
	if cfg.PanelMode == "oneshot" {
		opts.Mode = panel.OneShot
	}

	model := tui.NewModel(service, opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		log.Fatalf("tui error: %v", err)
	}
}
