package main

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/filmotheque/filmotheque/internal/catalog"
	"github.com/filmotheque/filmotheque/internal/config"
)

// Lipgloss styles used across commands.
var (
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
	styleAccent  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleHeading = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("5")).
			MarginBottom(1)
)

// loadConfig loads the configuration file, falling back to built-in
// defaults when the file does not exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}

// initCatalog creates the catalog client from configuration.
func initCatalog(cfg *config.Config, logger *slog.Logger) *catalog.Client {
	return catalog.New(cfg.API.BaseURL, cfg.API.Timeout(), logger)
}
