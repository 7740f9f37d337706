package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/filmotheque/filmotheque/internal/catalog"
	"github.com/filmotheque/filmotheque/internal/config"
	"github.com/filmotheque/filmotheque/internal/render"
)

func newBestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "best",
		Short: "Show the best-rated movie",
		Long:  "Fetch the highest-rated movie of the catalog and print its banner.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBest()
		},
	}
}

func runBest() error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := config.SetupLogger(cfg.App.LogLevel)
	client := initCatalog(cfg, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	p := tea.NewProgram(newBestModel(ctx, client))
	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("run best: %w", err)
	}

	bm, ok := m.(bestModel)
	if !ok {
		return fmt.Errorf("unexpected model type from tea program")
	}
	if bm.err != nil {
		return bm.err
	}
	return nil
}

// bestResultMsg carries the banner fetch result back to the TUI.
type bestResultMsg struct {
	detail *catalog.MovieDetail
	err    error
}

type bestModel struct {
	ctx     context.Context
	client  *catalog.Client
	spinner spinner.Model
	detail  *catalog.MovieDetail
	err     error
	done    bool
}

func newBestModel(ctx context.Context, client *catalog.Client) bestModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styleInfo
	return bestModel{
		ctx:     ctx,
		client:  client,
		spinner: s,
	}
}

func (m bestModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchBest())
}

func (m bestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case bestResultMsg:
		m.detail = msg.detail
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m bestModel) View() string {
	if m.done {
		if m.err != nil {
			return styleError.Render("Erreur: "+m.err.Error()) + "\n"
		}
		return render.Banner(m.detail, render.PosterUnknown) + "\n"
	}
	return m.spinner.View() + styleDim.Render(" Recherche du meilleur film...") + "\n"
}

func (m bestModel) fetchBest() tea.Cmd {
	return func() tea.Msg {
		detail, err := m.client.BestMovie(m.ctx)
		return bestResultMsg{detail: detail, err: err}
	}
}
