package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/filmotheque/filmotheque/internal/catalog"
	"github.com/filmotheque/filmotheque/internal/config"
	"github.com/filmotheque/filmotheque/internal/render"
)

func newGenresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List the catalog's genres",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runGenres()
		},
	}
}

func runGenres() error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := config.SetupLogger(cfg.App.LogLevel)
	client := initCatalog(cfg, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	genres := client.AllGenres(ctx)
	if len(genres) == 0 {
		fmt.Println(styleDim.Render("Aucun genre disponible."))
		return nil
	}

	fmt.Println(styleHeading.Render("Genres"))
	for _, g := range genres {
		fmt.Println("  " + g.Name)
	}
	return nil
}

func newTopCmd() *cobra.Command {
	var (
		count int
		genre string
	)

	cmd := &cobra.Command{
		Use:   "top",
		Short: "List the best-rated movies",
		Long:  "Print one score-sorted category listing, optionally filtered by genre.",
		Example: `  filmotheque top
  filmotheque top --genre Mystery --count 10`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTop(count, genre)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of movies (default: configured cards per category)")
	cmd.Flags().StringVarP(&genre, "genre", "g", "", "filter by genre")
	return cmd
}

func runTop(count int, genre string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := config.SetupLogger(cfg.App.LogLevel)
	client := initCatalog(cfg, logger)

	if count <= 0 {
		count = cfg.Browse.CardsPerCategory
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	q := catalog.TopRated()
	if genre != "" {
		q = catalog.ByGenre(genre)
	}

	movies, err := client.Movies(ctx, count, q)
	if err != nil {
		return fmt.Errorf("fetch listing: %w", err)
	}
	if len(movies) == 0 {
		fmt.Println(styleDim.Render("Aucun film trouvé."))
		return nil
	}

	heading := "Films les mieux notés"
	if genre != "" {
		heading = genre
	}
	fmt.Println(styleHeading.Render(heading))
	for i, mv := range movies {
		printMovie(i+1, mv)
	}
	return nil
}

func printMovie(index int, mv catalog.Movie) {
	line := fmt.Sprintf("%s %s",
		styleDim.Render(fmt.Sprintf("%2d.", index)),
		styleAccent.Render(mv.Title),
	)
	if mv.Year > 0 {
		line += styleDim.Render(fmt.Sprintf(" (%d)", mv.Year))
	}
	if mv.Score > 0 {
		line += "  " + render.FormatScore(float64(mv.Score))
	}
	fmt.Println(line)
}

// newConfigCmd prints the resolved configuration.
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			fmt.Println(styleHeading.Render("Configuration"))
			fmt.Printf("%s %s\n", styleDim.Render("API"), cfg.API.BaseURL)
			fmt.Printf("%s %d\n", styleDim.Render("Cartes par catégorie"), cfg.Browse.CardsPerCategory)
			for _, cat := range cfg.Browse.Categories {
				desc := cat.Title
				if cat.Kind == config.KindDropdown {
					desc = fmt.Sprintf("genre au choix (défaut: n°%d)", cat.DefaultGenreIndex+1)
				}
				fmt.Printf("  %s %s — %s\n", styleDim.Render("·"), cat.ID, desc)
			}
			if cfg.Telegram != nil {
				fmt.Printf("%s configuré\n", styleDim.Render("Telegram"))
			}
			return nil
		},
	}
}
