package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render(err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "filmotheque",
		Short: "Terminal client for a paginated movie catalog",
		Long: "Filmotheque browses an OCMovies-style REST backend from the terminal:\n" +
			"category grids, a best-movie banner, and per-movie detail views.",
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/filmotheque.yaml", "path to configuration file")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(
		newVersionCmd(),
		newBrowseCmd(),
		newBestCmd(),
		newGenresCmd(),
		newTopCmd(),
		newTelegramCmd(),
		newMCPServeCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("Filmotheque v%s\n", version)
		},
	}
}
