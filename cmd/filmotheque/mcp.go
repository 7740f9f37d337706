package main

import (
	"github.com/spf13/cobra"

	"github.com/filmotheque/filmotheque/internal/config"
	mcpserver "github.com/filmotheque/filmotheque/internal/mcp"
)

// newMCPServeCmd returns the hidden "mcp-serve" subcommand.
// It exposes the catalogue over an MCP server on stdin/stdout so that
// MCP-capable assistants can browse the movie catalogue.
func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "mcp-serve",
		Short:  "Start MCP server over stdio (internal)",
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			logger := config.SetupLogger(cfg.App.LogLevel)
			client := initCatalog(cfg, logger)

			srv := mcpserver.NewServer(client, logger)
			return srv.ServeStdio(cmd.Context())
		},
	}
}
