package main

import (
	"github.com/spf13/cobra"

	"github.com/cinescout/cinescout/internal/config"
	mcpserver "github.com/cinescout/cinescout/internal/mcp"
)

// newMCPServeCmd returns the hidden "mcp-serve" subcommand. It starts an
// MCP server over stdin/stdout so LLM clients can use the discovery tools.
func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "mcp-serve",
		Short:  "Start MCP server over stdio",
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			logger := config.SetupLogger(cfg.App.LogLevel)
			provider := newProvider(cfg, logger)

			srv := mcpserver.NewServer(provider, logger)
			return srv.ServeStdio(cmd.Context())
		},
	}
}
