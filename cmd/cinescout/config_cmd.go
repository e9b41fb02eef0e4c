package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const starterConfig = `tmdb:
  api_key: ""        # or set CINESCOUT_TMDB_API_KEY
  # relay_url: "https://api.allorigins.win/raw?url="

# telegram:
#   bot_token: ""
#   allowed_user_ids: []

app:
  log_level: info
  debounce_ms: 500
`

// newConfigCmd returns the "config" subcommand group for configuration management.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	cmd.AddCommand(newConfigValidateCmd(), newConfigInitCmd())
	return cmd
}

// newConfigValidateCmd returns the "config validate" subcommand that checks config file validity.
func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			fmt.Println(styleSuccess.Render("✓ Configuration is valid"))
			return nil
		},
	}
}

// newConfigInitCmd returns the "config init" subcommand that writes a starter config.
func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		RunE: func(_ *cobra.Command, _ []string) error {
			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("config file already exists: %s", configPath)
			}
			if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}
			if err := os.WriteFile(configPath, []byte(starterConfig), 0o600); err != nil {
				return fmt.Errorf("write config file: %w", err)
			}
			fmt.Println(styleSuccess.Render("✓ Wrote " + configPath))
			return nil
		},
	}
}
