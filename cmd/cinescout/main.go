package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "cinescout",
		Short: "Terminal movie discovery",
		Long: "CineScout is a terminal UI for discovering movies.\n" +
			"Browse this week's trending titles, search by name as you type,\n" +
			"and open any result for full details including genres and cast.",
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/cinescout.yaml", "path to configuration file")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(
		newVersionCmd(),
		newBrowseCmd(),
		newSearchCmd(),
		newTrendingCmd(),
		newMovieCmd(),
		newTelegramCmd(),
		newMCPServeCmd(),
		newConfigCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render(err.Error()))
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("CineScout v%s\n", version)
		},
	}
}
