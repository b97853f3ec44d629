// cmd/winchester/main.go
//
// This is the entry point for the winchester CLI.
// Running `winchester` with no subcommand opens the site in the terminal.
//
// Flow:
// 1. Make sure the .winchester folder exists in the project directory
// 2. Build the process logger
// 3. Launch the TUI (or run the requested subcommand)

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kingrea/winchester/internal/config"
	"github.com/kingrea/winchester/internal/logging"
	"github.com/kingrea/winchester/internal/tui"
)

var (
	// Global flags
	projectDir string
	verbose    bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "winchester",
	Short: "Winchester & Associates in your terminal",
	Long: `winchester renders the Winchester & Associates site as a terminal app:
practice areas, attorneys, case results and the free consultation form.

Run without arguments to open the interactive view.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if projectDir == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			projectDir = cwd
		}
		if err := config.InitProjectDir(projectDir); err != nil {
			return fmt.Errorf("initialize %s directory: %w", config.ProjectDirName, err)
		}
		built, err := logging.New(projectDir, verbose)
		if err != nil {
			return err
		}
		logger = built
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectDir, "dir", "", "project directory (defaults to the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(chartCmd, validateCatalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runInteractive() error {
	app, err := tui.NewApp(projectDir, tui.WithLogger(logger))
	if err != nil {
		return err
	}
	defer app.Close()
	logger.Info("starting terminal session", zap.String("project", projectDir))

	// Focus reporting lets the carousel pause while the terminal is in the
	// background.
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
