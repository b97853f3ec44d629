package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kingrea/winchester/internal/catalog"
	"github.com/kingrea/winchester/internal/config"
)

// errInvalidCatalog makes the command exit non-zero after the report is printed.
var errInvalidCatalog = errors.New("catalog is invalid")

var validateCatalogCmd = &cobra.Command{
	Use:   "validate-catalog [path]",
	Short: "Check a content catalog file",
	Long: `Validates a catalog YAML file. Without a path the configured catalog is
checked, or the bundled one when none is configured.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidateCatalog,
}

func runValidateCatalog(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		cfg, err := config.NewConfig(projectDir)
		if err != nil {
			return err
		}
		path = cfg.CatalogPath()
	}

	if path == "" {
		cat, err := catalog.Default()
		if err != nil {
			return fmt.Errorf("bundled catalog: %w", err)
		}
		fmt.Fprintf(out, "OK: bundled catalog (%s)\n", cat.Firm())
		return nil
	}

	report, err := catalog.ValidateFile(path)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if report.IsValid() {
		fmt.Fprintf(out, "OK: %s (%s, %d items)\n", report.Path, report.Firm, report.Items)
		return nil
	}
	fmt.Fprintf(out, "Invalid: %s (%s)\n", report.Path, report.Firm)
	for _, validationErr := range report.Errors {
		fmt.Fprintf(out, "- %v\n", validationErr)
	}
	logger.Warn("catalog rejected", zap.String("path", report.Path), zap.Int("errors", len(report.Errors)))
	return errInvalidCatalog
}
