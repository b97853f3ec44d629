package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kingrea/winchester/internal/chart"
	"github.com/kingrea/winchester/internal/config"
)

var (
	chartPreset string
	chartOut    string
	chartWidth  int
	chartHeight int
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render a success chart to PNG",
	Long: `Renders one of the bundled chart presets to a PNG file.

Example:
  winchester chart --preset case-outcomes --out outcomes.png`,
	Args: cobra.NoArgs,
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringVar(&chartPreset, "preset", "", fmt.Sprintf("chart preset (%s); defaults to chart.preset from config", strings.Join(chart.PresetNames(), ", ")))
	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "chart.png", "output file")
	chartCmd.Flags().IntVar(&chartWidth, "width", 0, "image width in pixels")
	chartCmd.Flags().IntVar(&chartHeight, "height", 0, "image height in pixels")
}

func runChart(cmd *cobra.Command, args []string) error {
	name := chartPreset
	if name == "" {
		cfg, err := config.NewConfig(projectDir)
		if err != nil {
			return err
		}
		name = cfg.ChartPreset()
	}
	spec, err := chart.Preset(name)
	if err != nil {
		return err
	}

	file, err := os.Create(chartOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", chartOut, err)
	}
	if err := chart.RenderPNG(file, spec, chartWidth, chartHeight); err != nil {
		file.Close()
		return fmt.Errorf("render %s: %w", name, err)
	}
	if err := file.Close(); err != nil {
		return err
	}
	logger.Info("chart rendered", zap.String("preset", name), zap.String("out", chartOut))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", chartOut, spec.Title)
	return nil
}
