// internal/config/config.go
//
// This package handles configuration and the .winchester directory.
// Every directory the shell runs in gets a .winchester/ folder holding the
// config file and the logs.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kingrea/winchester/internal/chart"
	"github.com/kingrea/winchester/internal/intake"
)

const (
	// ProjectDirName is the name of the directory we create in each project
	ProjectDirName = ".winchester"

	// CatalogEnv overrides catalog.path when set.
	CatalogEnv = "WINCHESTER_CATALOG"

	defaultAutoplayMS      = 5000
	defaultPixelsPerColumn = 10
	defaultChartPreset     = "success-rate"
)

var defaultBreakpoints = []int{640, 1024}

var defaultRequiredFields = []string{"name", "email", "message"}

const defaultProjectConfigYAML = `# winchester configuration
version: 1

carousel:
  # Delay between case-result slides.
  autoplay_ms: 5000
  # Viewport widths (px) at which two and three slides become visible.
  breakpoints: [640, 1024]
  # Terminal columns are scaled by this factor to get a site width in px.
  pixels_per_column: 10

intake:
  # Consultation form fields that must be filled before submitting.
  required: [name, email, message]

catalog:
  # Leave empty to use the bundled content. WINCHESTER_CATALOG overrides this.
  path: ""

chart:
  preset: success-rate
`

// CarouselConfig tunes the case-result carousel.
type CarouselConfig struct {
	AutoplayMS      int   `yaml:"autoplay_ms"`
	Breakpoints     []int `yaml:"breakpoints"`
	PixelsPerColumn int   `yaml:"pixels_per_column"`
}

// IntakeConfig lists the required consultation fields.
type IntakeConfig struct {
	Required []string `yaml:"required"`
}

// CatalogConfig points at an alternative content file.
type CatalogConfig struct {
	Path string `yaml:"path,omitempty"`
}

// ChartConfig selects the chart shown in the success panel.
type ChartConfig struct {
	Preset string `yaml:"preset"`
}

// ProjectConfig models .winchester/config.yaml.
type ProjectConfig struct {
	Version  int            `yaml:"version"`
	Carousel CarouselConfig `yaml:"carousel"`
	Intake   IntakeConfig   `yaml:"intake"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Chart    ChartConfig    `yaml:"chart"`
}

// Config holds the runtime configuration.
type Config struct {
	// ProjectDir is the directory the shell was started from
	ProjectDir string

	// StateDir is ProjectDir/.winchester
	StateDir string

	Project ProjectConfig
}

// InitProjectDir creates the .winchester directory structure in projectDir.
//
// Structure created:
// .winchester/
// ├── config.yaml
// └── logs/
func InitProjectDir(projectDir string) error {
	root := filepath.Join(projectDir, ProjectDirName)
	if err := os.MkdirAll(filepath.Join(root, "logs"), 0o755); err != nil {
		return err
	}
	return ensureProjectConfig(filepath.Join(root, "config.yaml"))
}

// NewConfig creates a Config populated with project settings. A missing
// config file is not an error; defaults apply.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir: projectDir,
		StateDir:   filepath.Join(projectDir, ProjectDirName),
		Project:    defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	if override := strings.TrimSpace(os.Getenv(CatalogEnv)); override != "" {
		cfg.Project.Catalog.Path = resolvePath(projectDir, override)
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.StateDir, "logs")
}

// ProjectConfigPath returns the on-disk location for the config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.StateDir, "config.yaml")
}

// AutoplayInterval returns the carousel delay.
func (c *Config) AutoplayInterval() time.Duration {
	return time.Duration(c.Project.Carousel.AutoplayMS) * time.Millisecond
}

// Breakpoints returns the two carousel breakpoints in pixels.
func (c *Config) Breakpoints() (two, three int) {
	bp := c.Project.Carousel.Breakpoints
	return bp[0], bp[1]
}

// PixelsPerColumn returns the terminal-to-site width scale.
func (c *Config) PixelsPerColumn() int {
	return c.Project.Carousel.PixelsPerColumn
}

// RequiredFields returns the required consultation fields.
func (c *Config) RequiredFields() []string {
	return append([]string(nil), c.Project.Intake.Required...)
}

// CatalogPath returns the content file override, or "" for the bundled one.
func (c *Config) CatalogPath() string {
	return c.Project.Catalog.Path
}

// ChartPreset returns the chart preset name.
func (c *Config) ChartPreset() string {
	return c.Project.Chart.Preset
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize(c.ProjectDir)
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	pc := ProjectConfig{}
	pc.applyDefaults()
	return pc
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if pc.Carousel.AutoplayMS == 0 {
		pc.Carousel.AutoplayMS = defaultAutoplayMS
	}
	if len(pc.Carousel.Breakpoints) == 0 {
		pc.Carousel.Breakpoints = append([]int(nil), defaultBreakpoints...)
	}
	if pc.Carousel.PixelsPerColumn == 0 {
		pc.Carousel.PixelsPerColumn = defaultPixelsPerColumn
	}
	if pc.Intake.Required == nil {
		pc.Intake.Required = append([]string(nil), defaultRequiredFields...)
	}
	if strings.TrimSpace(pc.Chart.Preset) == "" {
		pc.Chart.Preset = defaultChartPreset
	}
}

func (pc *ProjectConfig) normalize(base string) {
	seen := map[string]struct{}{}
	required := pc.Intake.Required[:0]
	for _, name := range pc.Intake.Required {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		required = append(required, name)
	}
	pc.Intake.Required = required
	pc.Catalog.Path = resolvePath(base, pc.Catalog.Path)
	pc.Chart.Preset = strings.ToLower(strings.TrimSpace(pc.Chart.Preset))
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if pc.Carousel.AutoplayMS < 0 {
		return fmt.Errorf("carousel.autoplay_ms must be positive")
	}
	bp := pc.Carousel.Breakpoints
	if len(bp) != 2 {
		return fmt.Errorf("carousel.breakpoints must list exactly two widths")
	}
	if bp[0] <= 0 || bp[1] <= bp[0] {
		return fmt.Errorf("carousel.breakpoints must be positive and increasing, got %v", bp)
	}
	if pc.Carousel.PixelsPerColumn < 0 {
		return fmt.Errorf("carousel.pixels_per_column must be positive")
	}
	fields := intake.ConsultationFields()
	for _, name := range pc.Intake.Required {
		if !slices.Contains(fields, name) {
			return fmt.Errorf("intake.required: unknown field %q (known: %s)", name, strings.Join(fields, ", "))
		}
	}
	if presets := chart.PresetNames(); !slices.Contains(presets, pc.Chart.Preset) {
		return fmt.Errorf("chart.preset: unknown preset %q (known: %s)", pc.Chart.Preset, strings.Join(presets, ", "))
	}
	return nil
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0644)
}
