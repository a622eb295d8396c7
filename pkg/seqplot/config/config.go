// Package config loads seqplot settings from YAML and the environment.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/admarks/seqplot/pkg/seqplot"
	"github.com/admarks/seqplot/pkg/seqplot/models"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds builder settings, external tool paths and presets.
type Config struct {
	Ordering    string               `yaml:"ordering"`
	Terminal    string               `yaml:"terminal"`
	PointType   int                  `yaml:"point_type"`
	LogBase     int                  `yaml:"log_base"`
	Palette     map[string]string    `yaml:"palette"`
	YRangeRules []seqplot.YRangeRule `yaml:"yrange_rules"`

	// Renderer is gnuplot, native or xlsx.
	Renderer    string `yaml:"renderer"`
	Gnuplot     string `yaml:"gnuplot"`
	SequenceBin string `yaml:"sequence_bin"`
	// Opener views written images, e.g. "open" or "xdg-open".
	Opener string `yaml:"opener"`

	Presets map[string]Preset `yaml:"presets"`
}

// Preset is a named batch of plots.
type Preset struct {
	Description string `yaml:"description"`
	// Ordering overrides the filename ordering for this preset.
	Ordering string               `yaml:"ordering"`
	Plots    []models.PlotRequest `yaml:"plots"`
}

// Renderers lists the accepted renderer names.
var Renderers = []string{"gnuplot", "native", "xlsx"}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("built-in config: %w", err)
	}
	return cfg, nil
}

// Load builds the configuration from the defaults, the YAML file at path
// (or SEQPLOT_CONFIG when path is empty) and SEQPLOT_* environment
// variables, in increasing precedence.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = os.Getenv("SEQPLOT_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.Gnuplot = getEnv("SEQPLOT_GNUPLOT", cfg.Gnuplot)
	cfg.SequenceBin = getEnv("SEQPLOT_SEQUENCE_BIN", cfg.SequenceBin)
	cfg.Opener = getEnv("SEQPLOT_OPENER", cfg.Opener)
	cfg.Renderer = getEnv("SEQPLOT_RENDERER", cfg.Renderer)
	cfg.LogBase = getEnvAsInt("SEQPLOT_LOG_BASE", cfg.LogBase)

	if cfg.SequenceBin == "" {
		cfg.SequenceBin = defaultSequenceBin()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := seqplot.ParseOrdering(c.Ordering); err != nil {
		return err
	}
	if !validRenderer(c.Renderer) {
		return fmt.Errorf("invalid renderer: %s (must be gnuplot, native, or xlsx)", c.Renderer)
	}
	for name, p := range c.Presets {
		if _, err := seqplot.ParseOrdering(p.Ordering); err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}
		if len(p.Plots) == 0 {
			return fmt.Errorf("preset %s: no plots", name)
		}
	}
	return nil
}

// BuilderConfig converts the settings for seqplot.NewBuilder.
func (c *Config) BuilderConfig() (seqplot.BuilderConfig, error) {
	ord, err := seqplot.ParseOrdering(c.Ordering)
	if err != nil {
		return seqplot.BuilderConfig{}, err
	}
	return seqplot.BuilderConfig{
		Ordering:    ord,
		Palette:     c.Palette,
		YRangeRules: c.YRangeRules,
		Terminal:    c.Terminal,
		PointType:   c.PointType,
		LogBase:     c.LogBase,
	}, nil
}

// Preset returns the named preset.
func (c *Config) Preset(name string) (Preset, error) {
	p, ok := c.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset: %s", name)
	}
	return p, nil
}

// PresetNames returns the preset names in sorted order.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validRenderer(name string) bool {
	for _, r := range Renderers {
		if r == name {
			return true
		}
	}
	return false
}

// defaultSequenceBin locates bin/sequence next to the executable's directory.
func defaultSequenceBin() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join("bin", "sequence")
	}
	return filepath.Join(filepath.Dir(exe), "..", "bin", "sequence")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
