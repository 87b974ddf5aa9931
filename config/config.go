package config

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that points at the config file.
const EnvPath = "SPRITEANIM_CONFIG"

// DefaultPath is used when EnvPath is unset.
const DefaultPath = "spriteanim.yaml"

type WindowSpec struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
	Title  string  `yaml:"title"`
}

type CanvasSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PreviewSpec struct {
	// Background is an SVG colour name, see golang.org/x/image/colornames.
	Background     string `yaml:"background"`
	TicksPerSecond int    `yaml:"ticks_per_second"`
}

type ExportSpec struct {
	Dir   string `yaml:"dir"`
	Scale int    `yaml:"scale"`
}

// Config holds the editor and command line settings.
type Config struct {
	Window  WindowSpec  `yaml:"window"`
	Canvas  CanvasSpec  `yaml:"canvas"`
	Preview PreviewSpec `yaml:"preview"`
	Export  ExportSpec  `yaml:"export"`
	// Watch reloads an open project when its file changes on disk.
	Watch bool `yaml:"watch"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Window:  WindowSpec{Width: 1280, Height: 720, Scale: 1, Title: "Sprite Animations"},
		Canvas:  CanvasSpec{Width: 64, Height: 16},
		Preview: PreviewSpec{Background: "darkslategray", TicksPerSecond: 60},
		Export:  ExportSpec{Dir: "export", Scale: 1},
		Watch:   true,
	}
}

// Path returns the config path from the environment, or DefaultPath.
func Path() string {
	if p := strings.TrimSpace(os.Getenv(EnvPath)); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads filename over the defaults. A missing file yields the defaults.
func Load(filename string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", filename, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(filename string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("config: save %s: %w", filename, err)
	}
	return nil
}

// Validate rejects settings the editor cannot use.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if _, ok := colornames.Map[strings.ToLower(c.Preview.Background)]; !ok {
		return fmt.Errorf("unknown preview background %q", c.Preview.Background)
	}
	if c.Export.Scale < 1 {
		return fmt.Errorf("export scale must be at least 1, got %d", c.Export.Scale)
	}
	return nil
}

// CanvasSize returns the default canvas for new projects.
func (c Config) CanvasSize() image.Point {
	return image.Pt(c.Canvas.Width, c.Canvas.Height)
}

// BackgroundColor resolves the preview background name.
func (c Config) BackgroundColor() color.RGBA {
	if col, ok := colornames.Map[strings.ToLower(c.Preview.Background)]; ok {
		return col
	}
	return colornames.Darkslategray
}
