package willowgui

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes a Host. Fields missing from a config file keep the
// values of DefaultConfig.
type Config struct {
	Title        string `yaml:"title"`
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`

	// FontPath names a TTF or OTF file. Empty selects Go Regular.
	FontPath string  `yaml:"font_path"`
	FontSize float64 `yaml:"font_size"`

	Sizes Sizes `yaml:"sizes"`
	Theme Theme `yaml:"theme"`

	// LayoutStore is the path of the window layout database. Empty
	// disables layout persistence.
	LayoutStore string `yaml:"layout_store"`
	// LogLevel is one of debug, info, warn or error. Empty keeps the
	// package logger silent.
	LogLevel string `yaml:"log_level"`
	// FadeIn is the fade-in duration of new windows in seconds.
	FadeIn float64 `yaml:"fade_in"`
	Debug  bool    `yaml:"debug"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Title:        "willowgui",
		ScreenWidth:  640,
		ScreenHeight: 480,
		FontSize:     14,
		Sizes:        DefaultSizes(),
		Theme:        DefaultTheme(),
	}
}

// ParseConfig decodes a YAML config over the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("willowgui: parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and decodes the YAML config at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("willowgui: read config: %w", err)
	}
	return ParseConfig(data)
}

func (c Config) validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("willowgui: invalid screen size %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("willowgui: invalid font size %v", c.FontSize)
	}
	if c.FadeIn < 0 {
		return fmt.Errorf("willowgui: invalid fade_in %v", c.FadeIn)
	}
	if err := c.Sizes.validate(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// LoadFont loads the configured font.
func (c Config) LoadFont() (*TTFFont, error) {
	if c.FontPath == "" {
		return DefaultFont(c.FontSize)
	}
	data, err := os.ReadFile(c.FontPath)
	if err != nil {
		return nil, fmt.Errorf("willowgui: read font: %w", err)
	}
	return LoadTTFFont(data, c.FontSize)
}

// Level parses LogLevel. An empty level reports slog.LevelInfo.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("willowgui: invalid log_level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// Options returns the Gui options the config implies. The layout store is
// opened by the Host, not here.
func (c Config) Options() []Option {
	opts := []Option{
		WithSizes(c.Sizes),
		WithTheme(c.Theme),
		WithScreenSize(float64(c.ScreenWidth), float64(c.ScreenHeight)),
		WithDebug(c.Debug),
	}
	if c.FadeIn > 0 {
		opts = append(opts, WithFadeIn(c.FadeIn))
	}
	return opts
}
