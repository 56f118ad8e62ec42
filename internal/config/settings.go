package config

import (
	"fmt"
	"time"
)

// Defaults mirror the values the page was tuned with.
const (
	DefaultBreakpoint        = 768
	DefaultProbeOffset       = 100
	DefaultCarouselSpeed     = 0.08
	DefaultCrossfadeInterval = 5 * time.Second
	DefaultFadeDuration      = 1500 * time.Millisecond
	DefaultFrameInterval     = 16 * time.Millisecond
	DefaultCellWidth         = 8
	DefaultCellHeight        = 16
	DefaultLogLevel          = "info"
)

// Settings holds the tuning knobs of a showcase session. Lengths are in
// logical units; the terminal front end converts columns and rows with
// CellWidth and CellHeight.
type Settings struct {
	Breakpoint        int      `yaml:"breakpoint" toml:"breakpoint" env:"BREAKPOINT" validate:"gt=0"`
	ProbeOffset       float64  `yaml:"probe_offset" toml:"probe_offset" env:"PROBE_OFFSET" validate:"gte=0"`
	CarouselSpeed     float64  `yaml:"carousel_speed" toml:"carousel_speed" env:"CAROUSEL_SPEED" validate:"gt=0"`
	CrossfadeInterval Duration `yaml:"crossfade_interval" toml:"crossfade_interval" env:"CROSSFADE_INTERVAL" validate:"gt=0"`
	FadeDuration      Duration `yaml:"fade_duration" toml:"fade_duration" env:"FADE_DURATION" validate:"gte=0,ltefield=CrossfadeInterval"`
	FrameInterval     Duration `yaml:"frame_interval" toml:"frame_interval" env:"FRAME_INTERVAL" validate:"gt=0"`
	ScrollThrottle    Duration `yaml:"scroll_throttle" toml:"scroll_throttle" env:"SCROLL_THROTTLE" validate:"gte=0"`
	CellWidth         int      `yaml:"cell_width" toml:"cell_width" env:"CELL_WIDTH" validate:"gt=0"`
	CellHeight        int      `yaml:"cell_height" toml:"cell_height" env:"CELL_HEIGHT" validate:"gt=0"`

	Manifest string `yaml:"manifest" toml:"manifest" env:"MANIFEST"`

	Log LogSettings `yaml:"log" toml:"log" envPrefix:"LOG_"`
}

// LogSettings configures the session logger.
type LogSettings struct {
	Level         string `yaml:"level" toml:"level" env:"LEVEL" validate:"oneof=trace debug info warn error disabled"`
	File          string `yaml:"file" toml:"file" env:"FILE"`
	HumanReadable bool   `yaml:"human_readable" toml:"human_readable" env:"HUMAN_READABLE"`
}

// Default returns the settings used when nothing overrides them.
func Default() Settings {
	return Settings{
		Breakpoint:        DefaultBreakpoint,
		ProbeOffset:       DefaultProbeOffset,
		CarouselSpeed:     DefaultCarouselSpeed,
		CrossfadeInterval: Duration(DefaultCrossfadeInterval),
		FadeDuration:      Duration(DefaultFadeDuration),
		FrameInterval:     Duration(DefaultFrameInterval),
		CellWidth:         DefaultCellWidth,
		CellHeight:        DefaultCellHeight,
		Log: LogSettings{
			Level: DefaultLogLevel,
		},
	}
}

// Columns converts a terminal width to logical units.
func (s Settings) Columns(cols int) float64 {
	return float64(cols * s.CellWidth)
}

// Rows converts a row count to logical units.
func (s Settings) Rows(rows int) float64 {
	return float64(rows * s.CellHeight)
}

// Duration is a time.Duration that decodes from strings such as "1.5s" in
// YAML, TOML and environment values alike.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}
