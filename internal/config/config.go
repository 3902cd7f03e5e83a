// Package config provides YAML-based configuration loading for the 2048
// game: animation tuning, spawn odds, colour theme and runtime settings.
package config

// GameConfig contains all configuration for the game.
type GameConfig struct {
	Animation AnimationConfig `yaml:"animation"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Theme     ThemeConfig     `yaml:"theme"`
	Runtime   RuntimeSettings `yaml:"runtime"`

	// Source is where the configuration was loaded from.
	Source string `yaml:"-"`
}

// AnimationConfig tunes how tiles grow and slide. It has no effect on play.
type AnimationConfig struct {
	Velocity     float64 `yaml:"velocity"`      // pixels per second
	GrowDivisor  float64 `yaml:"grow_divisor"`  // spawned tiles grow at velocity/grow_divisor
	SnapFraction float64 `yaml:"snap_fraction"` // snap to the cell when this close, in cells
	SpawnScale   float64 `yaml:"spawn_scale"`   // starting size of a spawned tile, in cells
}

// SpawnConfig controls new tile values.
type SpawnConfig struct {
	FourOdds int `yaml:"four_odds"` // one spawn in four_odds is a 4
}

// ThemeConfig holds the colour scheme as "#rrggbb" strings.
type ThemeConfig struct {
	Background    string   `yaml:"background"`
	Outline       string   `yaml:"outline"`
	Font          string   `yaml:"font"`
	LightFont     string   `yaml:"light_font"`
	LightFontFrom int      `yaml:"light_font_from"` // values at or above this use light_font
	Tiles         []string `yaml:"tiles"`           // 2, 4, 8, ...; the last entry covers everything bigger
}

// RuntimeSettings holds frontend settings.
type RuntimeSettings struct {
	TickRate int    `yaml:"tick_rate"`
	LogLevel string `yaml:"log_level"`
}
