package config

import (
	"fmt"
	"strings"
)

// SpeedPreset scales the animation velocity.
type SpeedPreset string

const (
	SpeedSlow    SpeedPreset = "slow"
	SpeedNormal  SpeedPreset = "normal"
	SpeedFast    SpeedPreset = "fast"
	SpeedInstant SpeedPreset = "instant"
)

// SpeedPresets lists the presets in order of increasing speed.
var SpeedPresets = []SpeedPreset{SpeedSlow, SpeedNormal, SpeedFast, SpeedInstant}

// ParseSpeedPreset parses a preset name. The empty string means normal.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	if s == "" {
		return SpeedNormal, nil
	}
	p := SpeedPreset(strings.ToLower(s))
	for _, known := range SpeedPresets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown speed %q (want slow, normal, fast or instant)", s)
}

// VelocityMultiplier returns the factor applied to the configured velocity.
func VelocityMultiplier(p SpeedPreset) float64 {
	switch p {
	case SpeedSlow:
		return 0.4
	case SpeedFast:
		return 2
	case SpeedInstant:
		return 100
	default:
		return 1
	}
}

// ApplySpeedPreset modifies the animation settings for a preset.
func ApplySpeedPreset(cfg *GameConfig, p SpeedPreset) {
	cfg.Animation.Velocity *= VelocityMultiplier(p)
	if p == SpeedInstant {
		cfg.Animation.SpawnScale = 1
	}
}
