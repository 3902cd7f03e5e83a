package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Validate checks that every setting is usable.
func (c GameConfig) Validate() error {
	var errs []error
	if c.Animation.Velocity <= 0 {
		errs = append(errs, fmt.Errorf("animation.velocity must be positive, got %v", c.Animation.Velocity))
	}
	if c.Animation.GrowDivisor <= 0 {
		errs = append(errs, fmt.Errorf("animation.grow_divisor must be positive, got %v", c.Animation.GrowDivisor))
	}
	if c.Animation.SnapFraction <= 0 || c.Animation.SnapFraction > 1 {
		errs = append(errs, fmt.Errorf("animation.snap_fraction must be in (0, 1], got %v", c.Animation.SnapFraction))
	}
	if c.Animation.SpawnScale <= 0 || c.Animation.SpawnScale > 1 {
		errs = append(errs, fmt.Errorf("animation.spawn_scale must be in (0, 1], got %v", c.Animation.SpawnScale))
	}
	if c.Spawn.FourOdds < 1 {
		errs = append(errs, fmt.Errorf("spawn.four_odds must be at least 1, got %d", c.Spawn.FourOdds))
	}
	if c.Runtime.TickRate < 1 || c.Runtime.TickRate > 240 {
		errs = append(errs, fmt.Errorf("runtime.tick_rate must be in [1, 240], got %d", c.Runtime.TickRate))
	}
	if _, err := log.ParseLevel(strings.ToLower(c.Runtime.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("runtime.log_level: %w", err))
	}
	if _, err := c.Theme.Palette(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
