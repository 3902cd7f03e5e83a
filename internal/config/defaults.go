package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Animation: AnimationConfig{
			Velocity:     2750,
			GrowDivisor:  7,
			SnapFraction: 0.25,
			SpawnScale:   0.5,
		},
		Spawn: SpawnConfig{
			FourOdds: 9,
		},
		Theme: ThemeConfig{
			Background:    "#cdc0b4",
			Outline:       "#bbada0",
			Font:          "#776e65",
			LightFont:     "#ffffff",
			LightFontFrom: 8,
			Tiles: []string{
				"#ede5da", // 2
				"#eee1c9", // 4
				"#f3b27a", // 8
				"#f69665", // 16
				"#f77c5f", // 32
				"#f75f3b", // 64
				"#edd073", // 128
				"#edcc63", // 256
				"#edca50", // 512
				"#3d3a33", // 1024 and up
			},
		},
		Runtime: RuntimeSettings{
			TickRate: 60,
			LogLevel: "info",
		},
		Source: "builtin",
	}
}
