package config

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Palette is a theme with its colours parsed.
type Palette struct {
	Background    core.Color
	Outline       core.Color
	Font          core.Color
	LightFont     core.Color
	LightFontFrom int
	Tiles         []core.Color
}

// Palette parses the theme colours.
func (t ThemeConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *core.Color
	}{
		{"background", t.Background, &p.Background},
		{"outline", t.Outline, &p.Outline},
		{"font", t.Font, &p.Font},
		{"light_font", t.LightFont, &p.LightFont},
	}
	for _, f := range fields {
		c, err := core.ParseHex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("theme.%s: %w", f.name, err)
		}
		*f.dst = c
	}

	if len(t.Tiles) == 0 {
		return Palette{}, errors.New("theme.tiles must list at least one colour")
	}
	p.Tiles = make([]core.Color, len(t.Tiles))
	for i, hex := range t.Tiles {
		c, err := core.ParseHex(hex)
		if err != nil {
			return Palette{}, fmt.Errorf("theme.tiles[%d]: %w", i, err)
		}
		p.Tiles[i] = c
	}
	p.LightFontFrom = t.LightFontFrom
	return p, nil
}

// PaletteOrDefault parses the theme, falling back to the built-in one.
func (t ThemeConfig) PaletteOrDefault() Palette {
	p, err := t.Palette()
	if err != nil {
		p, _ = DefaultGameConfig().Theme.Palette()
	}
	return p
}

// TileColor returns the fill colour for a tile value: 2 maps to the first
// entry, 4 to the second and so on, capped at the last.
func (p Palette) TileColor(value int) core.Color {
	if len(p.Tiles) == 0 {
		return p.Background
	}
	i := bits.Len(uint(value)) - 2
	return p.Tiles[core.Clamp(i, 0, len(p.Tiles)-1)]
}

// TextColor returns the number colour for a tile value.
func (p Palette) TextColor(value int) core.Color {
	if p.LightFontFrom > 0 && value >= p.LightFontFrom {
		return p.LightFont
	}
	return p.Font
}
