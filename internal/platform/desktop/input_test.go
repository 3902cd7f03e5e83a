package desktop

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func pressed(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestPollInput(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want []core.Action
	}{
		{"nothing", nil, nil},
		{"arrow", []ebiten.Key{ebiten.KeyArrowLeft}, []core.Action{core.ActionLeft}},
		{"wasd", []ebiten.Key{ebiten.KeyW}, []core.Action{core.ActionUp}},
		{"escape", []ebiten.Key{ebiten.KeyEscape}, []core.Action{core.ActionQuit}},
		{"restart and spawn", []ebiten.Key{ebiten.KeyR, ebiten.KeyK}, []core.Action{core.ActionRestart, core.ActionSpawn}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := pollInput(pressed(tc.keys...))
			assert.Len(t, frame.Actions, len(tc.want))
			for _, a := range tc.want {
				assert.True(t, frame.Has(a), "missing %s", a)
			}
		})
	}
}

func TestBindingsCoverEveryAction(t *testing.T) {
	seen := make(map[core.Action]bool)
	for _, b := range bindings {
		seen[b.action] = true
	}
	for _, a := range []core.Action{
		core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionRestart, core.ActionSpawn, core.ActionQuit,
	} {
		assert.True(t, seen[a], "no key for %s", a)
	}
}
