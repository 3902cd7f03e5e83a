// Package desktop runs the game in a 600x600 window with Ebitengine.
package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// binding maps one physical key to an action.
type binding struct {
	key    ebiten.Key
	action core.Action
}

// bindings lists the window key bindings.
var bindings = []binding{
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyK, core.ActionSpawn},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
}

// pollInput builds a frame from the keys justPressed reports for this tick.
func pollInput(justPressed func(ebiten.Key) bool) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range bindings {
		if justPressed(b.key) {
			frame.Set(b.action)
		}
	}
	return frame
}
