package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey("w"), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runeKey("s"), core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey("a"), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey("d"), core.ActionRight},
		{"restart", runeKey("r"), core.ActionRestart},
		{"debug spawn", runeKey("k"), core.ActionSpawn},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("z"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, km.MapKey(tc.msg))
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())
	frame := core.NewInputFrame()

	assert.False(t, km.MapKeyToFrame(runeKey("a"), &frame))
	assert.False(t, km.MapKeyToFrame(runeKey("z"), &frame))
	assert.True(t, frame.Has(core.ActionLeft))
	assert.Len(t, frame.Actions, 1)

	assert.True(t, km.MapKeyToFrame(runeKey("q"), &frame))
	assert.True(t, frame.Has(core.ActionQuit))
}

func TestHelpKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())
	assert.True(t, km.IsHelp(runeKey("?")))
	assert.False(t, km.IsHelp(runeKey("r")))

	keys := km.Keys()
	assert.Len(t, keys.ShortHelp(), 7)
	assert.Len(t, keys.FullHelp(), 3)
}

func TestFrameDelta(t *testing.T) {
	now := time.Now()

	assert.InDelta(t, 1.0/60, frameDelta(time.Time{}, now, 60), 1e-12)
	assert.InDelta(t, 0.016, frameDelta(now, now.Add(16*time.Millisecond), 60), 1e-9)
	assert.Equal(t, maxFrameDelta, frameDelta(now, now.Add(2*time.Second), 60))
	assert.Equal(t, 0.0, frameDelta(now, now.Add(-time.Second), 60))
}
