package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying GameStateType = "playing"
	StateStuck   GameStateType = "stuck"
	StateQuit    GameStateType = "quit"
)

// Snapshot captures the logical game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Seed    int64
	Moves   int
	Board   Grid
	Tiles   int
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.quit:
		state = StateQuit
	case g.stuck:
		state = StateStuck
	}

	return Snapshot{
		Tick:    g.tick,
		Seed:    g.seed,
		Moves:   g.moves,
		Board:   g.board.Grid(),
		Tiles:   g.board.Len(),
		MaxTile: g.board.MaxTile(),
		State:   state,
	}
}
