package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	TickRate int   // Frames per second the frontend drives Step at (default 60)
	Seed     int64 // RNG seed for the session; 0 means derive from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0,
	}
}

// GameState summarises the game for frontends.
type GameState struct {
	Tiles   int  // Tiles currently on the board
	MaxTile int  // Highest tile value
	Moves   int  // Successful moves since the last reset
	Stuck   bool // Board is full and no direction can slide or merge
	Quit    bool // Player asked to leave
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State   GameState
	Moved   bool // A directional move slid or merged at least one tile
	Spawned bool // A tile was added this frame
}
