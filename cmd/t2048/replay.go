package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var flagReplayVerbose bool

var replayCmd = &cobra.Command{
	Use:   "replay <dir...>",
	Short: "Apply moves headlessly and print the board",
	Long: `Start a game, apply the given moves in order and print the final board.
With the same --seed the result is always the same.

Directions: up, down, left, right (or u, d, l, r).

Examples:
  t2048 replay --seed 7 left up up right
  t2048 replay --seed 7 -v l l u r d`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVarP(&flagReplayVerbose, "verbose", "v", false, "Print the board after every move")
}

func runReplay(cmd *cobra.Command, args []string) error {
	dirs := make([]t2048.Direction, 0, len(args))
	for _, arg := range args {
		dir, err := t2048.ParseDirection(arg)
		if err != nil {
			return err
		}
		dirs = append(dirs, dir)
	}

	cfg, err := loadConfig("")
	if err != nil {
		return err
	}
	logger, cleanup, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer cleanup()

	game := t2048.New(cfg, t2048.WithLogger(logger))
	game.Reset(runtimeConfig(cfg))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed %d\n%s\n", game.Seed(), game.Board())
	for i, dir := range dirs {
		moved := game.Apply(dir)
		if flagReplayVerbose {
			fmt.Fprintf(out, "\n#%d %s moved=%t\n%s\n", i+1, dir, moved, game.Board())
		}
	}

	snap := game.Snapshot()
	if !flagReplayVerbose {
		fmt.Fprintf(out, "\n%s\n", game.Board())
	}
	fmt.Fprintf(out, "moves %d/%d  max %d  tiles %d  state %s\n",
		snap.Moves, len(dirs), snap.MaxTile, snap.Tiles, snap.State)
	return nil
}
