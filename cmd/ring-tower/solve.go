package main

import (
	"fmt"
	"io"

	"github.com/lixenwraith/ring-tower/config"
	"github.com/lixenwraith/ring-tower/parameter"
	"github.com/lixenwraith/ring-tower/puzzle"
)

// runSolve prints the optimal move list from the start pole to pole A
// Each move is replayed through the drop resolver, so a printed solution is a legal one
func runSolve(w io.Writer, cfg config.Config) error {
	announced := 0
	stage, err := puzzle.NewStage(puzzle.StageConfig{
		RingCount:        cfg.Rings,
		StrictInvariants: true,
	}, nil, puzzle.NotifierFunc(func() { announced++ }), nil)
	if err != nil {
		return err
	}

	reg := stage.Registry()
	moves := puzzle.Solve(cfg.Rings, parameter.StartPole, 0)
	for i, m := range moves {
		r, ok := reg.RingBySize(m.Size)
		if !ok {
			return fmt.Errorf("move %d: no ring of size %d", i+1, m.Size)
		}
		ring := r.ID
		if top, ok := reg.Top(m.From); !ok || top != ring {
			return fmt.Errorf("move %d: ring %d is not on top of pole %d", i+1, m.Size, m.From)
		}

		from, _ := reg.Pole(m.From)
		to, _ := reg.Pole(m.To)
		out := stage.Drop(ring, to.CenterX())
		if !out.Accepted {
			return fmt.Errorf("move %d: ring %d %s -> %s rejected: %s", i+1, m.Size, from.Name, to.Name, out.Reason)
		}
		fmt.Fprintf(w, "%4d. ring %d  %s -> %s\n", i+1, m.Size, from.Name, to.Name)
	}

	if !stage.IsSolved() || announced != 1 {
		return fmt.Errorf("replay ended unsolved after %d moves", stage.Moves())
	}
	fmt.Fprintf(w, "solved in %d moves (minimum %d)\n", stage.Moves(), stage.MinimalMoves())
	return nil
}
