package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/ring-tower/parameter"
)

// Run pumps terminal events into the loop until quit or ctx is done
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event, parameter.EventChannelSize)
	quit := make(chan struct{})

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		// Closes events once quit is closed or the screen is finalized
		g.screen.ChannelEvents(events, quit)
		return nil
	})
	grp.Go(func() error {
		defer close(quit)
		return g.loop(ctx, events)
	})
	return grp.Wait()
}

func (g *Game) loop(ctx context.Context, events <-chan tcell.Event) error {
	defer g.recoverCrash()

	ticker := time.NewTicker(parameter.FrameInterval(g.cfg.FPS))
	defer ticker.Stop()

	g.Tick()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !g.HandleEvent(ev) {
				g.logger.Info("quit", "session", g.session.ID.String(), "moves", g.session.Stage.Moves())
				return nil
			}

		case <-ticker.C:
			g.Tick()
		}
	}
}
