package tetris

import (
	"context"
	"errors"
	"time"
)

var ErrLoopStopped = errors.New("tetris: loop stopped")

const CommandChanSize = 64

type command struct {
	fn   func(*Game)
	done chan struct{}
}

// Loop drives a Game from one goroutine. Ticks come from a one-shot timer
// that is re-armed after each tick completes, and every caller mutation is
// funnelled through Do, so the game only ever has a single writer.
type Loop struct {
	game   *Game
	cmdCh  chan command
	stopCh chan struct{}
}

func NewLoop(game *Game) *Loop {
	return &Loop{
		game:   game,
		cmdCh:  make(chan command, CommandChanSize),
		stopCh: make(chan struct{}),
	}
}

// Run blocks until ctx is cancelled or the game ends. It returns nil on game
// over and ctx.Err() on cancellation.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.stopCh)

	timer := time.NewTimer(l.game.DropInterval())
	defer timer.Stop()
	armed := true

	for {
		if l.game.IsGameOver() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			armed = false
			l.game.Tick()
		case cmd := <-l.cmdCh:
			cmd.fn(l.game)
			close(cmd.done)
		}
		// A paused game keeps the timer idle; un-pausing re-arms it here.
		if !armed && l.game.State() == Running {
			timer.Reset(l.game.DropInterval())
			armed = true
		}
		if armed && l.game.State() != Running {
			timer.Stop()
			armed = false
		}
	}
}

// Do runs fn on the loop goroutine and waits for it to finish.
func (l *Loop) Do(ctx context.Context, fn func(*Game)) error {
	cmd := command{fn: fn, done: make(chan struct{})}
	select {
	case l.cmdCh <- cmd:
	case <-l.stopCh:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-cmd.done:
		return nil
	case <-l.stopCh:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}
