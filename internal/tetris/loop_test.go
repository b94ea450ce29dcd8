package tetris

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startLoop(t *testing.T, g *Game) (*Loop, context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop(g)
	errCh := make(chan error, 1)
	go func() { errCh <- loop.Run(ctx) }()
	t.Cleanup(cancel)
	return loop, cancel, errCh
}

// pieceY reads the active piece row through the loop; -1 if the loop is gone.
func pieceY(loop *Loop) int {
	y := -1
	_ = loop.Do(context.Background(), func(g *Game) { y = g.ActivePiece().Y })
	return y
}

func TestLoopTicksOnTimer(t *testing.T) {
	opts := DefaultOptions()
	opts.DropInterval = 5 * time.Millisecond
	g := newTestGame(t, opts, KindO)
	loop, _, _ := startLoop(t, g)

	require.Eventually(t, func() bool { return pieceY(loop) >= 3 }, time.Second, time.Millisecond)
}

func TestLoopPauseStopsTicksAndResumeRearms(t *testing.T) {
	opts := DefaultOptions()
	opts.DropInterval = 5 * time.Millisecond
	g := newTestGame(t, opts, KindO)
	loop, _, _ := startLoop(t, g)

	require.NoError(t, loop.Do(context.Background(), func(g *Game) { g.TogglePause() }))
	paused := pieceY(loop)
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, paused, pieceY(loop))

	require.NoError(t, loop.Do(context.Background(), func(g *Game) { g.TogglePause() }))
	require.Eventually(t, func() bool { return pieceY(loop) != paused }, time.Second, time.Millisecond)
}

func TestLoopStopsOnCancel(t *testing.T) {
	g := newTestGame(t, DefaultOptions(), KindO)
	loop, cancel, errCh := startLoop(t, g)

	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
	assert.ErrorIs(t, loop.Do(context.Background(), func(*Game) {}), ErrLoopStopped)
}

func TestLoopReturnsOnGameOver(t *testing.T) {
	opts := DefaultOptions()
	opts.DropInterval = time.Hour
	g := newTestGame(t, opts, KindI)
	fillRow(g.board, 1, "#aaa", 3, 4, 5, 6)
	loop, _, errCh := startLoop(t, g)

	require.NoError(t, loop.Do(context.Background(), func(g *Game) { g.HardDrop() }))

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
	assert.True(t, g.IsGameOver())
}
