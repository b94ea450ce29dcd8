package tetris

import "time"

type State int

const (
	Running State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// LockResult describes what a tick or hard drop did.
type LockResult struct {
	Locked      bool
	ClearedRows []int
	ScoreDelta  int
	GameOver    bool
}

// Game owns the board and the active piece and drives the drop state machine.
// It is not safe for concurrent use; see Loop for a serialized wrapper.
type Game struct {
	opts    Options
	board   *Board
	current Piece
	next    Kind
	score   int
	lines   int
	state   State
}

func NewGame(opts Options) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		opts:  opts,
		board: NewBoard(opts.Rows, opts.Columns),
	}
	g.next = opts.Source.Next()
	g.spawn()
	return g, nil
}

// Restart clears the board and score and starts a new running game.
func (g *Game) Restart() {
	g.board.reset()
	g.score = 0
	g.lines = 0
	g.state = Running
	g.spawn()
	g.opts.Listener.ScoreChanged(g.score)
	g.opts.Listener.BoardChanged()
}

func (g *Game) State() State { return g.state }
func (g *Game) IsGameOver() bool { return g.state == GameOver }
func (g *Game) IsPaused() bool { return g.state == Paused }
func (g *Game) Score() int { return g.score }
func (g *Game) Lines() int { return g.lines }
func (g *Game) Next() Kind { return g.next }
func (g *Game) Rows() int { return g.board.Rows() }
func (g *Game) Columns() int { return g.board.Columns() }
func (g *Game) DropInterval() time.Duration { return g.opts.DropInterval }
func (g *Game) BoardCells() [][]Color { return g.board.Cells() }

// ActivePiece returns a copy of the falling piece.
func (g *Game) ActivePiece() Piece {
	return g.current.Clone()
}

// GhostY is the row the active piece would land on if hard dropped.
func (g *Game) GhostY() int {
	probe := g.current
	for !Collide(g.board, probe) {
		probe.Y++
	}
	return probe.Y - 1
}

// TogglePause flips Running and Paused. It has no effect after game over.
// The host must re-arm its tick timer when this returns Running.
func (g *Game) TogglePause() State {
	switch g.state {
	case Running:
		g.state = Paused
	case Paused:
		g.state = Running
	}
	return g.state
}

func (g *Game) MoveLeft() bool { return g.shift(-1, 0) }
func (g *Game) MoveRight() bool { return g.shift(1, 0) }

// MoveDown is a soft drop. It never locks the piece, even when resting.
func (g *Game) MoveDown() bool { return g.shift(0, 1) }

func (g *Game) RotateClockwise() bool {
	if !g.acceptsInput() {
		return false
	}
	return g.changed(RotateClockwise(g.board, &g.current))
}

func (g *Game) RotateCounterClockwise() bool {
	if !g.acceptsInput() {
		return false
	}
	return g.changed(RotateCounterClockwise(g.board, &g.current))
}

// Tick advances the piece one row, locking it when it cannot move.
// It is a no-op unless the game is running.
func (g *Game) Tick() LockResult {
	if g.state != Running {
		return LockResult{}
	}
	g.current.Y++
	if !Collide(g.board, g.current) {
		g.opts.Listener.BoardChanged()
		return LockResult{}
	}
	g.current.Y--
	return g.lock()
}

// HardDrop drops the piece to its lowest legal row and locks it at once.
// It is only available while running.
func (g *Game) HardDrop() LockResult {
	if g.state != Running {
		return LockResult{}
	}
	for !Collide(g.board, g.current) {
		g.current.Y++
	}
	g.current.Y--
	return g.lock()
}

func (g *Game) shift(dx, dy int) bool {
	if !g.acceptsInput() {
		return false
	}
	g.current.X += dx
	g.current.Y += dy
	if Collide(g.board, g.current) {
		g.current.X -= dx
		g.current.Y -= dy
		return false
	}
	return g.changed(true)
}

func (g *Game) acceptsInput() bool {
	switch g.state {
	case Running:
		return true
	case Paused:
		return g.opts.InputWhilePaused
	default:
		return false
	}
}

func (g *Game) changed(ok bool) bool {
	if ok {
		g.opts.Listener.BoardChanged()
	}
	return ok
}

func (g *Game) lock() LockResult {
	g.board.Merge(g.current)
	result := LockResult{Locked: true}
	result.ClearedRows = g.board.ClearFullLines()
	if n := len(result.ClearedRows); n > 0 {
		result.ScoreDelta = n * g.opts.LineReward
		g.score += result.ScoreDelta
		g.lines += n
		g.opts.Listener.ScoreChanged(g.score)
	}
	g.spawn()
	result.GameOver = g.state == GameOver
	g.opts.Listener.BoardChanged()
	return result
}

// spawn replaces the active piece. A piece that collides at the spawn anchor
// ends the game; nothing further is written to the board.
func (g *Game) spawn() {
	g.current = NewPiece(g.next)
	g.next = g.opts.Source.Next()
	if Collide(g.board, g.current) {
		g.state = GameOver
		g.opts.Listener.GameOver()
	}
}
