package tetris

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultDropInterval = 500 * time.Millisecond
	DefaultLineReward   = 10
)

var ErrInvalidOptions = errors.New("tetris: invalid options")

type Options struct {
	Rows         int
	Columns      int
	DropInterval time.Duration
	// LineReward is added to the score for every cleared row.
	LineReward int
	// InputWhilePaused lets moves and rotations apply while paused.
	// Hard drop is never allowed while paused.
	InputWhilePaused bool
	Source           Source
	Listener         Listener
}

func DefaultOptions() Options {
	return Options{
		Rows:         DefaultRows,
		Columns:      DefaultColumns,
		DropInterval: DefaultDropInterval,
		LineReward:   DefaultLineReward,
	}
}

// Validate fills unset fields with defaults and rejects impossible values.
func (o *Options) Validate() error {
	if o.Rows == 0 {
		o.Rows = DefaultRows
	}
	if o.Columns == 0 {
		o.Columns = DefaultColumns
	}
	if o.DropInterval == 0 {
		o.DropInterval = DefaultDropInterval
	}
	if o.LineReward == 0 {
		o.LineReward = DefaultLineReward
	}
	if o.Source == nil {
		o.Source = NewRandomSource(0)
	}
	if o.Listener == nil {
		o.Listener = ListenerFuncs{}
	}
	// The widest catalog shape must fit at the spawn anchor.
	if o.Columns < SpawnX+4 {
		return fmt.Errorf("%w: %d columns, need at least %d", ErrInvalidOptions, o.Columns, SpawnX+4)
	}
	if o.Rows < 4 {
		return fmt.Errorf("%w: %d rows, need at least 4", ErrInvalidOptions, o.Rows)
	}
	if o.DropInterval < 0 {
		return fmt.Errorf("%w: negative drop interval %s", ErrInvalidOptions, o.DropInterval)
	}
	if o.LineReward < 0 {
		return fmt.Errorf("%w: negative line reward %d", ErrInvalidOptions, o.LineReward)
	}
	return nil
}

// Listener receives engine notifications. Calls happen on the goroutine that
// mutated the game.
type Listener interface {
	BoardChanged()
	ScoreChanged(score int)
	GameOver()
}

// ListenerFuncs adapts plain funcs to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnBoardChanged func()
	OnScoreChanged func(score int)
	OnGameOver     func()
}

func (l ListenerFuncs) BoardChanged() {
	if l.OnBoardChanged != nil {
		l.OnBoardChanged()
	}
}

func (l ListenerFuncs) ScoreChanged(score int) {
	if l.OnScoreChanged != nil {
		l.OnScoreChanged(score)
	}
}

func (l ListenerFuncs) GameOver() {
	if l.OnGameOver != nil {
		l.OnGameOver()
	}
}
