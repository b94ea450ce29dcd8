package tetris

import (
	"math/rand"
	"time"
)

const (
	SpawnX = 3
	SpawnY = 0
)

// Piece is the active falling piece. X and Y anchor the shape's top-left
// cell in board coordinates.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color Color
	X     int
	Y     int
}

// NewPiece builds a piece of kind at the spawn anchor with its own shape copy.
func NewPiece(kind Kind) Piece {
	def := Lookup(kind)
	return Piece{
		Kind:  kind,
		Shape: def.Shape(),
		Color: def.Color,
		X:     SpawnX,
		Y:     SpawnY,
	}
}

func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// each calls fn with the absolute board coordinates of every filled cell.
func (p Piece) each(fn func(x, y int)) {
	for dy, row := range p.Shape {
		for dx, filled := range row {
			if filled {
				fn(p.X+dx, p.Y+dy)
			}
		}
	}
}

// Source picks the kind of the next piece to spawn.
type Source interface {
	Next() Kind
}

// RandomSource samples the catalog uniformly.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource seeds from the clock when seed is zero.
func NewRandomSource(seed int64) *RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomSource) Next() Kind {
	return Kind(s.rng.Intn(KindCount))
}

// SequenceSource replays kinds in order and wraps around. Useful for
// deterministic games and tests.
type SequenceSource struct {
	kinds []Kind
	pos   int
}

func NewSequenceSource(kinds ...Kind) *SequenceSource {
	if len(kinds) == 0 {
		kinds = []Kind{KindI}
	}
	return &SequenceSource{kinds: kinds}
}

func (s *SequenceSource) Next() Kind {
	kind := s.kinds[s.pos%len(s.kinds)]
	s.pos++
	return kind
}
