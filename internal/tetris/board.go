package tetris

import "fmt"

const (
	DefaultRows    = 20
	DefaultColumns = 10
)

// Board is the grid of settled cells. Its dimensions never change.
type Board struct {
	rows    int
	columns int
	cells   [][]Color
}

func NewBoard(rows, columns int) *Board {
	b := &Board{rows: rows, columns: columns, cells: make([][]Color, rows)}
	for y := range b.cells {
		b.cells[y] = make([]Color, columns)
	}
	return b
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Columns() int { return b.columns }

// IsOccupied reports whether (x, y) holds a settled block. Coordinates must be
// in range; callers outside the collision path get a panic, not a default.
func (b *Board) IsOccupied(x, y int) bool {
	return b.At(x, y) != Empty
}

func (b *Board) At(x, y int) Color {
	b.mustContain(x, y)
	return b.cells[y][x]
}

func (b *Board) Set(x, y int, color Color) {
	b.mustContain(x, y)
	b.cells[y][x] = color
}

func (b *Board) contains(x, y int) bool {
	return x >= 0 && x < b.columns && y >= 0 && y < b.rows
}

func (b *Board) mustContain(x, y int) {
	if !b.contains(x, y) {
		panic(fmt.Sprintf("tetris: cell (%d,%d) outside %dx%d board", x, y, b.columns, b.rows))
	}
}

// Merge writes the piece color into every filled cell. The placement must
// already be collision free. Cells above row 0 have nowhere to go and are dropped.
func (b *Board) Merge(p Piece) {
	p.each(func(x, y int) {
		if y < 0 {
			return
		}
		b.Set(x, y, p.Color)
	})
}

// ClearFullLines removes every full row in one top-to-bottom pass, inserting
// an empty row at the top for each, and returns the cleared row indices.
func (b *Board) ClearFullLines() []int {
	var cleared []int
	for y := 0; y < b.rows; y++ {
		if !b.rowFull(y) {
			continue
		}
		copy(b.cells[1:y+1], b.cells[:y])
		b.cells[0] = make([]Color, b.columns)
		cleared = append(cleared, y)
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for _, cell := range b.cells[y] {
		if cell == Empty {
			return false
		}
	}
	return true
}

// Cells returns a copy of the grid, rows top to bottom.
func (b *Board) Cells() [][]Color {
	out := make([][]Color, b.rows)
	for y := range b.cells {
		out[y] = append([]Color(nil), b.cells[y]...)
	}
	return out
}

func (b *Board) reset() {
	for y := range b.cells {
		b.cells[y] = make([]Color, b.columns)
	}
}
