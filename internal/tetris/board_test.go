package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b *Board, y int, color Color, columns ...int) {
	if len(columns) == 0 {
		for x := 0; x < b.Columns(); x++ {
			b.Set(x, y, color)
		}
		return
	}
	for _, x := range columns {
		b.Set(x, y, color)
	}
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultColumns)
	require.Equal(t, 20, b.Rows())
	require.Equal(t, 10, b.Columns())
	for y, row := range b.Cells() {
		require.Len(t, row, 10)
		for x := range row {
			assert.False(t, b.IsOccupied(x, y))
		}
	}
}

func TestBoardOutOfRangePanics(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultColumns)
	assert.Panics(t, func() { b.IsOccupied(-1, 0) })
	assert.Panics(t, func() { b.IsOccupied(10, 0) })
	assert.Panics(t, func() { b.IsOccupied(0, -1) })
	assert.Panics(t, func() { b.IsOccupied(0, 20) })
	assert.Panics(t, func() { b.Set(0, 20, "#fff") })
}

func TestMergeWritesPieceColor(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultColumns)
	p := NewPiece(KindI)
	b.Merge(p)

	for x := 0; x < b.Columns(); x++ {
		if x >= 3 && x <= 6 {
			assert.Equal(t, Lookup(KindI).Color, b.At(x, 0), "column %d", x)
		} else {
			assert.Equal(t, Empty, b.At(x, 0), "column %d", x)
		}
	}
	assert.Empty(t, b.ClearFullLines())
}

func TestMergeSkipsCellsAboveBoard(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultColumns)
	p := NewPiece(KindO)
	p.Y = -1
	require.NotPanics(t, func() { b.Merge(p) })
	assert.True(t, b.IsOccupied(3, 0))
	assert.True(t, b.IsOccupied(4, 0))
}

func TestClearFullLinesSingleRow(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultColumns)
	fillRow(b, 19, "#aaa")
	b.Set(2, 18, "#bbb")
	b.Set(5, 0, "#ccc")

	cleared := b.ClearFullLines()

	assert.Equal(t, []int{19}, cleared)
	assert.Len(t, b.Cells(), 20)
	assert.Equal(t, Color("#bbb"), b.At(2, 19))
	assert.Equal(t, Color("#ccc"), b.At(5, 1))
	for x := 0; x < b.Columns(); x++ {
		assert.False(t, b.IsOccupied(x, 0))
	}
}

func TestClearFullLinesMultipleRows(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultColumns)
	fillRow(b, 17, "#aaa")
	b.Set(0, 18, "#bbb")
	fillRow(b, 19, "#aaa")

	cleared := b.ClearFullLines()

	assert.Equal(t, []int{17, 19}, cleared)
	assert.Equal(t, Color("#bbb"), b.At(0, 19))
	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Columns(); x++ {
			if x == 0 && y == 19 {
				continue
			}
			assert.False(t, b.IsOccupied(x, y), "cell (%d,%d)", x, y)
		}
	}
}

func TestClearFullLinesAdjacentRows(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultColumns)
	b.Set(4, 16, "#ddd")
	fillRow(b, 17, "#aaa")
	fillRow(b, 18, "#aaa")
	fillRow(b, 19, "#aaa")

	assert.Equal(t, []int{17, 18, 19}, b.ClearFullLines())
	assert.Equal(t, Color("#ddd"), b.At(4, 19))
}

func TestCellsReturnsCopy(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultColumns)
	cells := b.Cells()
	cells[0][0] = "#fff"
	assert.False(t, b.IsOccupied(0, 0))
}
