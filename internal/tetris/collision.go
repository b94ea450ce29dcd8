package tetris

// Collide reports whether p's placement is illegal on b: a filled cell past
// the side walls, below the floor, or on a settled block. Cells above row 0
// never collide so a piece may spawn straddling the top edge.
func Collide(b *Board, p Piece) bool {
	hit := false
	p.each(func(x, y int) {
		if hit {
			return
		}
		if x < 0 || x >= b.Columns() || y >= b.Rows() {
			hit = true
			return
		}
		if y < 0 {
			return
		}
		hit = b.IsOccupied(x, y)
	})
	return hit
}
