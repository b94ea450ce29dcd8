package tetris

// RotateClockwise turns p a quarter clockwise in place. On collision the
// previous shape is restored unchanged and false is returned. The anchor is
// never adjusted: there is no wall kick.
func RotateClockwise(b *Board, p *Piece) bool {
	return rotate(b, p, p.Shape.Clockwise())
}

// RotateCounterClockwise is the inverse of RotateClockwise with the same
// commit-or-restore contract.
func RotateCounterClockwise(b *Board, p *Piece) bool {
	return rotate(b, p, p.Shape.CounterClockwise())
}

func rotate(b *Board, p *Piece, candidate Shape) bool {
	previous := p.Shape
	p.Shape = candidate
	if Collide(b, *p) {
		p.Shape = previous
		return false
	}
	return true
}
