package tetris

// Kind identifies one of the seven catalog shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindZ
	KindS
	KindL
	KindJ
)

// KindCount is the number of catalog shapes.
const KindCount = 7

func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return "?"
	}
	return "IOTZSLJ"[k : k+1]
}

// Color is a settled block's color identifier. The zero value is an empty cell.
type Color string

const Empty Color = ""

// Shape is a row-major matrix of filled cells, top row first.
type Shape [][]bool

// Definition is an immutable catalog entry.
type Definition struct {
	Kind  Kind
	shape Shape
	Color Color
}

// Shape returns a copy of the template so callers can never mutate the catalog.
func (d Definition) Shape() Shape {
	return d.shape.Clone()
}

var catalog = [KindCount]Definition{
	{Kind: KindI, Color: "#00FFFF", shape: parseShape("1111")},
	{Kind: KindO, Color: "#FFFF00", shape: parseShape("11", "11")},
	{Kind: KindT, Color: "#800080", shape: parseShape("010", "111")},
	{Kind: KindZ, Color: "#FF0000", shape: parseShape("110", "011")},
	{Kind: KindS, Color: "#00FF00", shape: parseShape("011", "110")},
	{Kind: KindL, Color: "#FFA500", shape: parseShape("100", "111")},
	{Kind: KindJ, Color: "#0000FF", shape: parseShape("001", "111")},
}

// Lookup returns the catalog entry for kind.
func Lookup(kind Kind) Definition {
	return catalog[kind]
}

// KindOf maps a settled color back to its catalog kind.
func KindOf(color Color) (Kind, bool) {
	for _, def := range catalog {
		if def.Color == color {
			return def.Kind, true
		}
	}
	return 0, false
}

func parseShape(rows ...string) Shape {
	shape := make(Shape, len(rows))
	for y, row := range rows {
		shape[y] = make([]bool, len(row))
		for x, c := range row {
			shape[y][x] = c == '1'
		}
	}
	return shape
}

// Height is the number of rows in the matrix.
func (s Shape) Height() int {
	return len(s)
}

// Width is the length of the first row; shapes are rectangular.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for y := range s {
		out[y] = append([]bool(nil), s[y]...)
	}
	return out
}

func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Clockwise returns a new matrix: transpose, then reverse each row.
func (s Shape) Clockwise() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for i := 0; i < w; i++ {
		out[i] = make([]bool, h)
		for j := 0; j < h; j++ {
			out[i][j] = s[h-1-j][i]
		}
	}
	return out
}

// CounterClockwise returns a new matrix: reverse each row, then transpose.
// It is the exact inverse of Clockwise.
func (s Shape) CounterClockwise() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for i := 0; i < w; i++ {
		out[i] = make([]bool, h)
		for j := 0; j < h; j++ {
			out[i][j] = s[j][w-1-i]
		}
	}
	return out
}
