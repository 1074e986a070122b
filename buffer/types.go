package buffer

// Position points into a Document by (column, row). X counts grapheme
// clusters, Y is the row index. Both are 0-based.
type Position struct {
	X int
	Y int
}

// SearchDirection selects which way Find scans.
type SearchDirection uint8

const (
	Forward SearchDirection = iota
	Backward
)

func (d SearchDirection) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

func ComparePosition(a, b Position) int {
	if a.Y < b.Y {
		return -1
	}
	if a.Y > b.Y {
		return 1
	}
	if a.X < b.X {
		return -1
	}
	if a.X > b.X {
		return 1
	}
	return 0
}
