package dataset

import (
	"strconv"
)

// Point is one (x,y) sample. A nil coordinate is absent, which is a valid state.
type Point struct {
	X *float64
	Y *float64
}

func Float64(v float64) *float64 {
	return &v
}

// NewPoint copies the pointed-to values, so later writes through x or y do not
// reach the point.
func NewPoint(x, y *float64) Point {
	return Point{
		X: cloneFloat(x),
		Y: cloneFloat(y),
	}
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}

	return Float64(*v)
}

func coordinateEquals(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}

// Equals compares per coordinate: both absent, or both present and equal.
func (p Point) Equals(o Point) bool {
	return coordinateEquals(p.X, o.X) && coordinateEquals(p.Y, o.Y)
}

// Compare orders by X only. An absent X sorts below any present one.
func (p Point) Compare(o Point) int {
	switch {
	case p.X == nil && o.X == nil:
		return 0
	case p.X == nil:
		return -1
	case o.X == nil:
		return 1
	case *p.X > *o.X:
		return 1
	case *p.X < *o.X:
		return -1
	}

	return 0
}

func (p *Point) Swap() {
	p.X, p.Y = p.Y, p.X
}

func (p Point) String() string {
	return "(" + formatCoordinate(p.X) + "," + formatCoordinate(p.Y) + ")"
}

func formatCoordinate(v *float64) string {
	if v == nil {
		return "nil"
	}

	return formatFloat(*v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
