package face

import "math"

// Point is a position in surface units.
type Point struct {
	X, Y float64
}

// Affine is a 2D affine transform stored as the coefficients
// [a b c d e f] of
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type Affine [6]float64

// Identity leaves points unchanged.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Translate moves points by (dx, dy).
func Translate(dx, dy float64) Affine {
	return Affine{1, 0, 0, 1, dx, dy}
}

// Scale stretches points uniformly about the origin.
func Scale(s float64) Affine {
	return Affine{s, 0, 0, s, 0, 0}
}

// Rotate turns points by theta radians. With y pointing down, a positive
// angle turns clockwise, so 0 is twelve o'clock for a vector pointing up.
func Rotate(theta float64) Affine {
	s, c := math.Sincos(theta)
	return Affine{c, s, -s, c, 0, 0}
}

// Mul composes two transforms: the result applies o first, then a.
func (a Affine) Mul(o Affine) Affine {
	return Affine{
		a[0]*o[0] + a[2]*o[1],
		a[1]*o[0] + a[3]*o[1],
		a[0]*o[2] + a[2]*o[3],
		a[1]*o[2] + a[3]*o[3],
		a[0]*o[4] + a[2]*o[5] + a[4],
		a[1]*o[4] + a[3]*o[5] + a[5],
	}
}

// Apply transforms p.
func (a Affine) Apply(p Point) Point {
	return Point{
		X: a[0]*p.X + a[2]*p.Y + a[4],
		Y: a[1]*p.X + a[3]*p.Y + a[5],
	}
}

// Rect is an axis-aligned rectangle with X0 <= X1 and Y0 <= Y1.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// RectFromPoints normalizes two opposite corners into a Rect.
func RectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X0: math.Min(p0.X, p1.X),
		Y0: math.Min(p0.Y, p1.Y),
		X1: math.Max(p0.X, p1.X),
		Y1: math.Max(p0.Y, p1.Y),
	}
}

// Corners lists the corners clockwise from the top-left.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.X0, r.Y0},
		{r.X1, r.Y0},
		{r.X1, r.Y1},
		{r.X0, r.Y1},
	}
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }
