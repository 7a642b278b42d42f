package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// normalizeEpsilon is the squared length below which a vector is treated as
// zero and has no direction.
const normalizeEpsilon = 1e-12

// Vec returns a vector from components.
func Vec(x, y float64) dmath.Vec2 {
	return dmath.Vec2{X: x, Y: y}
}

func Add(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

func Sub(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

func Scale(v dmath.Vec2, s float64) dmath.Vec2 {
	return dmath.Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the euclidean length of v.
func Length(v dmath.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b dmath.Vec2) float64 {
	return Length(Sub(a, b))
}

// Normalize returns v scaled to unit length. ok is false for a zero vector,
// in which case the zero vector is returned.
func Normalize(v dmath.Vec2) (dmath.Vec2, bool) {
	sq := v.X*v.X + v.Y*v.Y
	if sq < normalizeEpsilon {
		return dmath.Vec2{}, false
	}
	l := math.Sqrt(sq)
	return dmath.Vec2{X: v.X / l, Y: v.Y / l}, true
}

// Direction returns the unit vector pointing from `from` to `to`.
func Direction(from, to dmath.Vec2) (dmath.Vec2, bool) {
	return Normalize(Sub(to, from))
}

// Orient maps a local offset (x forward, y left) into world space for an
// entity facing along facing. A zero facing falls back to +X.
func Orient(offset, facing dmath.Vec2) dmath.Vec2 {
	f, ok := Normalize(facing)
	if !ok {
		f = dmath.Vec2{X: 1}
	}
	return dmath.Vec2{
		X: f.X*offset.X - f.Y*offset.Y,
		Y: f.Y*offset.X + f.X*offset.Y,
	}
}
