package gamemath

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Overlaps reports whether two axis-aligned boxes, each centered on its
// position, intersect. Touching edges do not count.
func Overlaps(posA, sizeA, posB, sizeB dmath.Vec2) bool {
	halfAX, halfAY := sizeA.X/2, sizeA.Y/2
	halfBX, halfBY := sizeB.X/2, sizeB.Y/2
	return posA.X-halfAX < posB.X+halfBX &&
		posA.X+halfAX > posB.X-halfBX &&
		posA.Y-halfAY < posB.Y+halfBY &&
		posA.Y+halfAY > posB.Y-halfBY
}

// ClampToArena keeps a box of the given size fully inside an arena centered
// on the origin with half extents (halfW, halfH).
func ClampToArena(pos, size dmath.Vec2, halfW, halfH float64) dmath.Vec2 {
	limitX := halfW - size.X/2
	limitY := halfH - size.Y/2
	return dmath.Vec2{
		X: ClampSpeed(pos.X, max(limitX, 0)),
		Y: ClampSpeed(pos.Y, max(limitY, 0)),
	}
}

// InArena reports whether pos lies inside the arena bounds.
func InArena(pos dmath.Vec2, halfW, halfH float64) bool {
	return pos.X >= -halfW && pos.X <= halfW && pos.Y >= -halfH && pos.Y <= halfH
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Decay multiplies v by factor, used for per-tick velocity falloff.
func Decay(v dmath.Vec2, factor float64) dmath.Vec2 {
	return Scale(v, factor)
}
