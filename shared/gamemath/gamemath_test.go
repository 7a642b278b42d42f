package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestOverlaps_TouchingEdgesDoNotCount(t *testing.T) {
	size := Vec(10, 10)
	assert.False(t, Overlaps(Vec(0, 0), size, Vec(10, 0), size))
	assert.False(t, Overlaps(Vec(0, 0), size, Vec(0, -10), size))
	assert.True(t, Overlaps(Vec(0, 0), size, Vec(9.99, 0), size))
}

func TestOverlaps_DifferentSizes(t *testing.T) {
	assert.True(t, Overlaps(Vec(40, 0), Vec(60, 40), Vec(60, 10), Vec(30, 30)))
	assert.False(t, Overlaps(Vec(40, 0), Vec(60, 40), Vec(40, 40), Vec(30, 30)))
}

func TestNormalize_ZeroVector(t *testing.T) {
	v, ok := Normalize(Vec(0, 0))
	assert.False(t, ok)
	assert.Equal(t, Vec(0, 0), v)
}

func TestNormalize_UnitLength(t *testing.T) {
	v, ok := Normalize(Vec(3, 4))
	assert.True(t, ok)
	assert.InDelta(t, 0.6, v.X, 1e-9)
	assert.InDelta(t, 0.8, v.Y, 1e-9)
}

func TestOrient(t *testing.T) {
	right := Orient(Vec(40, 0), Vec(1, 0))
	assert.InDelta(t, 40, right.X, 1e-9)
	left := Orient(Vec(40, 0), Vec(-1, 0))
	assert.InDelta(t, -40, left.X, 1e-9)
	up := Orient(Vec(30, 0), Vec(0, 2))
	assert.InDelta(t, 0, up.X, 1e-9)
	assert.InDelta(t, 30, up.Y, 1e-9)
	fallback := Orient(Vec(5, 0), Vec(0, 0))
	assert.InDelta(t, 5, fallback.X, 1e-9)
}

func TestClampToArena(t *testing.T) {
	p := ClampToArena(Vec(1000, -1000), Vec(32, 32), 600, 400)
	assert.Equal(t, Vec(584, -384), p)
	assert.Equal(t, Vec(10, 20), ClampToArena(Vec(10, 20), Vec(32, 32), 600, 400))
}

func TestProperty_Overlaps_Symmetric(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		coord := rapid.Float64Range(-500, 500)
		dim := rapid.Float64Range(1, 200)
		a := Vec(coord.Draw(rt, "ax"), coord.Draw(rt, "ay"))
		b := Vec(coord.Draw(rt, "bx"), coord.Draw(rt, "by"))
		sa := Vec(dim.Draw(rt, "saw"), dim.Draw(rt, "sah"))
		sb := Vec(dim.Draw(rt, "sbw"), dim.Draw(rt, "sbh"))
		assert.Equal(rt, Overlaps(a, sa, b, sb), Overlaps(b, sb, a, sa))
	})
}

func TestProperty_Normalize_UnitOrZero(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := Vec(rapid.Float64Range(-1e3, 1e3).Draw(rt, "x"), rapid.Float64Range(-1e3, 1e3).Draw(rt, "y"))
		n, ok := Normalize(v)
		if !ok {
			assert.Equal(rt, Vec(0, 0), n)
			return
		}
		assert.InDelta(rt, 1.0, math.Hypot(n.X, n.Y), 1e-9)
	})
}
