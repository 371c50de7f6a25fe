package bezier_test

import (
	"math"
	"testing"

	"github.com/kestrelmath/bezier"
	"github.com/kestrelmath/bezier/quad"
	"github.com/stretchr/testify/assert"
)

func TestComputeLength_LineSegment(t *testing.T) {
	nodes := bezier.Nodes{{0, 0}, {3, 4}}

	length, status := bezier.ComputeLength(nodes)
	assert.Equal(t, quad.StatusConverged, status)
	assert.InDelta(t, 5, length, 1e-12)
}

func TestComputeLength_QuadraticMatchesKnownBound(t *testing.T) {
	// A quadratic arc's length lies strictly between the chord length and
	// the control polygon's length.
	nodes := bezier.Nodes{{0, 0}, {1, 1}, {2, 0}}

	length, status := bezier.ComputeLength(nodes)
	assert.Equal(t, quad.StatusConverged, status)

	chord := math.Hypot(2, 0)
	polygon := math.Hypot(1, 1) * 2
	assert.Greater(t, length, chord)
	assert.Less(t, length, polygon)
}

func TestLengthAt_MonotonicallyIncreasing(t *testing.T) {
	nodes := bezier.Nodes{{0, 0}, {1, 2}, {3, -1}, {4, 3}}

	prev := 0.0
	for _, s := range []float64{0.1, 0.3, 0.5, 0.7, 1.0} {
		length, status := bezier.LengthAt(nodes, s)
		assert.Equal(t, quad.StatusConverged, status)
		assert.Greater(t, length, prev)
		prev = length
	}
}

func TestLengthAt_MatchesFullAtOne(t *testing.T) {
	nodes := bezier.Nodes{{0, 0}, {1, 2}, {3, -1}, {4, 3}}

	full, _ := bezier.ComputeLength(nodes)
	partial, _ := bezier.LengthAt(nodes, 1)

	assert.InDelta(t, full, partial, 1e-9)
}
