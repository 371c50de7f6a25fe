package bezier_test

import (
	"testing"

	"github.com/kestrelmath/bezier"
	"github.com/stretchr/testify/assert"
)

func TestSubdivide_QuadraticWorkedExample(t *testing.T) {
	nodes := bezier.Nodes{{0, 0}, {0.5, 1}, {1, 0}}
	left, right := bezier.Subdivide(nodes)

	assert.InDeltaSlice(t, []float64{0, 0}, left[0], 1e-12)
	assert.InDeltaSlice(t, []float64{0.25, 0.5}, left[1], 1e-12)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, left[2], 1e-12)

	assert.InDeltaSlice(t, []float64{0.5, 0.5}, right[0], 1e-12)
	assert.InDeltaSlice(t, []float64{0.75, 0.5}, right[1], 1e-12)
	assert.InDeltaSlice(t, []float64{1, 0}, right[2], 1e-12)
}

func TestSubdivide_JoinsAtMidpoint(t *testing.T) {
	nodes := bezier.Nodes{{0, 0}, {1, 5}, {3, -2}, {4, 1}}
	left, right := bezier.Subdivide(nodes)

	assert.InDeltaSlice(t, left[len(left)-1], right[0], 1e-12, "halves must share the midpoint")

	mid := bezier.EvaluateMulti(nodes, []float64{0.5})[0]
	assert.InDeltaSlice(t, mid, left[len(left)-1], 1e-9, "shared point must equal B(1/2)")
}

func TestSubdivide_CoversOriginalCurve(t *testing.T) {
	nodes := bezier.Nodes{{0, 0}, {1, 2}, {2, -1}, {3, 3}, {5, 0}}
	left, right := bezier.Subdivide(nodes)

	for _, s := range []float64{0.1, 0.3, 0.49} {
		want := bezier.EvaluateMulti(nodes, []float64{s})[0]
		got := bezier.EvaluateMulti(left, []float64{2 * s})[0]
		assert.InDeltaSlice(t, want, got, 1e-9)
	}

	for _, s := range []float64{0.6, 0.8, 0.95} {
		want := bezier.EvaluateMulti(nodes, []float64{s})[0]
		got := bezier.EvaluateMulti(right, []float64{2*s - 1})[0]
		assert.InDeltaSlice(t, want, got, 1e-9)
	}
}

func TestSubdivide_AllDegreesEndpointsMatch(t *testing.T) {
	cases := []bezier.Nodes{
		{{0, 0}, {1, 1}},
		{{0, 0}, {1, 1}, {2, 0}},
		{{0, 0}, {1, 2}, {2, -1}, {3, 0}},
		{{0, 0}, {1, 1}, {2, 2}, {3, 1}, {4, 0}},
		{{0, 0}, {1, 1}, {2, 2}, {3, 1}, {4, 0}, {5, -1}},
	}

	for _, nodes := range cases {
		left, right := bezier.Subdivide(nodes)
		assert.InDeltaSlice(t, nodes[0], left[0], 1e-12)
		assert.InDeltaSlice(t, nodes[len(nodes)-1], right[len(right)-1], 1e-12)
	}
}
