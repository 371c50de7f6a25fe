package bezier_test

import (
	"testing"

	"github.com/kestrelmath/bezier"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateMulti_Endpoints(t *testing.T) {
	nodes := bezier.Nodes{{0, 0}, {1, 2}, {3, -1}}
	pts := bezier.EvaluateMulti(nodes, []float64{0, 1})

	assert.InDeltaSlice(t, nodes[0], pts[0], 1e-12, "s=0 must return the first control point")
	assert.InDeltaSlice(t, nodes[2], pts[1], 1e-12, "s=1 must return the last control point")
}

func TestEvaluateMulti_LinearMidpoint(t *testing.T) {
	nodes := bezier.Nodes{{0, 0}, {2, 4}}
	pts := bezier.EvaluateMulti(nodes, []float64{0.5})

	assert.InDeltaSlice(t, []float64{1, 2}, pts[0], 1e-12)
}

func TestEvaluateMulti_QuadraticMidpoint(t *testing.T) {
	// Scenario from the kernel's worked examples: a symmetric quadratic
	// peak evaluated at its midpoint.
	nodes := bezier.Nodes{{0, 0}, {0.5, 1}, {1, 0}}
	pts := bezier.EvaluateMulti(nodes, []float64{0.5})

	assert.InDeltaSlice(t, []float64{0.5, 0.5}, pts[0], 1e-12)
}

func TestEvaluateCurveBarycentric_MatchesEvaluateMulti(t *testing.T) {
	nodes := bezier.Nodes{{0, 0}, {1, 3}, {2, 1}, {4, 4}}
	s := []float64{0.1, 0.25, 0.77}

	lambda1 := make([]float64, len(s))
	lambda2 := make([]float64, len(s))
	for i, sv := range s {
		lambda1[i] = 1 - sv
		lambda2[i] = sv
	}

	viaBary := bezier.EvaluateCurveBarycentric(nodes, lambda1, lambda2)
	viaMulti := bezier.EvaluateMulti(nodes, s)

	for i := range s {
		assert.InDeltaSlice(t, viaMulti[i], viaBary[i], 1e-12)
	}
}

func TestEvaluateMulti_ThreeDimensional(t *testing.T) {
	nodes := bezier.Nodes{{0, 0, 0}, {1, 1, 1}, {2, 0, 2}}
	pts := bezier.EvaluateMulti(nodes, []float64{0.5})

	assert.Len(t, pts[0], 3)
	assert.InDeltaSlice(t, []float64{1, 0.5, 1}, pts[0], 1e-12)
}
