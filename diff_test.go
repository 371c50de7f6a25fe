package bezier_test

import (
	"testing"

	"github.com/kestrelmath/bezier"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateHodograph_Linear(t *testing.T) {
	// A straight line has constant tangent everywhere: n*(p1-p0).
	nodes := bezier.Nodes{{0, 0}, {2, 4}}
	tangent := bezier.EvaluateHodograph(nodes, 0.37)

	assert.InDeltaSlice(t, []float64{2, 4}, tangent, 1e-12)
}

func TestEvaluateHodograph_MatchesFiniteDifference(t *testing.T) {
	nodes := bezier.Nodes{{0, 0}, {1, 3}, {3, -1}, {4, 2}}
	const h = 1e-6

	for _, s := range []float64{0.2, 0.5, 0.8} {
		plus := bezier.EvaluateMulti(nodes, []float64{s + h})[0]
		minus := bezier.EvaluateMulti(nodes, []float64{s - h})[0]
		approx := []float64{
			(plus[0] - minus[0]) / (2 * h),
			(plus[1] - minus[1]) / (2 * h),
		}

		got := bezier.EvaluateHodograph(nodes, s)
		assert.InDeltaSlice(t, approx, got, 1e-3)
	}
}

func TestGetCurvature_LineIsZero(t *testing.T) {
	nodes := bezier.Nodes{{0, 0}, {1, 1}}
	kappa, _ := bezier.GetCurvature(nodes, 0.5)

	assert.Equal(t, 0.0, kappa)
}

func TestGetCurvature_SymmetricArcSignAndTangent(t *testing.T) {
	// An upward-bulging quadratic curves away from its chord; the sign of
	// kappa should be consistent across the whole arc.
	nodes := bezier.Nodes{{0, 0}, {1, 2}, {2, 0}}

	kappaLeft, tangentLeft := bezier.GetCurvature(nodes, 0.25)
	kappaRight, tangentRight := bezier.GetCurvature(nodes, 0.75)

	assert.NotZero(t, kappaLeft)
	assert.Equal(t, kappaLeft > 0, kappaRight > 0, "curvature sign must be consistent along one arc")

	// Mirror-image parameters give mirror-image tangents: B'(s) = (2, 4-8s).
	assert.InDeltaSlice(t, []float64{2, 2}, tangentLeft, 1e-12)
	assert.InDeltaSlice(t, []float64{2, -2}, tangentRight, 1e-12)
}
