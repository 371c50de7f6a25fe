package bezier

import "gonum.org/v1/gonum/floats"

// hodographNodes returns the degree n-1 control points n*(nodes[i+1]-nodes[i])
// of the hodograph (derivative curve) of nodes, which has degree n.
// Complexity: O(N) time, O(N) extra space.
func hodographNodes(nodes Nodes) Nodes {
	n := nodes.Degree()
	d := nodes.Dimension()

	out := make(Nodes, n)
	scale := float64(n)
	for i := 0; i < n; i++ {
		row := make([]float64, d)
		for c := 0; c < d; c++ {
			row[c] = scale * (nodes[i+1][c] - nodes[i][c])
		}
		out[i] = row
	}

	return out
}

// EvaluateHodograph evaluates B'(s), the tangent vector at parameter s.
// Complexity: O(N) time, O(D) extra space.
func EvaluateHodograph(nodes Nodes, s float64) []float64 {
	if nodes.Degree() == 0 {
		return make([]float64, nodes.Dimension())
	}

	return EvaluateMulti(hodographNodes(nodes), []float64{s})[0]
}

// GetCurvature returns the signed curvature kappa at parameter s along with
// the tangent vector (B'(s)), per the 2D convention kappa =
// cross(T,C)/||T||^3 where C is the (scaled) second-difference evaluation.
// For N=2 (a line segment) curvature is unconditionally zero.
// Complexity: O(N) time, O(N) extra space.
func GetCurvature(nodes Nodes, s float64) (kappa float64, tangent []float64) {
	// Stage 1: tangent and an early-out for degree < 2, which has no
	// second difference to form.
	tangent = EvaluateHodograph(nodes, s)

	n := nodes.Degree()
	if n < 2 {
		return 0, tangent
	}

	// Stage 2: build the scaled second-difference control polygon and
	// evaluate it at s to get the acceleration vector.
	d := nodes.Dimension()
	second := make(Nodes, n-1)
	for i := 0; i < n-1; i++ {
		row := make([]float64, d)
		for c := 0; c < d; c++ {
			row[c] = nodes[i+2][c] - 2*nodes[i+1][c] + nodes[i][c]
		}
		second[i] = row
	}

	accel := EvaluateMulti(second, []float64{s})[0]
	floats.Scale(float64(n)*float64(n-1), accel)

	// Stage 3: combine tangent and acceleration into signed curvature.
	normT := euclideanNorm(tangent)
	if normT == 0 {
		return 0, tangent
	}
	kappa = crossProduct(tangent[0], tangent[1], accel[0], accel[1]) / (normT * normT * normT)

	return kappa, tangent
}
