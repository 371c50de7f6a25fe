package bezier

import "gonum.org/v1/gonum/floats"

// EvaluateCurveBarycentric evaluates nodes at each barycentric weight pair
// (lambda1[k], lambda2[k]) simultaneously:
//
//	out[k] = Σ_{i=0..n} C(n,i)·lambda1[k]^(n-i)·lambda2[k]^i·nodes[i]
//
// Callers control lambda1/lambda2 directly; lambda1[k]+lambda2[k]=1 is not
// required.
//
// The inner recurrence accumulates the binomial coefficient and lambda2's
// power incrementally, multiplying the running sum by lambda1 at each step
// rather than forming powers independently:
//
//	acc := nodes[0]
//	for i := 1..n: acc = acc*lambda1 + C(n,i)*lambda2^i*nodes[i]
//
// This is the specific accumulation order the package commits to
// bit-reproducibility for (see doc.go).
// Complexity: O(n*k) time, O(d) extra space per evaluation point.
func EvaluateCurveBarycentric(nodes Nodes, lambda1, lambda2 []float64) [][]float64 {
	// Stage 1: derive the shared shape (degree, dimension, point count).
	n := nodes.Degree()
	d := nodes.Dimension()
	k := len(lambda1)

	// Stage 2: evaluate each (lambda1[idx], lambda2[idx]) pair independently.
	out := make([][]float64, k)
	for idx := 0; idx < k; idx++ {
		out[idx] = evaluateOne(nodes, n, d, lambda1[idx], lambda2[idx])
	}

	return out
}

// EvaluateMulti is the single-parameter specialization lambda1=1-s, lambda2=s.
// Complexity: O(n*k) time, O(k) extra space for the derived weight buffers.
func EvaluateMulti(nodes Nodes, s []float64) [][]float64 {
	k := len(s)
	lambda1 := make([]float64, k)
	lambda2 := make([]float64, k)
	for i, sv := range s {
		lambda1[i] = 1 - sv
		lambda2[i] = sv
	}

	return EvaluateCurveBarycentric(nodes, lambda1, lambda2)
}

// evaluateOne runs the accumulation for a single (lambda1, lambda2) pair.
// Complexity: O(n) time, O(d) space.
func evaluateOne(nodes Nodes, n, d int, lambda1, lambda2 float64) []float64 {
	// 1) Seed the accumulator with the first control point.
	acc := make([]float64, d)
	copy(acc, nodes[0])

	// 2) Sweep the remaining n control points, folding each one in with
	// the incrementally-updated binomial coefficient and lambda2 power.
	binom := 1.0
	lambda2Pow := 1.0
	for i := 1; i <= n; i++ {
		binom = binom * float64(n-i+1) / float64(i)
		lambda2Pow *= lambda2
		coef := binom * lambda2Pow

		floats.Scale(lambda1, acc)
		floats.AddScaled(acc, coef, nodes[i])
	}

	return acc
}
