package bezier

import "math"

// Elevate re-expresses nodes (degree n, N nodes) losslessly in degree n+1
// (N+1 nodes):
//
//	elevated[0]   = nodes[0]
//	elevated[N]   = nodes[N-1]
//	elevated[i]   = (i*nodes[i-1] + (N-i)*nodes[i]) / N    for 0<i<N
//
// This is exact and unconditional for every N.
// Complexity: O(N) time, O(N) extra space.
func Elevate(nodes Nodes) Nodes {
	// Stage 1: fix the endpoints, which elevation never moves.
	n := len(nodes) // old N
	d := nodes.Dimension()

	out := make(Nodes, n+1)
	out[0] = append([]float64(nil), nodes[0]...)
	out[n] = append([]float64(nil), nodes[n-1]...)

	// Stage 2: blend each interior node from its two neighbors.
	for i := 1; i < n; i++ {
		row := make([]float64, d)
		for c := 0; c < d; c++ {
			row[c] = (float64(i)*nodes[i-1][c] + float64(n-i)*nodes[i][c]) / float64(n)
		}
		out[i] = row
	}

	return out
}

// ReducePseudoInverse reduces nodes (N nodes, degree N-1) to N-1 nodes
// (degree N-2) via the fixed pseudo-inverse table for N in [2,5].
// notImplemented is true, with reduced nil, for any other N.
// Complexity: O(N²) time (matrix-vector multiply against an N-1 by N
// table), O(N) extra space.
func ReducePseudoInverse(nodes Nodes) (reduced Nodes, notImplemented bool) {
	// Stage 1: validate degree is within the closed-form table's range.
	n := len(nodes)
	if n < 2 || n > 5 {
		return nil, true
	}

	// Stage 2: look up the fixed table for this degree and apply it.
	return applyReductionMatrix(reductionMatrix(n), nodes), false
}

// projectionError is the Frobenius relative error ||nodes-projected||/||nodes||,
// or 0 if the numerator is exactly zero (including when nodes is all zero).
// Complexity: O(N*D) time, O(1) extra space.
func projectionError(nodes, projected Nodes) float64 {
	var num, den float64
	for i := range nodes {
		for c := range nodes[i] {
			diff := nodes[i][c] - projected[i][c]
			num += diff * diff
			den += nodes[i][c] * nodes[i][c]
		}
	}
	if num == 0 {
		return 0
	}

	return math.Sqrt(num) / math.Sqrt(den)
}

// CanReduce reports whether nodes can be losslessly re-expressed one degree
// lower within ReduceThreshold, by comparing nodes against the symmetric
// projection (reduce then elevate back) in Frobenius relative error.
//
// N < 2 is never reducible (ReduceNotReducible); N > 5 has no closed-form
// table (ReduceNotImplemented).
// Complexity: O(N²) time, O(N) extra space (dominated by the reduce/elevate
// round trip).
func CanReduce(nodes Nodes) ReduceStatus {
	// Stage 1: handle the degrees with no table lookup to perform.
	n := len(nodes)
	if n < 2 {
		return ReduceNotReducible
	}
	if n > 5 {
		return ReduceNotImplemented
	}

	// Stage 2: reduce then elevate back, and compare against the
	// original control polygon.
	reduced, _ := ReducePseudoInverse(nodes)
	projected := Elevate(reduced)
	if projectionError(nodes, projected) <= ReduceThreshold {
		return ReduceOK
	}

	return ReduceNotReducible
}

// FullReduce iterates CanReduce + ReducePseudoInverse until a step reports
// ReduceNotReducible, at most N-1 times. numReduced is the node count of
// the final (possibly unreduced) result; notImplemented is true if any
// step lacked a closed form.
// Complexity: O(N³) time worst case (up to N-1 reduction steps, each
// O(N²)), O(N) extra space per step.
func FullReduce(nodes Nodes) (numReduced int, result Nodes, notImplemented bool) {
	result = nodes.clone()
	maxIter := len(nodes) - 1

	for i := 0; i < maxIter; i++ {
		switch CanReduce(result) {
		case ReduceNotImplemented:
			return len(result), result, true
		case ReduceNotReducible:
			return len(result), result, false
		}

		reduced, _ := ReducePseudoInverse(result)
		result = reduced
	}

	return len(result), result, false
}
