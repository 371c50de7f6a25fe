package bezier

import "gonum.org/v1/gonum/floats"

// Flatten recursively subdivides nodes until every leaf segment's maximum
// chord deviation is within tolerance, then returns the endpoints of those
// leaves as a polyline approximation of the curve (first point is
// nodes[0], last is nodes[N-1]).
//
// Grounded on the same flatness test used by rendering pipelines that walk
// a Bezier outline into line segments for rasterization.
// Complexity: O(leaves * N) time, where leaves depends on tolerance;
// O(leaves) extra space for the output polyline.
func Flatten(nodes Nodes, tolerance float64) [][]float64 {
	var out [][]float64
	flatten(nodes, tolerance, &out)
	out = append(out, nodes[len(nodes)-1])

	return out
}

func flatten(nodes Nodes, tolerance float64, out *[][]float64) {
	if deviation(nodes) <= tolerance {
		*out = append(*out, nodes[0])
		return
	}

	left, right := Subdivide(nodes)
	flatten(left, tolerance, out)
	flatten(right, tolerance, out)
}

// deviation returns the maximum distance from any interior control point
// to the chord between the curve's endpoints, zero for N<3 (a single
// segment has no interior points to deviate).
// Complexity: O(N*D) time, O(D) extra space.
func deviation(nodes Nodes) float64 {
	if len(nodes) < 3 {
		return 0
	}

	start, end := nodes[0], nodes[len(nodes)-1]
	chord := subtract(end, start)
	chordLen := euclideanNorm(chord)

	max := 0.0
	for _, p := range nodes[1 : len(nodes)-1] {
		rel := subtract(p, start)
		var d float64
		if chordLen == 0 {
			d = euclideanNorm(rel)
		} else {
			proj := floats.Dot(rel, chord) / chordLen
			along := append([]float64(nil), chord...)
			floats.Scale(proj/chordLen, along)
			d = euclideanNorm(subtract(rel, along))
		}
		if d > max {
			max = d
		}
	}

	return max
}
