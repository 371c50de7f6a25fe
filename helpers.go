package bezier

import (
	"gonum.org/v1/gonum/floats"
)

// crossProduct returns the 2D scalar cross product of (ux,uy) and (vx,vy):
// ux*vy - uy*vx. Positive when v is counter-clockwise from u.
func crossProduct(ux, uy, vx, vy float64) float64 {
	return ux*vy - uy*vx
}

// bbox returns the axis-aligned bounding box of a 2D node set, scanning
// the x and y columns independently.
func bbox(nodes Nodes) (xmin, xmax, ymin, ymax float64) {
	xs := make([]float64, len(nodes))
	ys := make([]float64, len(nodes))
	for i, p := range nodes {
		xs[i] = p[0]
		ys[i] = p[1]
	}

	return floats.Min(xs), floats.Max(xs), floats.Min(ys), floats.Max(ys)
}

// wiggleInterval snaps x into [0,1], tolerating values within wiggleSlack
// of either end. Values further outside the interval are rejected (ok=false).
func wiggleInterval(x float64) (y float64, ok bool) {
	if x < -wiggleSlack || x > 1+wiggleSlack {
		return 0, false
	}
	if x < 0 {
		return 0, true
	}
	if x > 1 {
		return 1, true
	}

	return x, true
}

// containsND reports whether point lies inside the axis-aligned bounding
// box of nodes in every coordinate. It is a conservative over-approximation
// of the curve's convex hull: it may accept points the curve never reaches,
// but never rejects one the curve does.
func containsND(nodes Nodes, point []float64) bool {
	d := nodes.Dimension()
	col := make([]float64, len(nodes))
	for k := 0; k < d; k++ {
		for i, p := range nodes {
			col[i] = p[k]
		}
		lo, hi := floats.Min(col), floats.Max(col)
		if point[k] < lo || point[k] > hi {
			return false
		}
	}

	return true
}

// euclideanNorm is a small convenience wrapper kept local to this package so
// call sites read as plain geometry rather than a gonum import; it simply
// forwards to floats.Norm(v, 2).
func euclideanNorm(v []float64) float64 {
	return floats.Norm(v, 2)
}
