package bezier

// Subdivide splits nodes at s=1/2, returning the two Bernstein forms of the
// resulting halves. left[N-1] == right[0] by construction: both equal the
// point B(1/2).
//
// Degrees 1-3 use closed forms; degree >= 4 falls back to the general
// de Casteljau triangle, which is the same computation the closed forms
// shortcut (each closed form is that triangle unrolled for its fixed N).
// Complexity: O(N) time for N in {2,3,4}, O(N²) time for the general path,
// O(N) extra space throughout.
func Subdivide(nodes Nodes) (left, right Nodes) {
	switch len(nodes) {
	case 2:
		return subdivide2(nodes)
	case 3:
		return subdivide3(nodes)
	case 4:
		return subdivide4(nodes)
	default:
		return subdivideGeneral(nodes)
	}
}

func midpoint(d int, a, b []float64) []float64 {
	m := make([]float64, d)
	for c := 0; c < d; c++ {
		m[c] = 0.5 * (a[c] + b[c])
	}

	return m
}

// subdivide2 handles the linear (degree 1) case.
func subdivide2(nodes Nodes) (left, right Nodes) {
	d := nodes.Dimension()
	mid := midpoint(d, nodes[0], nodes[1])

	left = Nodes{append([]float64(nil), nodes[0]...), mid}
	right = Nodes{mid, append([]float64(nil), nodes[1]...)}

	return left, right
}

// subdivide3 handles the quadratic (degree 2) case.
func subdivide3(nodes Nodes) (left, right Nodes) {
	// Stage 1: unpack the fixed three control points.
	d := nodes.Dimension()
	p0, p1, p2 := nodes[0], nodes[1], nodes[2]

	// Stage 2: one Pascal-triangle pass down to the shared midpoint.
	q1 := midpoint(d, p0, p1)
	q2mid := midpoint(d, p1, p2)
	q2 := midpoint(d, q1, q2mid)

	// Stage 3: assemble both halves around the shared point q2.
	left = Nodes{append([]float64(nil), p0...), q1, q2}
	right = Nodes{q2, q2mid, append([]float64(nil), p2...)}

	return left, right
}

// subdivide4 handles the cubic (degree 3) case.
func subdivide4(nodes Nodes) (left, right Nodes) {
	// Stage 1: unpack the fixed four control points.
	d := nodes.Dimension()
	p0, p1, p2, p3 := nodes[0], nodes[1], nodes[2], nodes[3]

	// Stage 2: two Pascal-triangle passes down to the shared midpoint.
	a := midpoint(d, p0, p1)
	b := midpoint(d, p1, p2)
	c := midpoint(d, p2, p3)
	e := midpoint(d, a, b)
	f := midpoint(d, b, c)
	g := midpoint(d, e, f)

	// Stage 3: assemble both halves around the shared point g.
	left = Nodes{append([]float64(nil), p0...), a, e, g}
	right = Nodes{g, f, c, append([]float64(nil), p3...)}

	return left, right
}

// subdivideGeneral implements the Pascal-triangle halving rule for
// arbitrary N >= 5: each pass halves adjacent pairs of the working
// triangle (row <- 0.5*(row + reverse(row)) restricted to the surviving
// prefix/suffix), and after k passes the leading entry is left_nodes[k]
// while the trailing entry is right_nodes[N-1-k].
func subdivideGeneral(nodes Nodes) (left, right Nodes) {
	// Stage 1: start the working triangle as a clone of nodes, and seed
	// the fixed left/right endpoints.
	n := len(nodes)
	d := nodes.Dimension()

	tri := nodes.clone()
	left = make(Nodes, n)
	right = make(Nodes, n)
	left[0] = append([]float64(nil), tri[0]...)
	right[n-1] = append([]float64(nil), tri[n-1]...)

	// Stage 2: for each pass k, halve the triangle's surviving prefix in
	// place and record its new leading/trailing entries.
	for k := 1; k < n; k++ {
		for i := 0; i < n-k; i++ {
			tri[i] = midpoint(d, tri[i], tri[i+1])
		}
		left[k] = append([]float64(nil), tri[0]...)
		right[n-1-k] = append([]float64(nil), tri[n-1-k]...)
	}

	return left, right
}
