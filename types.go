package bezier

// Nodes is the sole persistent entity: a 2-D array of control points for a
// single curve, indexed [i, d] where i in [0, N-1] is the node index and
// d in [0, D-1] is the spatial dimension. N = degree + 1.
//
// The layout convention (row = node) is part of the contract: Nodes[i] is
// the i'th control point, Nodes[i][d] its d'th coordinate. Nodes[0] is the
// curve's start, Nodes[N-1] its end; no other ordering is assumed, and
// coincident or collinear controls are legal.
//
// Nodes is caller-owned and read-only to every routine in this package;
// outputs are freshly allocated buffers sized by the operation.
type Nodes [][]float64

// N reports the number of control points.
func (n Nodes) N() int {
	return len(n)
}

// Degree reports the polynomial degree (N-1).
func (n Nodes) Degree() int {
	return len(n) - 1
}

// Dimension reports the spatial dimension D, or 0 for an empty buffer.
func (n Nodes) Dimension() int {
	if len(n) == 0 {
		return 0
	}

	return len(n[0])
}

// clone returns a deep copy of n.
func (n Nodes) clone() Nodes {
	out := make(Nodes, len(n))
	for i, p := range n {
		out[i] = append([]float64(nil), p...)
	}

	return out
}

// candidate is a transient entity used only inside the locator: the
// Bernstein form of a curve restricted to the local parameter range
// [start, end] of the original, unrestricted curve. start < end always.
type candidate struct {
	start, end float64
	nodes      Nodes
}

// Numeric constants fixed by the kernel's contract. These are not meant to
// be tuned independently of the tests that pin their values (see DESIGN.md,
// "Open Question decisions").
const (
	// MaxLocateSubdivisions bounds locator work: 2^20 leaves worst case.
	MaxLocateSubdivisions = 20

	// LocateStdCap = 2^-20. Surviving candidate endpoints with a larger
	// standard deviation than this are judged to straddle disjoint
	// parameter regions (LocateInvalid).
	LocateStdCap = 1.0 / 1048576

	// SqrtPrec = 2^-26, the shared absolute/relative tolerance for both
	// the quadrature in ComputeLength and the ReduceThreshold below.
	SqrtPrec = 1.0 / 67108864

	// ReduceThreshold is the Frobenius relative-error ceiling a degree
	// reduction must satisfy to be judged reducible.
	ReduceThreshold = SqrtPrec

	// LocateMiss indicates no candidate ever contained the query point:
	// the curve does not pass near it.
	LocateMiss = -1.0

	// LocateInvalid indicates the surviving candidates straddle disjoint
	// parameter regions (the query point sits on a self-intersection);
	// the locator cannot resolve a single parameter.
	LocateInvalid = -2.0

	// wiggleSlack is the tolerance wiggleInterval snaps values into
	// [0,1] across, ~2^-44.
	wiggleSlack = 1.0 / (1 << 44)
)

// ReduceStatus is the tri-state result of CanReduce.
type ReduceStatus int

const (
	// ReduceNotReducible means the curve does not lie in the lower
	// degree's subspace within ReduceThreshold.
	ReduceNotReducible ReduceStatus = 0
	// ReduceOK means the curve can be losslessly (within tolerance)
	// re-expressed one degree lower.
	ReduceOK ReduceStatus = 1
	// ReduceNotImplemented means N falls outside the closed-form table
	// (N > 5).
	ReduceNotImplemented ReduceStatus = -1
)
