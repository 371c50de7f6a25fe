package bezier

import "errors"

// Sentinel errors for Nodes.Validate. These sit outside the three
// channels the rest of this package uses to report trouble (in-band
// sentinels, capability flags, quadrature status codes): they are an
// ambient, caller-opt-in boundary check, never consulted by the numeric
// fast paths themselves, which is why no function in this package other
// than Validate returns one.
//
// Priority when more than one condition holds: ErrEmptyNodes is checked
// first (a shape error makes dimension inspection meaningless), then
// ErrDimensionMismatch.
var (
	// ErrEmptyNodes indicates a Nodes buffer with zero control points, or
	// whose first control point has zero coordinates (D=0).
	ErrEmptyNodes = errors.New("bezier: nodes must have at least one control point")

	// ErrDimensionMismatch indicates the control points do not all share
	// the same spatial dimension.
	ErrDimensionMismatch = errors.New("bezier: all nodes must share the same dimension")
)

// Validate checks n against the data-model invariants (N>=1, D>=1,
// every row the same length) that every operation in this package
// assumes without checking. Callers that accept Nodes from outside the
// process boundary should call this once before use; the algorithms
// themselves never call it, to keep their fast paths branch-free on
// error construction.
func (n Nodes) Validate() error {
	if len(n) == 0 {
		return ErrEmptyNodes
	}

	d := len(n[0])
	if d == 0 {
		return ErrEmptyNodes
	}

	for _, p := range n[1:] {
		if len(p) != d {
			return ErrDimensionMismatch
		}
	}

	return nil
}
