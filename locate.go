package bezier

import "gonum.org/v1/gonum/stat"

// LocateOptions configures LocatePoint. Defaults match the fixed
// constants in types.go; overriding them is for testing the algorithm's
// sensitivity, not for production tuning (see DESIGN.md, "Open Question
// decisions").
type LocateOptions struct {
	MaxSubdivisions int
	StdCap          float64
}

// DefaultLocateOptions returns the fixed defaults:
// MaxSubdivisions=MaxLocateSubdivisions, StdCap=LocateStdCap.
func DefaultLocateOptions() LocateOptions {
	return LocateOptions{
		MaxSubdivisions: MaxLocateSubdivisions,
		StdCap:          LocateStdCap,
	}
}

// LocateOption mutates a LocateOptions.
type LocateOption func(*LocateOptions)

// WithMaxSubdivisions overrides the locator's subdivision cap.
func WithMaxSubdivisions(n int) LocateOption {
	return func(o *LocateOptions) { o.MaxSubdivisions = n }
}

// WithStdCap overrides the locator's LOCATE_INVALID standard-deviation cap.
func WithStdCap(cap float64) LocateOption {
	return func(o *LocateOptions) { o.StdCap = cap }
}

func newLocateOptions(opts ...LocateOption) LocateOptions {
	o := DefaultLocateOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// LocatePoint searches for a parameter s* in [0,1] such that B(s*) ≈ point.
//
// It maintains a list of candidates, initially {(0,1,nodes)}. Each round,
// every candidate's bounding-box hull is tested against point; misses are
// dropped, hits are subdivided at their midpoint into two children with
// halved parameter intervals. If no candidate survives a round, the result
// is LocateMiss: the curve does not pass near point.
//
// After up to MaxSubdivisions rounds, the mean and standard deviation of all
// surviving candidates' (start,end) endpoints are computed. A standard
// deviation above StdCap means the point sits on more than one disjoint
// segment of the curve (e.g. a self-intersection) and the result is
// LocateInvalid. Otherwise the mean is polished with one NewtonRefine step
// and returned.
// Complexity: O(MaxSubdivisions * candidates * N) time, candidates growing
// by at most 2x per round; O(candidates) extra space.
func LocatePoint(nodes Nodes, point []float64, opts ...LocateOption) float64 {
	o := newLocateOptions(opts...)

	// Stage 1: seed the candidate pool with the whole curve.
	candidates := []candidate{{start: 0, end: 1, nodes: nodes}}

	// Stage 2: repeatedly cull candidates whose bounding box misses
	// point, then subdivide survivors, halving their parameter interval.
	for iter := 0; iter < o.MaxSubdivisions; iter++ {
		next := make([]candidate, 0, 2*len(candidates))
		for _, c := range candidates {
			if !containsND(c.nodes, point) {
				continue
			}

			left, right := Subdivide(c.nodes)
			mid := 0.5 * (c.start + c.end)
			next = append(next,
				candidate{start: c.start, end: mid, nodes: left},
				candidate{start: mid, end: c.end, nodes: right},
			)
		}

		if len(next) == 0 {
			return LocateMiss
		}
		candidates = next
	}

	// Stage 3: check whether the survivors cluster around one parameter
	// or spread across disjoint segments (a self-intersection), then
	// polish the mean with one Newton step.
	samples := make([]float64, 0, 2*len(candidates))
	for _, c := range candidates {
		samples = append(samples, c.start, c.end)
	}

	mean, std := stat.MeanStdDev(samples, nil)
	if std > o.StdCap {
		return LocateInvalid
	}

	return NewtonRefine(nodes, point, mean)
}
