// Package bezier is a numerical kernel for planar and higher-dimensional
// Bézier curves expressed in Bernstein–Bézier form.
//
// 🚀 What is this?
//
//	A Bézier curve of degree n is defined by n+1 control points ("nodes")
//	and evaluated as B(s) = Σ C(n,i)·(1-s)^(n-i)·s^i·nodes[i]. This package
//	supplies the primitive operations other curve algorithms (intersection,
//	offsetting, distance queries, rendering) are built from:
//	  • Multi-point evaluation (barycentric and single-parameter)
//	  • Subdivision and subinterval specialization
//	  • Hodograph (derivative) evaluation and curvature
//	  • Newton-style parameter refinement
//	  • Degree elevation and pseudo-inverse degree reduction
//	  • Point-on-curve parameter location
//	  • Adaptive-quadrature arc length
//
// ✨ Key properties:
//
//   - No I/O, no parsing, no serialization — the kernel speaks only in
//     plain numeric buffers ([Nodes], []float64 points).
//   - Single-threaded per call: every routine here is safe to invoke
//     concurrently from independent goroutines on disjoint buffers,
//     without any synchronization inside the package.
//   - Numerically deterministic: identical IEEE-754 inputs and the
//     accumulation orders documented on EvaluateCurveBarycentric and
//     Subdivide produce bit-reproducible results.
//
// Under the hood:
//
//	(root)      — evaluation, subdivision, specialization, differential
//	              ops, degree change, Newton refinement, the locator and
//	              arc length, all operating on the Nodes buffer type.
//	quad/       — the adaptive Gauss–Kronrod integrator behind arc length,
//	              generic enough to integrate any float64 -> float64
//	              closure over an interval.
//
// ⚙️ Usage:
//
//	nodes := bezier.Nodes{{0, 0}, {1, 2}}
//	pts := bezier.EvaluateMulti(nodes, []float64{0, 0.25, 1})
//	length, errCode := bezier.ComputeLength(nodes)
//
// Degree reduction and the point locator return in-band sentinels and
// capability flags rather than Go errors — see types.go for the exact
// contract each returns.
//
//	go get github.com/kestrelmath/bezier
package bezier
