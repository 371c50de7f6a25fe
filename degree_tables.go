package bezier

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// elevationMatrix returns the N x (N-1) elevation operator that maps
// degree-(N-2) control points (N-1 of them) to degree-(N-1) control points
// (N of them), per the formula in Elevate:
//
//	elevated[0]   = nodes[0]
//	elevated[N-1] = nodes[N-2]
//	elevated[i]   = (i*nodes[i-1] + (N-1-i)*nodes[i]) / (N-1)   for 0<i<N-1
func elevationMatrix(n int) *mat.Dense {
	m := mat.NewDense(n, n-1, nil)
	oldN := n - 1

	m.Set(0, 0, 1)
	m.Set(n-1, n-2, 1)
	for i := 1; i < n-1; i++ {
		m.Set(i, i-1, float64(i)/float64(oldN))
		m.Set(i, i, float64(oldN-i)/float64(oldN))
	}

	return m
}

// reductionMatrix returns the (N-1) x N least-squares pseudo-inverse of
// elevationMatrix(n), valid for n in [2,5] — the fixed rational table a
// degree reducer needs is exactly this matrix's entries. Rather than
// transcribe four hand-derived tables, they are computed once via the
// normal equations (E^T E)^-1 E^T, which is deterministic for a fixed
// elevation operator and numerically exact at these sizes.
func reductionMatrix(n int) *mat.Dense {
	e := elevationMatrix(n)

	var et mat.Dense
	et.CloneFrom(e.T())

	var ete mat.Dense
	ete.Mul(&et, e)

	var eteInv mat.Dense
	if err := eteInv.Inverse(&ete); err != nil {
		panic(fmt.Sprintf("bezier: degenerate elevation operator for N=%d: %v", n, err))
	}

	var r mat.Dense
	r.Mul(&eteInv, &et)

	return &r
}

// applyReductionMatrix multiplies the fixed (N-1) x N matrix m against the
// N x D node buffer, returning the (N-1) x D result.
func applyReductionMatrix(m *mat.Dense, nodes Nodes) Nodes {
	rows, _ := m.Dims()
	d := nodes.Dimension()

	src := mat.NewDense(len(nodes), d, nil)
	for i, p := range nodes {
		for c := 0; c < d; c++ {
			src.Set(i, c, p[c])
		}
	}

	var res mat.Dense
	res.Mul(m, src)

	out := make(Nodes, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, d)
		for c := 0; c < d; c++ {
			row[c] = res.At(i, c)
		}
		out[i] = row
	}

	return out
}
