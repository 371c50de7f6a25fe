package quad

import "math"

// Status codes returned alongside Integrate's result estimate.
const (
	// StatusConverged reports the global error estimate fell within
	// tolerance before the panel budget was exhausted.
	StatusConverged = 0

	// StatusLimitReached reports MaxSubdivisions panels were used without
	// meeting tolerance; the returned estimate is the best available.
	StatusLimitReached = 1

	// StatusRoundoff reports further bisection stopped improving the
	// error estimate (machine-precision noise dominates); the returned
	// estimate is the best available.
	StatusRoundoff = 2
)

// panel is one interval of the adaptive partition, carrying its own
// Gauss-Kronrod estimate so re-evaluating sibling panels is never needed.
type panel struct {
	a, b     float64
	estimate panelEstimate
}

// Integrate estimates the definite integral of f over [a,b] using
// globally-adaptive Gauss-Kronrod quadrature, in the style of QUADPACK's
// DQAGSE: start from a single panel, and repeatedly bisect whichever
// surviving panel holds the largest share of the error budget, until the
// sum of per-panel errors meets max(AbsTol, RelTol*|result|), the panel
// budget is exhausted, or bisection stops reducing the total error
// (roundoff-dominated).
//
// Unlike full DQAGSE this performs no epsilon-algorithm extrapolation; for
// the smooth, non-singular integrands arc-length computation produces,
// plain bisection converges well within the panel budget.
// Complexity: O(MaxSubdivisions * 21) integrand evaluations worst case,
// O(MaxSubdivisions) extra space for the panel list.
func Integrate(f Function, a, b float64, opts ...Option) (result float64, status int) {
	o := newOptions(opts...)

	// Stage 1: seed the partition with a single panel covering [a,b].
	first := gk21(f, a, b)
	panels := []panel{{a: a, b: b, estimate: first}}

	total := first.integral
	totalErr := first.errEst

	// Stage 2: repeatedly bisect the worst-error panel until converged,
	// out of budget, or no longer improving (roundoff).
	for len(panels) < o.MaxSubdivisions {
		tolerance := math.Max(o.AbsTol, o.RelTol*math.Abs(total))
		if totalErr <= tolerance {
			return total, StatusConverged
		}

		worst := 0
		for i := 1; i < len(panels); i++ {
			if panels[i].estimate.errEst > panels[worst].estimate.errEst {
				worst = i
			}
		}

		p := panels[worst]
		mid := 0.5 * (p.a + p.b)
		left := gk21(f, p.a, mid)
		right := gk21(f, mid, p.b)

		splitErr := left.errEst + right.errEst
		oldErr := p.estimate.errEst
		oldIntegral := p.estimate.integral

		panels[worst] = panel{a: p.a, b: mid, estimate: left}
		panels = append(panels, panel{a: mid, b: p.b, estimate: right})

		total += (left.integral + right.integral) - oldIntegral
		totalErr += splitErr - oldErr

		if splitErr >= oldErr && oldErr < tolerance*1e-3 {
			return total, StatusRoundoff
		}
	}

	// Stage 3: budget exhausted; report whichever status the final
	// accumulated error implies.
	tolerance := math.Max(o.AbsTol, o.RelTol*math.Abs(total))
	if totalErr <= tolerance {
		return total, StatusConverged
	}

	return total, StatusLimitReached
}
