// Package quad implements adaptive Gauss-Kronrod quadrature over a closed
// interval [a,b], in the style of QUADPACK's DQAGSE/DQK21: a 21-point
// Kronrod rule nested with its embedded 10-point Gauss rule estimates both
// the integral and its error on a panel; panels whose error exceeds their
// share of the tolerance are bisected and re-estimated until the global
// error budget is met, a subdivision limit is hit, or roundoff dominates.
//
// Usage:
//
//	result, errCode := quad.Integrate(f, 0, 1, quad.WithAbsTol(1e-8))
//	if errCode != quad.StatusConverged {
//		// result is still the best available estimate
//	}
package quad
