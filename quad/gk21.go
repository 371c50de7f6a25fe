package quad

import "math"

// Function is the integrand evaluated by the quadrature rules in this
// package. It must be defined (and finite) on the closed interval passed
// to Integrate.
type Function func(x float64) float64

// Node and weight tables for the 21-point Gauss-Kronrod rule (QUADPACK
// DQK21), nesting a 10-point Gauss rule. xgk holds the abscissae of the
// Kronrod rule on [0,1] in decreasing order, with xgk[10]=0 the shared
// center point. wgk holds the Kronrod weights; wg holds the Gauss
// weights, indexed against the odd-indexed xgk entries (xgk[1],
// xgk[3], ..., xgk[9]).
var (
	xgk = [11]float64{
		0.995657163025808080735527280689003,
		0.973906528517171720077964012084452,
		0.930157491355708226001207180059508,
		0.865063366688984510732096688423493,
		0.780817726586416897063717578345042,
		0.679409568299024406234327365114874,
		0.562757134668604683339000099272694,
		0.433395394129247190799265943165784,
		0.294392862701460198131126603103866,
		0.148874338981631210884826001129720,
		0.000000000000000000000000000000000,
	}

	wgk = [11]float64{
		0.011694638867371874278064396062192,
		0.032558162307964727478818972459390,
		0.054755896574351996031381300244580,
		0.075039674810919952767043140916190,
		0.093125454583697605535065465083366,
		0.109387158802297641899210590325805,
		0.123491976262065851077958109831074,
		0.134709217311473325928054001771707,
		0.142775938577060080797094273138717,
		0.147739104901338491374841515972068,
		0.149445554002916905664936468389821,
	}

	wg = [5]float64{
		0.066671344308688137593568809893332,
		0.149451349150580593145776339657697,
		0.219086362515982043995534934228163,
		0.269266719309996355091226921569469,
		0.295524224714752870173892994651338,
	}
)

// panelEstimate is the result of applying gk21 to one panel: the Kronrod
// estimate of the integral, an error estimate, and the magnitude of the
// integrand over the panel (the Kronrod estimate of the integral of |f|;
// Integrate does not read it).
type panelEstimate struct {
	integral float64
	errEst   float64
	absSum   float64
}

// gk21 applies the 21-point Gauss-Kronrod rule (nesting the 10-point Gauss
// rule) to f over [a,b], following QUADPACK's DQK21. The Kronrod result is
// taken as the integral estimate; the error estimate is derived from the
// Gauss/Kronrod discrepancy, scaled per the DQK21 heuristic so that smooth
// integrands report much smaller error than their raw |resultK-resultG|.
// Complexity: O(1) panel evaluations (21 calls to f), O(1) extra space.
func gk21(f Function, a, b float64) panelEstimate {
	center := 0.5 * (a + b)
	halfLength := 0.5 * (b - a)

	var fv1, fv2 [10]float64

	fc := f(center)
	resultGauss := 0.0
	resultKronrod := wgk[10] * fc
	resAbs := math.Abs(resultKronrod)

	for j := 0; j < 5; j++ {
		jtw := 2*j + 1
		absc := halfLength * xgk[jtw]
		fval1 := f(center - absc)
		fval2 := f(center + absc)
		fv1[jtw] = fval1
		fv2[jtw] = fval2

		fsum := fval1 + fval2
		resultGauss += wg[j] * fsum
		resultKronrod += wgk[jtw] * fsum
		resAbs += wgk[jtw] * (math.Abs(fval1) + math.Abs(fval2))
	}

	for j := 0; j < 5; j++ {
		jtwm1 := 2 * j
		absc := halfLength * xgk[jtwm1]
		fval1 := f(center - absc)
		fval2 := f(center + absc)
		fv1[jtwm1] = fval1
		fv2[jtwm1] = fval2

		fsum := fval1 + fval2
		resultKronrod += wgk[jtwm1] * fsum
		resAbs += wgk[jtwm1] * (math.Abs(fval1) + math.Abs(fval2))
	}

	reskh := resultKronrod * 0.5
	resAsc := wgk[10] * math.Abs(fc-reskh)
	for j := 0; j < 10; j++ {
		resAsc += wgk[j] * (math.Abs(fv1[j]-reskh) + math.Abs(fv2[j]-reskh))
	}

	result := resultKronrod * halfLength
	resAbs *= math.Abs(halfLength)
	resAsc *= math.Abs(halfLength)

	errEst := math.Abs((resultKronrod - resultGauss) * halfLength)
	if resAsc != 0 && errEst != 0 {
		ratio := 200 * errEst / resAsc
		errEst = resAsc * math.Min(1, math.Pow(ratio, 1.5))
	}

	return panelEstimate{integral: result, errEst: errEst, absSum: resAbs}
}
