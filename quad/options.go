package quad

// Options configures Integrate's convergence criteria and the bisection
// budget of the adaptive driver.
//
// Fields:
//
//	AbsTol          - absolute error tolerance on the global estimate.
//	RelTol          - relative error tolerance, applied against |result|.
//	MaxSubdivisions - maximum number of panels the driver may create;
//	                  exceeding it without meeting tolerance reports
//	                  StatusLimitReached.
type Options struct {
	AbsTol          float64
	RelTol          float64
	MaxSubdivisions int
}

// DefaultOptions returns conservative defaults suitable for arc-length
// integration: AbsTol=1e-10, RelTol=1e-10, MaxSubdivisions=50.
func DefaultOptions() Options {
	return Options{
		AbsTol:          1e-10,
		RelTol:          1e-10,
		MaxSubdivisions: 50,
	}
}

// Option mutates an Options.
type Option func(*Options)

// WithAbsTol overrides the absolute error tolerance.
func WithAbsTol(tol float64) Option {
	return func(o *Options) { o.AbsTol = tol }
}

// WithRelTol overrides the relative error tolerance.
func WithRelTol(tol float64) Option {
	return func(o *Options) { o.RelTol = tol }
}

// WithMaxSubdivisions overrides the panel budget.
func WithMaxSubdivisions(n int) Option {
	return func(o *Options) { o.MaxSubdivisions = n }
}

func newOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
