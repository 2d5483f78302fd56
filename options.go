package funcspace

type options struct {
	numFunctions int
	numBasis     int
	step         float64
	radius       float64
	parallelism  int
	logger       *Logger
}

func defaultOptions() options {
	return options{
		numFunctions: 200,
		numBasis:     20,
		step:         0.001,
		radius:       1,
		parallelism:  1,
		logger:       NoopLogger(),
	}
}

// Option configures FunctionSpace construction.
type Option func(*options)

// WithNumFunctions sets how many functions are sampled to tile the space.
// Default: 200.
func WithNumFunctions(n int) Option {
	return func(o *options) {
		o.numFunctions = n
	}
}

// WithNumBasis sets the initial number of orthonormal basis functions.
// Default: 20. Can be changed after construction via SelectTopBasis.
func WithNumBasis(n int) Option {
	return func(o *options) {
		o.numBasis = n
	}
}

// WithStep sets the discretization step between adjacent grid points along
// each domain axis. Default: 0.001.
//
// The grid has (2*radius/step)^domainDim points; coarsen the step for
// domain dimensions above 1.
func WithStep(d float64) Option {
	return func(o *options) {
		o.step = d
	}
}

// WithRadius sets the half-side of the hypercube domain. Default: 1.
func WithRadius(r float64) Option {
	return func(o *options) {
		o.radius = r
	}
}

// WithParallelism sets the number of workers used to fill the sample
// matrix. Values <= 1 keep the serial evaluation path. The result is
// identical either way; this only trades CPU for wall time on large grids.
func WithParallelism(workers int) Option {
	return func(o *options) {
		o.parallelism = workers
	}
}

// WithLogger configures structured logging for construction and snapshot
// restore. If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
