// Package funcspace builds compact orthonormal function bases from sampled
// function families.
//
// A FunctionSpace is constructed from a base function, a domain dimension
// and one parameter distribution per extra argument of the base function.
// Construction samples the distributions, evaluates the resulting family on
// a dense hypercube grid, and runs a thin SVD on the sample matrix. The left
// singular vectors, scaled by the discretization volume element, form a
// basis that is orthonormal under the discrete inner product — a compact
// linear representation of the sampled function space.
//
// # Quick Start
//
//	gaussian := func(point []float64, params ...float64) float64 {
//	    d := point[0] - params[0]
//	    return math.Exp(-d * d / 0.02)
//	}
//
//	space, err := funcspace.New(ctx, gaussian, 1,
//	    []family.Distribution{dist.NewUniform(-1, 1, 42)},
//	    funcspace.WithNumFunctions(200),
//	    funcspace.WithNumBasis(20),
//	    funcspace.WithStep(0.001),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	coeffs := space.EncoderCoeffs()          // project the family itself
//	approx := space.Reconstruct(coeffs.T())  // and map coefficients back
//
// # Truncation
//
// The basis can be cut down after construction without re-running the SVD:
//
//	if err := space.SelectTopBasis(10); err != nil { ... }
//
// SingularValues (full, descending, unaffected by truncation) indicate how
// many basis functions a given reconstruction quality needs.
//
// # Resource model
//
// Everything is dense and in-memory: the sample matrix is
// (nPoints, nFunctions) and nPoints grows as (2*radius/d)^domainDim.
// Evaluation and SVD dominate cost; choose a coarser step for domain
// dimensions above 1. The aggregate is single-owner: SelectTopBasis is a
// plain unsynchronized write, so callers sharing a space across goroutines
// must serialize access themselves.
//
// # Persistence
//
// The snapshot package serializes a built space so it can be reloaded
// without recomputing the SVD; see funcspace/snapshot.
package funcspace
