// Package family generates parameterized function families and evaluates
// them on domain grids.
//
// A family is built from one base function and a set of parameter
// distributions: each distribution is sampled once up front, and sample i of
// every distribution forms the parameter tuple bound into function i. The
// resulting functions are pure closures over their own parameter copies.
//
// Evaluating a family on a grid yields the dense sample matrix
// (nPoints, nFunctions) that feeds the SVD basis construction.
package family
