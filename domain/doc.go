// Package domain discretizes hypercube domains into dense point grids.
//
// A grid covers [-radius, radius)^dim with uniform step d and is returned as
// a (nPoints, dim) matrix, one point per row. Row order is stable: the last
// axis varies fastest. Downstream code indexes sample-matrix rows and basis
// rows by grid row, so this ordering is part of the contract.
//
// Point count grows as (2*radius/d)^dim. That blow-up is inherent to dense
// discretization, not a defect; pick d coarse enough for dim > 1.
//
// # Usage
//
//	points, err := domain.UniformCube(2, 1, 0.05) // 40x40 grid, 1600 rows
package domain
