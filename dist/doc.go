// Package dist provides ready-made parameter distributions for generating
// function families.
//
// Random distributions wrap gonum's distuv variates with an explicitly
// seeded source, so a family built from the same seed is reproducible.
// Linspace and Fixed are deterministic and useful for tests or exactly
// tiled families.
//
// Any other sampler works too: the consumer only requires
// Sample(n) []float64.
package dist
