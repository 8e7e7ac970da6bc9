// Package prox provides proximal operators for sparsity-promoting penalties.
//
// The operators come in two families:
//
//   - [Hard], [ScaledHard]: proximal step of the L0 (cardinality) penalty,
//     optionally combined with an L2 (ridge) penalty
//   - [Soft], [ScaledSoft]: proximal step of the L1 penalty, optionally
//     combined with an L2 penalty
//
// Each operator exists for real slices, complex slices (C suffix) and
// gonum dense matrices (Dense suffix). Shape is always preserved.
//
// # Aliasing
//
// Hard thresholding works in place: the argument is modified and returned.
// Callers that need the original values must pass a copy. ScaledHard zeroes
// the argument in place as well, but returns a newly allocated scaled result.
// Soft thresholding never modifies its argument.
//
// # Parameters
//
// No parameter is validated. A negative gamma disables hard thresholding and
// widens soft thresholding; 1 + 2*gamma*beta == 0 yields non-finite output.
package prox
