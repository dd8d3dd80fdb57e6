// Package pairing provides the fundamental types of the decoding core -
// sequences, base pairs, pair sets and dense score matrices - together
// with the structural pre-filters every decoder runs on its input.
//
// 🚀 What lives here?
//
//   - Sequence - an RNA string over {A, C, G, U}, immutable by contract
//   - Pair / PairSet - 0-indexed unordered index pairs with the matching
//     invariant (no position appears in more than one pair)
//   - Matrix - a dense L×L float64 score matrix with flat storage
//   - Pre-filters - Symmetrize, RemoveClose, Canonicalize: pure functions
//     that always return a fresh matrix and never touch the caller's data
//
// ✨ Canonical pairs:
//
//	Watson–Crick plus wobble: {A–U, C–G, G–U}, checked symmetrically.
//	Bases are encoded as the primes A=2, C=3, G=5, U=7; a pair is
//	canonical iff the product of its codes is one of {14, 15, 35}.
//
// All functions are deterministic, side-effect free, and allocate only
// their results. Validation helpers return plain sentinel errors so call
// sites can wrap uniformly with %w.
//
// Complexity: every pre-filter is O(L²) time, O(L²) space (the result).
package pairing
