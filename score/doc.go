// Package score computes confusion-matrix agreement metrics between a
// predicted secondary structure and a reference, treating every one of
// the L·(L−1)/2 possible position pairs as a binary classification.
//
// 🚀 Metrics:
//
//   - F1  - harmonic mean of sensitivity and precision
//   - MCC - Matthews correlation coefficient, balanced even when true
//     negatives dwarf everything else (as they always do here)
//
// ✨ Degenerate cases are policy, not errors:
//
//	Every division guards its denominator - a zero denominator makes
//	the affected metric 0, never NaN and never a failure. Two empty
//	structures compare as tn = total, f1 = 0, mcc = 0.
//
// Compare is a pure function; the only failure modes are a reference or
// prediction that violates the matching invariant (positions paired
// twice) or a sequence length that cannot hold the given pairs.
//
// Complexity: O(|predicted| + |reference|) time and space.
package score
