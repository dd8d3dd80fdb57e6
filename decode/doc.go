// Package decode converts a preprocessed base-pairing score matrix into
// a discrete secondary structure (a pairing.PairSet) under one of three
// combinatorial strategies, selected once through Options.
//
// 🚀 Strategies:
//
//   - Greedy - one-pair-per-position assignment by descending score.
//     Fast, approximate. O(L² log L).
//   - NonCrossingDP - exact maximum-weight matching under the
//     no-pseudoknot (nesting) constraint via interval dynamic
//     programming. O(L³) time, O(L²) space - the dominant cost here.
//   - WeightedMatching - exact maximum-weight general matching via
//     Edmonds' blossom algorithm; crossing pairs (pseudoknots) allowed.
//
// Every strategy guarantees the matching invariant (no position in more
// than one pair) and honors the shared filters: minimum pair distance,
// canonical-pair chemistry, and a strictly-positive score floor.
//
// ✨ Determinism:
//
//	Exact tie-break rules make every decode reproducible:
//	  • Greedy/Binarize order candidates by descending score, then by
//	    ascending row-major flattened index i·L+j.
//	  • The DP prefers leaving the right endpoint unpaired on exact
//	    weight ties, then the smallest pairing partner.
//
// Binarize is the evaluation-time variant: it windows a symmetrically
// padded matrix down to the true sequence, runs the same greedy core
// with a fixed target pair count or probability floor, and additionally
// returns a full-size dense 0/1 matrix for loss computation upstream.
//
// All operations are synchronous pure functions over immutable inputs;
// callers own batch-level parallelism. Decoders are O(L²)–O(L³), so the
// boundary enforces MaxSequenceLength.
package decode
