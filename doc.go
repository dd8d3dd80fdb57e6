// Package rnafold turns continuous base-pairing score matrices into
// discrete, biologically valid RNA secondary structures - and tells you
// how good they are.
//
// 🚀 What is rnafold?
//
//	A deterministic, side-effect-free decoding & scoring core that sits
//	between a structure-prediction model and its evaluation pipeline:
//	  • pairing/ - sequences, pairs, dense score matrices and the
//	    structural pre-filters (symmetrize, min-distance, canonical pairs)
//	  • decode/  - three decoding strategies behind one options surface:
//	    greedy assignment, non-crossing maximum-weight DP (Nussinov-style)
//	    and blossom maximum-weight matching (pseudoknots allowed)
//	  • score/   - confusion-matrix metrics (F1, MCC) against a reference
//	  • bpseq/   - round-trip of the bpseq reference-structure format
//
// ✨ Why choose rnafold?
//
//   - Deterministic – fixed tie-break rules, reproducible across runs
//   - Pure Go – no cgo, no hidden deps
//   - Pure functions – inputs are never mutated; decode calls share no
//     state, so batches parallelize trivially at the caller
//
// Quick sketch:
//
//	opts := decode.DefaultOptions()
//	opts.Strategy = decode.NonCrossingDP
//	pairs, err := decode.Decode(scores, seq, opts)
//	rep, err := score.Compare(pairs, reference, seq.Len())
//
// Dive into each package's doc.go for contracts, invariants and complexity.
package rnafold
