// Package decode - unified dispatcher for the decoding strategies.
//
// Decode is the canonical entry point: it validates inputs, applies the
// structural pre-filters in a fixed order (symmetrize → remove-close →
// canonicalize, each gated by Options), then routes to the strategy
// selected at configuration time. The strategy set is closed: adding a
// strategy means adding an enum tag and a case, never name lookup.
package decode

import (
	"github.com/velhart/rnafold/pairing"
)

// Decode converts an L×L score matrix and its sequence into a PairSet
// under opts.Strategy.
//
// Contracts:
//   - m must be non-nil and exactly L×L for L = seq.Len() ≤ MaxSequenceLength.
//   - m is read-only: preprocessing builds fresh matrices.
//   - The returned set satisfies the matching invariant, the distance
//     invariant for opts.MinPairDistance, and (when opts.Canonicalize)
//     the canonical invariant; it is sorted ascending by (I, J).
//
// Defined non-error outcomes: an empty sequence or an everywhere-filtered
// matrix yields an empty PairSet.
//
// Errors: ErrBadOptions / ErrBadStrategy / ErrTooLong, plus wrapped
// pairing.ErrNilMatrix / pairing.ErrDimensionMismatch /
// pairing.ErrUnknownSymbol. All are detected before decoding starts.
//
// Complexity: preprocessing O(L²); then per strategy -
// Greedy O(L² log L), NonCrossingDP O(L³), WeightedMatching O(V·E·log V)
// on the positive-edge graph (worst case O(L³) dense).
func Decode(m *pairing.Matrix, seq pairing.Sequence, opts Options) (pairing.PairSet, error) {
	// Stage 1 - unified validation (options + shape + alphabet).
	if err := validateDecodeInput(m, seq, opts); err != nil {
		return nil, err
	}

	// Stage 2 - structural pre-filters, fixed order.
	scores, err := preprocess(m, seq, opts)
	if err != nil {
		return nil, err
	}

	// Stage 3 - route by strategy.
	var out pairing.PairSet
	switch opts.Strategy {
	case Greedy:
		out = greedyAssign(scores, seq, opts, opts.maxPairs(seq.Len()))
	case NonCrossingDP:
		out = nussinov(scores, opts)
	case WeightedMatching:
		out = blossom(scores, opts)
	default:
		// Unreachable after validateOptions.
		return nil, ErrBadStrategy
	}

	out.Sort()

	return out, nil
}

// preprocess applies symmetrize → remove-close → canonicalize per opts.
// Always returns a fresh matrix, even when every filter is off, so the
// decoders may treat their input as private.
func preprocess(m *pairing.Matrix, seq pairing.Sequence, opts Options) (*pairing.Matrix, error) {
	scores := m
	if opts.Symmetrize {
		scores = pairing.Symmetrize(scores)
	}
	scores = pairing.RemoveClose(scores, opts.MinPairDistance)
	if opts.Canonicalize {
		canon, err := pairing.Canonicalize(scores, seq)
		if err != nil {
			return nil, err
		}
		scores = canon
	}

	return scores, nil
}
