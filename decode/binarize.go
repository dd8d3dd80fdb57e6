package decode

import (
	"github.com/velhart/rnafold/pairing"
)

// Binarize - evaluation-time decode over a (possibly padded) raw matrix.
//
// Description:
//
//	Training pipelines pad every sequence to a fixed size and center it,
//	so the raw model output is full×full with the true L×L block in the
//	middle. Binarize extracts that window at offset (full−L)/2, optionally
//	symmetrizes it by adding the transpose (the raw output is one-sided,
//	so addition rather than averaging recovers the pair mass), and runs
//	the exact greedy core used by the Greedy strategy - same descending
//	score order, same ascending flat-index tie-break, same distance and
//	chemistry filters - until TargetPairCount pairs are accepted or the
//	candidates run out.
//
// Returns:
//   - the PairSet, indexed relative to the true (unpadded) sequence;
//   - a dense full×full 0/1 matrix with each accepted pair marked
//     symmetrically at its original padded coordinates, ready for loss
//     computation against the padded ground-truth matrix.
//
// Running out of candidates before the target count is a defined
// outcome, not an error: the set simply comes back short.
//
// Errors: ErrBadOptions / ErrTooLong, plus wrapped pairing sentinels;
// the matrix must be at least as large as the sequence.
//
// Complexity: O(full² + L² log L) time, O(full²) space for the mask.
func Binarize(raw *pairing.Matrix, seq pairing.Sequence, opts Options) (pairing.PairSet, *pairing.Matrix, error) {
	if err := validateBinarizeInput(raw, seq, opts); err != nil {
		return nil, nil, err
	}

	full := raw.N()
	n := seq.Len()
	beg := (full - n) / 2

	// Extract the centered window; fold in the transpose when asked.
	win := pairing.NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := raw.At(beg+i, beg+j)
			if opts.Symmetrize {
				v += raw.At(beg+j, beg+i)
			}
			win.Set(i, j, v)
		}
	}

	pairs := greedyAssign(win, seq, opts, opts.maxPairs(n))
	pairs.Sort()

	mask := pairing.NewMatrix(full)
	for _, p := range pairs {
		mask.Set(beg+p.I, beg+p.J, 1)
		mask.Set(beg+p.J, beg+p.I, 1)
	}

	return pairs, mask, nil
}
