package decode

import (
	"sort"

	"github.com/velhart/rnafold/pairing"
)

// candidate is one off-diagonal matrix cell under consideration.
// flat is the row-major index i·L+j, the deterministic tie-breaker.
type candidate struct {
	i, j  int
	score float64
	flat  int
}

// greedyAssign - descending-score one-pair-per-position assignment.
//
// Description:
//
//	Enumerate every off-diagonal cell with score strictly above the
//	floor, order by descending score with ascending flattened index on
//	exact ties, then walk the list accepting a pair whenever both of
//	its positions are still free, it clears the distance band, and
//	(when requested) its bases are chemically compatible. Stops after
//	limit accepted pairs.
//
// This single routine backs both the Greedy strategy (whose matrix is
// already pre-filtered, making the inline checks no-ops) and Binarize
// (whose windowed matrix is raw, making them load-bearing) - keeping the
// two on the exact same tie-break and filter rules.
//
// Always terminates; never fails.
//
// Complexity: O(L² log L) for the sort, O(L²) scan, O(L²) space.
func greedyAssign(scores *pairing.Matrix, seq pairing.Sequence, opts Options, limit int) pairing.PairSet {
	n := scores.N()
	floor := opts.floor()

	cands := make([]candidate, 0, n*n/2)

	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v = scores.At(i, j)
			if v <= floor {
				continue
			}
			cands = append(cands, candidate{i: i, j: j, score: v, flat: i*n + j})
		}
	}

	sort.Slice(cands, func(a, b int) bool {
		if cands[a].score != cands[b].score {
			return cands[a].score > cands[b].score
		}

		return cands[a].flat < cands[b].flat
	})

	used := make([]bool, n)
	out := make(pairing.PairSet, 0, limit)

	var span int
	for _, c := range cands {
		if len(out) == limit {
			break
		}
		if used[c.i] || used[c.j] {
			continue
		}
		span = c.j - c.i
		if span < 0 {
			span = -span
		}
		if span < opts.MinPairDistance {
			continue
		}
		if opts.Canonicalize && !pairing.CanPair(seq[c.i], seq[c.j]) {
			continue
		}

		p, _ := pairing.NewPair(c.i, c.j)
		out = append(out, p)
		used[c.i] = true
		used[c.j] = true
	}

	return out
}
