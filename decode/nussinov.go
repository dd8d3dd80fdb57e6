package decode

import (
	"github.com/velhart/rnafold/pairing"
)

// nussinov - exact maximum-weight non-crossing decoding.
//
// Description:
//
//	Classic interval dynamic programming over sub-ranges [i, j] of the
//	position index range. best[i][j] is the maximum achievable weight
//	using only positions within [i, j]; pairs may nest or sit side by
//	side, never interleave, so the optimal structure decomposes into
//	"j unpaired" or "j paired to some k" with independent sub-intervals.
//
// Algorithm Outline:
//  1. Base case: intervals shorter than minDist+1 score 0 - no pair
//     can clear the distance band inside them.
//  2. Recurrence, filled by increasing span s = j-i:
//     best[i][j] = max( best[i][j-1],
//     max over k in [i, j-minDist] of
//     best[i][k-1] + weight(k,j) + best[k+1][j-1] )
//     where (k, j) is a candidate only if weight(k,j) > floor.
//  3. Tie-break: on exact weight equality prefer best[i][j-1] (leaving
//     the right endpoint unpaired), then the smallest k. The fill keeps
//     a branch only when it strictly improves, so the traceback can
//     re-derive the same branch by scanning in the same order.
//  4. Traceback walks intervals from [0, L-1], re-deriving the chosen
//     branch of each cell with the identical comparison order.
//
// Complexity: O(L³) time, O(L²) space - the dominant cost of the core.
func nussinov(scores *pairing.Matrix, opts Options) pairing.PairSet {
	n := scores.N()
	if n == 0 {
		return pairing.PairSet{}
	}

	floor := opts.floor()
	minDist := opts.MinPairDistance
	if minDist < 1 {
		minDist = 1 // a position can never pair with itself
	}

	best := make([][]float64, n)
	for i := range best {
		best[i] = make([]float64, n)
	}

	// Fill by increasing span; spans below minDist stay at the zero base.
	var (
		i, j, k, s int
		w, cand, b float64
	)
	for s = minDist; s < n; s++ {
		for i = 0; i+s < n; i++ {
			j = i + s
			b = best[i][j-1] // leave j unpaired
			for k = i; k <= j-minDist; k++ {
				w = scores.At(k, j)
				if w <= floor {
					continue
				}
				cand = w
				if k > i {
					cand += best[i][k-1]
				}
				if k+1 <= j-1 {
					cand += best[k+1][j-1]
				}
				if cand > b { // strict: ties keep the earlier branch
					b = cand
				}
			}
			best[i][j] = b
		}
	}

	// Traceback: re-derive each cell's branch with the same ordering.
	out := make(pairing.PairSet, 0, n/2)
	type span struct{ i, j int }
	stack := []span{{0, n - 1}}

	var top span
	for len(stack) > 0 {
		top = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		i, j = top.i, top.j
		if j-i < minDist || best[i][j] == 0 {
			continue
		}
		if best[i][j] == best[i][j-1] {
			stack = append(stack, span{i, j - 1})
			continue
		}
		for k = i; k <= j-minDist; k++ {
			w = scores.At(k, j)
			if w <= floor {
				continue
			}
			cand = w
			if k > i {
				cand += best[i][k-1]
			}
			if k+1 <= j-1 {
				cand += best[k+1][j-1]
			}
			if cand == best[i][j] {
				p, _ := pairing.NewPair(k, j)
				out = append(out, p)
				if k > i {
					stack = append(stack, span{i, k - 1})
				}
				if k+1 <= j-1 {
					stack = append(stack, span{k + 1, j - 1})
				}
				break
			}
		}
	}

	return out
}
