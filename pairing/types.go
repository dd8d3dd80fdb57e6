// Package pairing - core pair/pair-set types and sentinel errors.
package pairing

import (
	"errors"
	"sort"
)

// ErrNilMatrix indicates a nil *Matrix argument.
var ErrNilMatrix = errors.New("pairing: nil matrix")

// ErrDimensionMismatch indicates that a sequence length and a matrix
// dimension (or two matrix dimensions) disagree.
var ErrDimensionMismatch = errors.New("pairing: dimension mismatch")

// ErrUnknownSymbol indicates a sequence symbol outside the {A,C,G,U} alphabet
// where a chemical check requires a real base.
var ErrUnknownSymbol = errors.New("pairing: unknown sequence symbol")

// ErrBadPair indicates a pair with out-of-range or equal indices.
var ErrBadPair = errors.New("pairing: invalid pair indices")

// ErrMultiPairing indicates a pair set in which some position participates
// in more than one pair (matching invariant violated).
var ErrMultiPairing = errors.New("pairing: position paired more than once")

// Pair is an unordered base pair, stored with I < J.
// Indices are 0-based positions into the owning Sequence.
type Pair struct {
	I, J int
}

// NewPair returns the normalized pair {min(i,j), max(i,j)}.
// It returns ErrBadPair when i == j or either index is negative.
func NewPair(i, j int) (Pair, error) {
	if i == j || i < 0 || j < 0 {
		return Pair{}, ErrBadPair
	}
	if i > j {
		i, j = j, i
	}

	return Pair{I: i, J: j}, nil
}

// Span returns the backbone distance |J - I| of the pair.
func (p Pair) Span() int { return p.J - p.I }

// Crosses reports whether p and q interleave: i < k < j < l for
// p=(i,j), q=(k,l) in either order. Nested or disjoint pairs do not cross.
func (p Pair) Crosses(q Pair) bool {
	if p.I > q.I {
		p, q = q, p
	}
	// Now p.I <= q.I; crossing means q starts inside p and ends outside.
	return p.I < q.I && q.I < p.J && p.J < q.J
}

// PairSet is a set of pairs satisfying the matching invariant:
// no index appears in more than one pair. Decoders return PairSets
// sorted ascending by (I, J) for reproducible output.
type PairSet []Pair

// Sort orders the set ascending by I, then J, in place.
func (ps PairSet) Sort() {
	sort.Slice(ps, func(a, b int) bool {
		if ps[a].I != ps[b].I {
			return ps[a].I < ps[b].I
		}

		return ps[a].J < ps[b].J
	})
}

// Contains reports whether the set holds the exact pair p.
// Linear scan; pair sets are at most L/2 long.
func (ps PairSet) Contains(p Pair) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}

	return false
}

// Equal reports whether two sets hold the same pairs, order-insensitive.
func (ps PairSet) Equal(other PairSet) bool {
	if len(ps) != len(other) {
		return false
	}
	for _, p := range ps {
		if !other.Contains(p) {
			return false
		}
	}

	return true
}

// Validate checks the matching invariant and index sanity against a
// sequence of length seqLen. Returns ErrBadPair for malformed pairs and
// ErrMultiPairing when an index is reused.
//
// Complexity: O(n) time, O(n) space for the seen-index set.
func (ps PairSet) Validate(seqLen int) error {
	seen := make(map[int]struct{}, 2*len(ps))
	for _, p := range ps {
		if p.I < 0 || p.J >= seqLen || p.I >= p.J {
			return ErrBadPair
		}
		if _, dup := seen[p.I]; dup {
			return ErrMultiPairing
		}
		if _, dup := seen[p.J]; dup {
			return ErrMultiPairing
		}
		seen[p.I] = struct{}{}
		seen[p.J] = struct{}{}
	}

	return nil
}

// HasCrossing reports whether any two pairs in the set interleave.
// Used by tests of the non-crossing decoder; O(n²) over pair count.
func (ps PairSet) HasCrossing() bool {
	for a := 0; a < len(ps); a++ {
		for b := a + 1; b < len(ps); b++ {
			if ps[a].Crosses(ps[b]) {
				return true
			}
		}
	}

	return false
}
