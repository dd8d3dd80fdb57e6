package pairing

// Pre-filters applied (in this fixed order, each optional at the call
// site) before decoding: Symmetrize → RemoveClose → Canonicalize.
// All three are pure: the input matrix is never mutated and the result
// is a fresh matrix of identical shape.

// Symmetrize returns m' with m'[i][j] = (m[i][j] + m[j][i]) / 2.
// Idempotent: Symmetrize(Symmetrize(m)) equals Symmetrize(m).
//
// Complexity: O(L²) time, O(L²) space.
func Symmetrize(m *Matrix) *Matrix {
	n := m.n
	out := NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, (m.At(i, j)+m.At(j, i))/2)
		}
	}

	return out
}

// RemoveClose returns m' with every entry |i-j| < minDist zeroed.
// A backbone cannot fold back on itself within fewer than minDist
// residues, so such entries can never be real pairs. minDist <= 0
// removes nothing but the diagonal is still zeroed (i == j is never
// a pair).
//
// Complexity: O(L²) time, O(L²) space.
func RemoveClose(m *Matrix, minDist int) *Matrix {
	n := m.n
	out := NewMatrix(n)

	var d int
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d = j - i
			if d < 0 {
				d = -d
			}
			if d == 0 || d < minDist {
				continue // leave the zero in place
			}
			out.Set(i, j, m.At(i, j))
		}
	}

	return out
}

// Canonicalize returns m' with every entry whose symbol pair is not
// chemically compatible zeroed. The compatibility set is
// {A–U, C–G, G–U}, checked symmetrically (see CanPair).
//
// Errors: ErrDimensionMismatch when the matrix and sequence disagree,
// ErrUnknownSymbol when the sequence leaves the {A,C,G,U} alphabet.
//
// Complexity: O(L²) time, O(L²) space.
func Canonicalize(m *Matrix, s Sequence) (*Matrix, error) {
	if err := ValidateShape(m, s); err != nil {
		return nil, err
	}
	if err := ValidateSequence(s); err != nil {
		return nil, err
	}

	n := m.n
	out := NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if CanPair(s[i], s[j]) {
				out.Set(i, j, m.At(i, j))
			}
		}
	}

	return out, nil
}
