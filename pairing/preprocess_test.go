package pairing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velhart/rnafold/pairing"
)

// mustMatrix builds a matrix from rows, failing the test on shape errors.
func mustMatrix(t *testing.T, rows [][]float64) *pairing.Matrix {
	t.Helper()
	m, err := pairing.FromRows(rows)
	require.NoError(t, err)

	return m
}

// TestSymmetrize_AveragesAndIsIdempotent checks the (m+mᵀ)/2 formula and
// the idempotence property symmetrize(symmetrize(M)) == symmetrize(M).
func TestSymmetrize_AveragesAndIsIdempotent(t *testing.T) {
	m := mustMatrix(t, [][]float64{
		{0.0, 0.8, 0.0},
		{0.2, 0.0, 1.0},
		{0.4, 0.0, 0.0},
	})

	s := pairing.Symmetrize(m)
	assert.Equal(t, 0.5, s.At(0, 1))
	assert.Equal(t, 0.5, s.At(1, 0))
	assert.Equal(t, 0.2, s.At(0, 2))
	assert.Equal(t, 0.2, s.At(2, 0))
	assert.Equal(t, 0.8, m.At(0, 1), "input must not be mutated")

	ss := pairing.Symmetrize(s)
	for i := 0; i < s.N(); i++ {
		for j := 0; j < s.N(); j++ {
			assert.Equal(t, s.At(i, j), ss.At(i, j), "idempotence at (%d,%d)", i, j)
		}
	}
}

// TestRemoveClose_ZeroesBand verifies the |i-j| < minDist band is zeroed,
// the diagonal always goes, and nothing else changes.
func TestRemoveClose_ZeroesBand(t *testing.T) {
	n := 6
	m := pairing.NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, 1.0)
		}
	}

	out := pairing.RemoveClose(m, 4)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := j - i
			if d < 0 {
				d = -d
			}
			if d < 4 {
				assert.Zero(t, out.At(i, j), "entry (%d,%d) inside band must be zero", i, j)
			} else {
				assert.Equal(t, 1.0, out.At(i, j), "entry (%d,%d) outside band must survive", i, j)
			}
		}
	}

	// minDist <= 0 still clears the diagonal: a position never pairs itself.
	loose := pairing.RemoveClose(m, 0)
	assert.Zero(t, loose.At(2, 2))
	assert.Equal(t, 1.0, loose.At(2, 3))
}

// TestCanonicalize_FiltersBySequence keeps only chemically valid entries.
func TestCanonicalize_FiltersBySequence(t *testing.T) {
	// Sequence ACGU: valid pairs among positions are (0,3)=AU, (1,2)=CG, (2,3)=GU.
	seq := pairing.Sequence("ACGU")
	n := 4
	m := pairing.NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, 1.0)
		}
	}

	out, err := pairing.Canonicalize(m, seq)
	require.NoError(t, err)

	assert.Equal(t, 1.0, out.At(0, 3), "A-U survives")
	assert.Equal(t, 1.0, out.At(3, 0), "U-A survives")
	assert.Equal(t, 1.0, out.At(1, 2), "C-G survives")
	assert.Equal(t, 1.0, out.At(2, 3), "G-U survives")
	assert.Zero(t, out.At(0, 1), "A-C filtered")
	assert.Zero(t, out.At(0, 2), "A-G filtered")
	assert.Zero(t, out.At(1, 3), "C-U filtered")
	assert.Zero(t, out.At(0, 0), "self entries filtered")
}

// TestCanonicalize_Errors covers shape and alphabet failures.
func TestCanonicalize_Errors(t *testing.T) {
	m := pairing.NewMatrix(4)

	_, err := pairing.Canonicalize(m, "ACG")
	assert.ErrorIs(t, err, pairing.ErrDimensionMismatch)

	_, err = pairing.Canonicalize(m, "ACGT")
	assert.ErrorIs(t, err, pairing.ErrUnknownSymbol)

	_, err = pairing.Canonicalize(nil, "ACGU")
	assert.ErrorIs(t, err, pairing.ErrNilMatrix)
}
