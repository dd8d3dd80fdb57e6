package pairing

// Matrix is a dense square score matrix with row-major flat storage.
// Entry (i, j) holds the pairing score of positions i and j; no symmetry
// or value range is assumed of raw input. The zero value is unusable -
// construct with NewMatrix or FromRows.
//
// The decoding core treats caller-supplied matrices as read-only: every
// transformation returns a fresh Matrix of identical shape.
type Matrix struct {
	n     int
	cells []float64
}

// NewMatrix allocates a zero-filled n×n matrix. Negative n yields an
// empty (0×0) matrix rather than a panic; callers validate dimensions
// through ValidateShape before decoding.
func NewMatrix(n int) *Matrix {
	if n < 0 {
		n = 0
	}

	return &Matrix{n: n, cells: make([]float64, n*n)}
}

// FromRows builds a Matrix from a square [][]float64. It returns
// ErrDimensionMismatch when any row length differs from the row count.
//
// Complexity: O(n²); the input slices are copied, never retained.
func FromRows(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	m := NewMatrix(n)
	for i, row := range rows {
		if len(row) != n {
			return nil, ErrDimensionMismatch
		}
		copy(m.cells[i*n:(i+1)*n], row)
	}

	return m, nil
}

// N returns the matrix dimension.
func (m *Matrix) N() int { return m.n }

// At returns entry (i, j). Bounds are the caller's responsibility;
// all in-module callers iterate within [0, N).
func (m *Matrix) At(i, j int) float64 { return m.cells[i*m.n+j] }

// Set assigns entry (i, j).
func (m *Matrix) Set(i, j int, v float64) { m.cells[i*m.n+j] = v }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := NewMatrix(m.n)
	copy(out.cells, m.cells)

	return out
}

// ValidateMatrix ensures m is non-nil. Plain sentinel, no wrapping.
func ValidateMatrix(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateShape - composite: NotNil → dimension equals sequence length.
// Use before any decoder that indexes the matrix by sequence position.
func ValidateShape(m *Matrix, s Sequence) error {
	if err := ValidateMatrix(m); err != nil {
		return err
	}
	if m.n != s.Len() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateWindow - composite for padded matrices: NotNil → matrix at
// least as large as the sequence. The Binarizer centers a window of the
// sequence length inside the padded matrix.
func ValidateWindow(m *Matrix, s Sequence) error {
	if err := ValidateMatrix(m); err != nil {
		return err
	}
	if m.n < s.Len() {
		return ErrDimensionMismatch
	}

	return nil
}
