package pairing

// Sequence is an ordered RNA string over the alphabet {A, C, G, U}.
// It is immutable once constructed (Go strings are immutable); all
// positional indexing in this module is 0-based into the Sequence.
//
// A padding symbol may surround the true sequence inside padded score
// matrices, but a Sequence value itself always holds real bases only -
// windowing logic (decode.Binarize) strips padding before touching it.
type Sequence string

// Len returns the number of bases L.
func (s Sequence) Len() int { return len(s) }

// Base codes: each base maps to a small distinct prime so that the
// product of two codes identifies the unordered pair. The three valid
// products cover Watson–Crick and wobble pairs symmetrically:
//
//	A·U = 2·7 = 14, C·G = 3·5 = 15, G·U = 5·7 = 35.
const (
	codeA = 2
	codeC = 3
	codeG = 5
	codeU = 7

	productAU = codeA * codeU
	productCG = codeC * codeG
	productGU = codeG * codeU
)

// baseCode maps a base symbol to its prime code, or 0 for anything
// outside the alphabet.
func baseCode(b byte) int {
	switch b {
	case 'A':
		return codeA
	case 'C':
		return codeC
	case 'G':
		return codeG
	case 'U':
		return codeU
	default:
		return 0
	}
}

// CanPair reports whether two base symbols form a canonical pair
// (Watson–Crick or wobble), checked symmetrically. Unknown symbols
// never pair.
func CanPair(a, b byte) bool {
	switch baseCode(a) * baseCode(b) {
	case productAU, productCG, productGU:
		return true
	default:
		return false
	}
}

// ValidateSequence checks that every symbol belongs to the alphabet.
// Returns ErrUnknownSymbol on the first violation.
//
// Complexity: O(L).
func ValidateSequence(s Sequence) error {
	for i := 0; i < len(s); i++ {
		if baseCode(s[i]) == 0 {
			return ErrUnknownSymbol
		}
	}

	return nil
}
