package bpseq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/velhart/rnafold/pairing"
)

// ErrBadLine indicates a data line that does not parse as
// "<pos> <base> <partner>" with integer pos/partner and a one-symbol base.
var ErrBadLine = errors.New("bpseq: malformed line")

// ErrInconsistent indicates structurally impossible data: positions out
// of order or duplicated, partners out of range, self-pairing, or a
// pairing that the partner's own line does not reciprocate.
var ErrInconsistent = errors.New("bpseq: inconsistent structure")

// Parse reads a bpseq document and returns the sequence plus its
// 0-indexed PairSet, sorted ascending.
//
// Contracts:
//   - Lines must cover positions 1..L contiguously, in order.
//   - partner 0 marks an unpaired position; otherwise the partner line
//     must point back (reciprocity), which makes the matching invariant
//     hold by construction.
//
// Errors: ErrBadLine, ErrInconsistent (both wrapped with line context),
// and any underlying reader error.
//
// Complexity: O(L) time and space.
func Parse(r io.Reader) (pairing.Sequence, pairing.PairSet, error) {
	var (
		bases    []byte
		partners []int // 1-indexed, 0 = unpaired
	)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return "", nil, fmt.Errorf("line %d: %w", lineNo, ErrBadLine)
		}
		pos, err := strconv.Atoi(fields[0])
		if err != nil {
			return "", nil, fmt.Errorf("line %d: pos: %w", lineNo, ErrBadLine)
		}
		if len(fields[1]) != 1 {
			return "", nil, fmt.Errorf("line %d: base: %w", lineNo, ErrBadLine)
		}
		partner, err := strconv.Atoi(fields[2])
		if err != nil {
			return "", nil, fmt.Errorf("line %d: partner: %w", lineNo, ErrBadLine)
		}
		if pos != len(bases)+1 {
			return "", nil, fmt.Errorf("line %d: position %d out of order: %w", lineNo, pos, ErrInconsistent)
		}
		if partner < 0 || partner == pos {
			return "", nil, fmt.Errorf("line %d: partner %d: %w", lineNo, partner, ErrInconsistent)
		}
		bases = append(bases, fields[1][0])
		partners = append(partners, partner)
	}
	if err := sc.Err(); err != nil {
		return "", nil, err
	}

	n := len(partners)
	out := make(pairing.PairSet, 0, n/2)
	for i, partner := range partners {
		if partner == 0 {
			continue
		}
		if partner > n {
			return "", nil, fmt.Errorf("position %d: partner %d exceeds length %d: %w", i+1, partner, n, ErrInconsistent)
		}
		if partners[partner-1] != i+1 {
			return "", nil, fmt.Errorf("position %d: partner %d does not reciprocate: %w", i+1, partner, ErrInconsistent)
		}
		if partner > i+1 { // emit each pair once, from its smaller side
			out = append(out, pairing.Pair{I: i, J: partner - 1})
		}
	}
	out.Sort()

	return pairing.Sequence(bases), out, nil
}

// ParseString is a convenience wrapper over Parse for in-memory fixtures.
func ParseString(s string) (pairing.Sequence, pairing.PairSet, error) {
	return Parse(strings.NewReader(s))
}

// Encode serializes a sequence and its structure to bpseq text, one line
// per position, newline-terminated. Deterministic inverse of Parse.
//
// Errors: pairing.ErrBadPair / pairing.ErrMultiPairing when ps does not
// fit the sequence.
//
// Complexity: O(L) time and space.
func Encode(seq pairing.Sequence, ps pairing.PairSet) (string, error) {
	if err := ps.Validate(seq.Len()); err != nil {
		return "", fmt.Errorf("bpseq: %w", err)
	}

	partners := make([]int, seq.Len())
	for _, p := range ps {
		partners[p.I] = p.J + 1
		partners[p.J] = p.I + 1
	}

	var sb strings.Builder
	for i := 0; i < seq.Len(); i++ {
		fmt.Fprintf(&sb, "%d %c %d\n", i+1, seq[i], partners[i])
	}

	return sb.String(), nil
}
