// Package decode defines the strategy enum, decode options and sentinel
// errors shared by all decoders.
package decode

import "errors"

// ErrBadStrategy indicates an unknown Strategy tag in Options.
var ErrBadStrategy = errors.New("decode: unknown strategy")

// ErrBadOptions indicates contradictory or out-of-range options
// (negative MinPairDistance, negative TargetPairCount, non-finite
// ProbThreshold).
var ErrBadOptions = errors.New("decode: invalid options")

// ErrTooLong indicates a sequence longer than MaxSequenceLength; the
// cubic decoders must not run on unbounded input.
var ErrTooLong = errors.New("decode: sequence exceeds MaxSequenceLength")

// MaxSequenceLength bounds the decoders' O(L²)–O(L³) cost at the call
// boundary. It matches the fixed padding size of the surrounding
// training system.
const MaxSequenceLength = 512

// DefaultMinPairDistance is the smallest backbone separation |i-j| a
// real pair can have: a strand cannot fold back within 3 residues.
const DefaultMinPairDistance = 4

// Strategy selects the combinatorial decoding algorithm. The set is
// closed: dispatch is a switch over these tags, never name lookup.
type Strategy int

const (
	// Greedy assigns pairs by descending score, one pair per position.
	Greedy Strategy = iota

	// NonCrossingDP computes the exact maximum-weight nested structure
	// (no pseudoknots) by interval dynamic programming.
	NonCrossingDP

	// WeightedMatching computes a maximum-weight general matching with
	// Edmonds' blossom algorithm; pseudoknots are representable.
	WeightedMatching
)

// String returns the tag name, for error messages and table output.
func (s Strategy) String() string {
	switch s {
	case Greedy:
		return "greedy"
	case NonCrossingDP:
		return "noncrossing-dp"
	case WeightedMatching:
		return "weighted-matching"
	default:
		return "unknown"
	}
}

// Options configures a decode call.
//
// Fields:
//   - Strategy        - which decoder runs (see Strategy).
//   - MinPairDistance - minimum |i-j| for a valid pair; entries inside
//     the band are zeroed before decoding. Default 4.
//   - Symmetrize      - average the matrix with its transpose first.
//   - Canonicalize    - restrict to chemically valid pairs {AU, CG, GU}.
//   - TargetPairCount - cap on accepted pairs for Greedy and Binarize;
//     0 means ⌊L/2⌋. Ignored by the exact decoders, which optimize
//     total weight instead.
//   - ProbThreshold   - score floor: a candidate needs score strictly
//     above max(0, ProbThreshold). Default 0.
//
// Use DefaultOptions() and override fields as needed.
type Options struct {
	Strategy        Strategy
	MinPairDistance int
	Symmetrize      bool
	Canonicalize    bool
	TargetPairCount int
	ProbThreshold   float64
}

// DefaultOptions returns the evaluation defaults: greedy decoding with
// both structural filters enabled, the standard distance band, no pair
// cap and a zero score floor.
//
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		Strategy:        Greedy,
		MinPairDistance: DefaultMinPairDistance,
		Symmetrize:      true,
		Canonicalize:    true,
		TargetPairCount: 0,
		ProbThreshold:   0,
	}
}

// floor is the effective score floor: candidates must score strictly
// above it. A zero or negative entry is never a pair, so the floor
// never drops below zero.
func (o Options) floor() float64 {
	if o.ProbThreshold > 0 {
		return o.ProbThreshold
	}

	return 0
}

// maxPairs resolves TargetPairCount against sequence length L:
// 0 means the structural maximum ⌊L/2⌋.
func (o Options) maxPairs(seqLen int) int {
	if o.TargetPairCount > 0 && o.TargetPairCount < seqLen/2 {
		return o.TargetPairCount
	}

	return seqLen / 2
}
