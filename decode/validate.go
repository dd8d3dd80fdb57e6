// Package decode - staged validation shared by Decode and Binarize.
//
// Design principles (matching the rest of the module):
//   - Deterministic, side-effect free checks.
//   - No logging, no panics on user input - only sentinel errors.
//   - All fatal conditions surface before any computation begins; no
//     partial results ever escape a failed call.
package decode

import (
	"fmt"
	"math"

	"github.com/velhart/rnafold/pairing"
)

// validateOptions checks internal consistency of Options without
// referencing matrices or sequences.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// A negative band is undefined; 0 is allowed (diagonal still excluded).
	if opts.MinPairDistance < 0 {
		return fmt.Errorf("validateOptions: MinPairDistance: %w", ErrBadOptions)
	}
	// A negative cap would silently decode nothing; reject loudly.
	if opts.TargetPairCount < 0 {
		return fmt.Errorf("validateOptions: TargetPairCount: %w", ErrBadOptions)
	}
	// NaN thresholds poison every comparison; infinities are pointless.
	if math.IsNaN(opts.ProbThreshold) || math.IsInf(opts.ProbThreshold, 0) {
		return fmt.Errorf("validateOptions: ProbThreshold: %w", ErrBadOptions)
	}
	// Closed strategy set; anything else is a config bug at the caller.
	switch opts.Strategy {
	case Greedy, NonCrossingDP, WeightedMatching:
		// ok
	default:
		return fmt.Errorf("validateOptions: %w", ErrBadStrategy)
	}

	return nil
}

// validateDecodeInput - composite: options → shape → length bound →
// alphabet (only when chemistry is consulted).
//
// Complexity: O(L).
func validateDecodeInput(m *pairing.Matrix, seq pairing.Sequence, opts Options) error {
	if err := validateOptions(opts); err != nil {
		return err
	}
	if err := pairing.ValidateShape(m, seq); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if seq.Len() > MaxSequenceLength {
		return fmt.Errorf("decode: L=%d: %w", seq.Len(), ErrTooLong)
	}
	if opts.Canonicalize {
		if err := pairing.ValidateSequence(seq); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
	}

	return nil
}

// validateBinarizeInput mirrors validateDecodeInput for the padded-matrix
// entry point: the matrix may be larger than the sequence, never smaller.
//
// Complexity: O(L).
func validateBinarizeInput(m *pairing.Matrix, seq pairing.Sequence, opts Options) error {
	if err := validateOptions(opts); err != nil {
		return err
	}
	if err := pairing.ValidateWindow(m, seq); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if seq.Len() > MaxSequenceLength {
		return fmt.Errorf("decode: L=%d: %w", seq.Len(), ErrTooLong)
	}
	if opts.Canonicalize {
		if err := pairing.ValidateSequence(seq); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
	}

	return nil
}
