package score

import (
	"errors"
	"fmt"
	"math"

	"github.com/velhart/rnafold/pairing"
)

// ErrBadLength indicates a negative sequence length. A length too small
// for the supplied pair indices surfaces as pairing.ErrBadPair instead.
var ErrBadLength = errors.New("score: invalid sequence length")

// Report is the flat per-sequence scoring record, suitable for one row
// of a results table. Counts are float64 because they feed directly
// into the F1/MCC formulas.
type Report struct {
	TP float64 // predicted pairs present in the reference
	FP float64 // predicted pairs absent from the reference
	TN float64 // pair slots untouched by both
	FN float64 // reference pairs the prediction missed

	F1  float64
	MCC float64

	RefPairs  int
	PredPairs int
}

// Compare scores a predicted PairSet against a reference over a
// sequence of length seqLen.
//
// Definitions (all counts over the L·(L−1)/2 possible pairs):
//
//	tp = |predicted ∩ reference|
//	fp = |predicted| − tp
//	fn = |reference| − tp
//	tn = total − tp − fp − fn
//	sn = tp/(tp+fn), pr = tp/(tp+fp)    (0 when the denominator is 0)
//	f1 = 2·sn·pr/(sn+pr) when tp > 0, else 0
//	mcc = (tp·tn − fp·fn) / √((tp+fp)(tp+fn)(tn+fp)(tn+fn)),
//	      0 when the radicand product is 0
//
// Errors: ErrBadLength when seqLen < 0; pairing.ErrBadPair when a pair
// index falls outside [0, seqLen); pairing.ErrMultiPairing when either
// set reuses a position - references parsed from untrusted files go
// through this check rather than being assumed clean.
//
// Complexity: O(|predicted| + |reference|).
func Compare(predicted, reference pairing.PairSet, seqLen int) (Report, error) {
	if seqLen < 0 {
		return Report{}, ErrBadLength
	}
	if err := predicted.Validate(seqLen); err != nil {
		return Report{}, fmt.Errorf("score: predicted: %w", err)
	}
	if err := reference.Validate(seqLen); err != nil {
		return Report{}, fmt.Errorf("score: reference: %w", err)
	}

	refSet := make(map[pairing.Pair]struct{}, len(reference))
	for _, p := range reference {
		refSet[p] = struct{}{}
	}

	tp := 0.0
	for _, p := range predicted {
		if _, hit := refSet[p]; hit {
			tp++
		}
	}

	total := float64(seqLen) * float64(seqLen-1) / 2
	fp := float64(len(predicted)) - tp
	fn := float64(len(reference)) - tp
	tn := total - tp - fp - fn

	rep := Report{
		TP:        tp,
		FP:        fp,
		TN:        tn,
		FN:        fn,
		RefPairs:  len(reference),
		PredPairs: len(predicted),
	}

	if tp > 0 {
		sn := 0.0
		if tp+fn > 0 {
			sn = tp / (tp + fn)
		}
		pr := 0.0
		if tp+fp > 0 {
			pr = tp / (tp + fp)
		}
		if sn+pr > 0 {
			rep.F1 = 2 * sn * pr / (sn + pr)
		}
	}

	if prod := (tp + fp) * (tp + fn) * (tn + fp) * (tn + fn); prod > 0 {
		rep.MCC = (tp*tn - fp*fn) / math.Sqrt(prod)
	}

	return rep, nil
}
