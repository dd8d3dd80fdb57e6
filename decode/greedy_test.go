package decode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velhart/rnafold/decode"
	"github.com/velhart/rnafold/pairing"
)

// greedyOpts is the pure-combinatorial baseline for this file: greedy
// strategy, no chemistry, unit distance band.
func greedyOpts() decode.Options {
	opts := decode.DefaultOptions()
	opts.Strategy = decode.Greedy
	opts.MinPairDistance = 1
	opts.Canonicalize = false

	return opts
}

// TestGreedy_TieBreakByFlatIndex - three cells share the top score; the
// row-major flattened index decides, so (0,2) wins over (0,3) and the
// leftover position 1 pairs with 3.
func TestGreedy_TieBreakByFlatIndex(t *testing.T) {
	m := pairing.NewMatrix(4)
	symSet(m, 0, 2, 0.5)
	symSet(m, 0, 3, 0.5)
	symSet(m, 1, 3, 0.5)

	ps, err := decode.Decode(m, "AAAA", greedyOpts())
	require.NoError(t, err)
	assert.Equal(t, pairing.PairSet{{I: 0, J: 2}, {I: 1, J: 3}}, ps)
}

// TestGreedy_ProbThresholdIsStrict - a candidate must score strictly
// above the floor; scores equal to it are filtered.
func TestGreedy_ProbThresholdIsStrict(t *testing.T) {
	m := pairing.NewMatrix(4)
	symSet(m, 0, 3, 0.6)

	opts := greedyOpts()
	opts.ProbThreshold = 0.6
	ps, err := decode.Decode(m, "AAAA", opts)
	require.NoError(t, err)
	assert.Empty(t, ps, "score equal to the floor is not above it")

	opts.ProbThreshold = 0.59
	ps, err = decode.Decode(m, "AAAA", opts)
	require.NoError(t, err)
	assert.Equal(t, pairing.PairSet{{I: 0, J: 3}}, ps)
}

// TestGreedy_NegativeScoresNeverPair - the floor never drops below zero,
// so negative entries are not candidates even with a negative threshold.
func TestGreedy_NegativeScoresNeverPair(t *testing.T) {
	m := pairing.NewMatrix(4)
	symSet(m, 0, 3, -0.5)

	opts := greedyOpts()
	opts.ProbThreshold = -1.0
	ps, err := decode.Decode(m, "AAAA", opts)
	require.NoError(t, err)
	assert.Empty(t, ps)
}

// TestGreedy_TargetPairCountCaps - the cap stops acceptance after N
// pairs in score order; 0 falls back to the structural maximum ⌊L/2⌋.
func TestGreedy_TargetPairCountCaps(t *testing.T) {
	m := pairing.NewMatrix(6)
	symSet(m, 0, 5, 0.9)
	symSet(m, 1, 4, 0.8)
	symSet(m, 2, 3, 0.7)

	opts := greedyOpts()
	opts.TargetPairCount = 1
	ps, err := decode.Decode(m, "AAAAAA", opts)
	require.NoError(t, err)
	assert.Equal(t, pairing.PairSet{{I: 0, J: 5}}, ps, "cap 1 keeps only the best-scoring pair")

	opts.TargetPairCount = 0
	ps, err = decode.Decode(m, "AAAAAA", opts)
	require.NoError(t, err)
	assert.Len(t, ps, 3, "cap 0 means no cap below the structural maximum")
}

// TestGreedy_IsNotOptimal documents the known failure mode: a strong
// middle pair blocks two weaker pairs whose sum is larger. The exact
// decoders recover the optimum on the same input.
func TestGreedy_IsNotOptimal(t *testing.T) {
	m := pairing.NewMatrix(4)
	symSet(m, 0, 1, 1.0)
	symSet(m, 1, 2, 1.5)
	symSet(m, 2, 3, 1.0)

	opts := greedyOpts()
	ps, err := decode.Decode(m, "AAAA", opts)
	require.NoError(t, err)
	assert.Equal(t, pairing.PairSet{{I: 1, J: 2}}, ps, "greedy grabs the single heaviest pair")

	want := pairing.PairSet{{I: 0, J: 1}, {I: 2, J: 3}}

	opts.Strategy = decode.NonCrossingDP
	ps, err = decode.Decode(m, "AAAA", opts)
	require.NoError(t, err)
	assert.Equal(t, want, ps)

	opts.Strategy = decode.WeightedMatching
	ps, err = decode.Decode(m, "AAAA", opts)
	require.NoError(t, err)
	assert.Equal(t, want, ps)
}

// TestGreedy_CanonicalFilterSkipsAndContinues - a top-scoring forbidden
// pair is skipped, not fatal: weaker canonical pairs still decode.
func TestGreedy_CanonicalFilterSkipsAndContinues(t *testing.T) {
	seq := pairing.Sequence("AAGCUU")
	m := pairing.NewMatrix(6)
	symSet(m, 0, 1, 0.9) // A-A, forbidden
	symSet(m, 2, 3, 0.5) // G-C, canonical

	opts := greedyOpts()
	opts.Canonicalize = true
	ps, err := decode.Decode(m, seq, opts)
	require.NoError(t, err)
	assert.Equal(t, pairing.PairSet{{I: 2, J: 3}}, ps)
}
