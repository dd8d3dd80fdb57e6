package decode_test

import (
	"testing"

	"github.com/velhart/rnafold/decode"
	"github.com/velhart/rnafold/pairing"
)

// benchmarkDecode is a helper that decodes a deterministic dense L×L
// matrix under the given strategy. It resets the timer after setup and
// fails on unexpected errors.
func benchmarkDecode(b *testing.B, n int, strategy decode.Strategy) {
	alphabet := []byte{'G', 'C', 'A', 'U'}
	bases := make([]byte, n)
	for i := range bases {
		bases[i] = alphabet[i%len(alphabet)]
	}
	seq := pairing.Sequence(bases)

	m := pairing.NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, float64((i*31+j*17)%97)/97)
		}
	}

	opts := decode.DefaultOptions()
	opts.Strategy = strategy

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := decode.Decode(m, seq, opts); err != nil {
			b.Fatalf("Decode failed: %v", err)
		}
	}
}

// BenchmarkDecode_GreedySmall benchmarks greedy decoding at L=64.
func BenchmarkDecode_GreedySmall(b *testing.B) {
	benchmarkDecode(b, 64, decode.Greedy)
}

// BenchmarkDecode_GreedyMedium benchmarks greedy decoding at L=256.
func BenchmarkDecode_GreedyMedium(b *testing.B) {
	benchmarkDecode(b, 256, decode.Greedy)
}

// BenchmarkDecode_NonCrossingDPSmall benchmarks the interval DP at L=64.
func BenchmarkDecode_NonCrossingDPSmall(b *testing.B) {
	benchmarkDecode(b, 64, decode.NonCrossingDP)
}

// BenchmarkDecode_NonCrossingDPMedium benchmarks the interval DP at L=256.
func BenchmarkDecode_NonCrossingDPMedium(b *testing.B) {
	benchmarkDecode(b, 256, decode.NonCrossingDP)
}

// BenchmarkDecode_WeightedMatchingSmall benchmarks the blossom matching
// at L=64 on a dense positive matrix.
func BenchmarkDecode_WeightedMatchingSmall(b *testing.B) {
	benchmarkDecode(b, 64, decode.WeightedMatching)
}

// BenchmarkDecode_WeightedMatchingMedium benchmarks the blossom matching
// at L=256 on a dense positive matrix.
func BenchmarkDecode_WeightedMatchingMedium(b *testing.B) {
	benchmarkDecode(b, 256, decode.WeightedMatching)
}

// BenchmarkBinarize benchmarks the padded evaluation path at full
// padding width around a 256-base window.
func BenchmarkBinarize(b *testing.B) {
	n := 256
	alphabet := []byte{'G', 'C', 'A', 'U'}
	bases := make([]byte, n)
	for i := range bases {
		bases[i] = alphabet[i%len(alphabet)]
	}
	seq := pairing.Sequence(bases)

	raw := pairing.NewMatrix(decode.MaxSequenceLength)
	beg := (decode.MaxSequenceLength - n) / 2
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			raw.Set(beg+i, beg+j, float64((i*13+j*7)%53)/53)
		}
	}

	opts := decode.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := decode.Binarize(raw, seq, opts); err != nil {
			b.Fatalf("Binarize failed: %v", err)
		}
	}
}
