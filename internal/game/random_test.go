package game

import (
	"testing"

	"github.com/stellar-explorer/stellar_explorer/internal/catalog"
)

func TestWeightedIndexEdges(t *testing.T) {
	weights := []float64{1, 0, 3}
	tests := []struct {
		f    float64
		want int
	}{
		{0, 0},
		{0.2499, 0},
		{0.25, 2},
		{0.9999, 2},
	}
	for _, tt := range tests {
		if got := WeightedIndex(fixedRand{f: tt.f}, weights); got != tt.want {
			t.Errorf("WeightedIndex(f=%v) = %d, want %d", tt.f, got, tt.want)
		}
	}

	if got := WeightedIndex(fixedRand{f: 0.5}, []float64{0, 0}); got != -1 {
		t.Errorf("all-zero weights = %d, want -1", got)
	}
}

// TestWeightedIndexDistribution runs a chi-squared goodness-of-fit test
// of the star kind sampler against the configured weights.
func TestWeightedIndexDistribution(t *testing.T) {
	const draws = 10000
	// chi-squared critical value, 10 degrees of freedom, p = 0.0001
	const critical = 35.56

	weights := catalog.StarWeights()
	total := 0.0
	for _, w := range weights {
		total += w
	}

	rng := NewRand(2024)
	counts := make([]int, len(weights))
	for i := 0; i < draws; i++ {
		counts[WeightedIndex(rng, weights)]++
	}

	chi2 := 0.0
	for i, w := range weights {
		expected := draws * w / total
		d := float64(counts[i]) - expected
		chi2 += d * d / expected
	}
	if chi2 > critical {
		t.Errorf("chi-squared = %.2f exceeds %.2f; counts = %v", chi2, critical, counts)
	}
}
