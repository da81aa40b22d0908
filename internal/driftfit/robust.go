// Public domain.

package driftfit

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Interference shows up in drift scans as isolated spikes far off the
// slowly varying profile.  Clean flags samples more than nsigma robust
// standard deviations from the robust mean of a sliding window and
// replaces them with the local robust mean, the same repair the original
// reduction applied.  Robust here is median and scaled MAD.

// Clean despikes the series in place and returns it.  window is the
// sliding window length in samples (an odd 201 works well for second
// cadence data); nsigma the rejection threshold.
func Clean(x []float64, window int, nsigma float64) []float64 {
	if window < 3 || len(x) < window {
		return x
	}
	var bad []int
	seen := make(map[int]bool)
	for start := 0; start+window <= len(x); start++ {
		w := x[start : start+window]
		m, s := robustMoments(w)
		if s == 0 {
			continue
		}
		for j, v := range w {
			if math.Abs(v-m) > nsigma*s && !seen[start+j] {
				seen[start+j] = true
				bad = append(bad, start+j)
			}
		}
	}
	for _, b := range bad {
		lo := b - 10
		if lo < 0 {
			lo = 0
		}
		hi := b + 10
		if hi > len(x) {
			hi = len(x)
		}
		m, _ := robustMoments(x[lo:hi])
		x[b] = m
	}
	return x
}

// RobustMean returns an outlier resistant location estimate of x, the
// median.  The basket weave reduction averages the integrations of each
// step with it so a stray interference spike cannot pull a step power.
func RobustMean(x []float64) float64 {
	m, _ := robustMoments(x)
	return m
}

// robustMoments returns the median and the MAD scaled to estimate a
// standard deviation for normal data.
func robustMoments(w []float64) (m, s float64) {
	tmp := make([]float64, len(w))
	copy(tmp, w)
	sort.Float64s(tmp)
	m = stat.Quantile(0.5, stat.Empirical, tmp, nil)
	for i, v := range tmp {
		tmp[i] = math.Abs(v - m)
	}
	sort.Float64s(tmp)
	s = 1.4826 * stat.Quantile(0.5, stat.Empirical, tmp, nil)
	return
}
