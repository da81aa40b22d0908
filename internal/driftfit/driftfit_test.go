// Public domain.

package driftfit

import (
	"math"
	"testing"

	"github.com/soniakeys/unit"
)

// synthetic drift scan: unit height Gaussian over a two hour window
func synthScan(center, width, offset, slope float64) (t, p []float64) {
	t0 := 1.5e9
	for i := 0; i < 720; i++ {
		ti := t0 + float64(i)*10
		t = append(t, ti)
		d := ti - center
		p = append(p, math.Exp(-ln16*d*d/(width*width))+offset+slope*d)
	}
	return
}

func TestFitDriftscan(t *testing.T) {
	center := 1.5e9 + 3600
	width := 900.0
	ts, ps := synthScan(center, width, 0.2, 0)

	pr, err := FitDriftscan(ts, ps, false)
	if err != nil {
		t.Fatal(err)
	}
	if d := math.Abs(pr.Center - center); d > 1 {
		t.Errorf("center off by %.2f s", d)
	}
	if d := math.Abs(pr.Width - width); d > 10 {
		t.Errorf("width %.2f, want %.2f", pr.Width, width)
	}
	if d := math.Abs(pr.Height - 1); d > 0.01 {
		t.Errorf("height %.3f, want 1", pr.Height)
	}
	if d := math.Abs(pr.SEFDMetric() - 0.2); d > 0.01 {
		t.Errorf("SEFD metric %.3f, want 0.2", pr.SEFDMetric())
	}
}

func TestFitDriftscanLinear(t *testing.T) {
	center := 1.5e9 + 3600
	ts, ps := synthScan(center, 900, 0.2, 1e-5)

	pr, err := FitDriftscan(ts, ps, true)
	if err != nil {
		t.Fatal(err)
	}
	if d := math.Abs(pr.Center - center); d > 5 {
		t.Errorf("center off by %.2f s", d)
	}
	if d := math.Abs(pr.Slope - 1e-5); d > 2e-6 {
		t.Errorf("slope %.2e, want 1e-5", pr.Slope)
	}
}

func TestFitDriftscanErrors(t *testing.T) {
	if _, err := FitDriftscan([]float64{1, 2}, []float64{1}, false); err == nil {
		t.Error("length mismatch accepted")
	}
	if _, err := FitDriftscan([]float64{1, 2}, []float64{1, 2}, false); err == nil {
		t.Error("short scan accepted")
	}
}

func TestFitDecOffset(t *testing.T) {
	fwhm := 2.2
	center := 0.3
	offsets := []float64{-1, 0, 1}
	powers := make([]float64, len(offsets))
	for i, o := range offsets {
		d := o - center
		powers[i] = 0.9*math.Exp(-ln16*d*d/(fwhm*fwhm)) + 0.1
	}
	got, err := FitDecOffset(offsets, powers, fwhm)
	if err != nil {
		t.Fatal(err)
	}
	if d := math.Abs(got - center); d > 0.02 {
		t.Errorf("dec offset %.3f, want %.3f", got, center)
	}

	if _, err = FitDecOffset(offsets[:2], powers[:2], fwhm); err == nil {
		t.Error("two beams accepted")
	}
	if _, err = FitDecOffset(offsets, powers, -1); err == nil {
		t.Error("negative FWHM accepted")
	}
}

func TestFitCut(t *testing.T) {
	// a basket weave declination cut: offsets -4..4 by half degrees
	// through a beam centered 0.3 deg off
	center := 0.3
	width := 2.1
	var x, y []float64
	for o := -4.0; o <= 4; o += 0.5 {
		d := o - center
		x = append(x, o)
		y = append(y, 0.8*math.Exp(-ln16*d*d/(width*width))+0.15)
	}

	pr, err := FitCut(x, y, 2)
	if err != nil {
		t.Fatal(err)
	}
	if d := math.Abs(pr.Center - center); d > 0.02 {
		t.Errorf("center %.3f, want %.3f", pr.Center, center)
	}
	if d := math.Abs(pr.Width - width); d > 0.05 {
		t.Errorf("width %.3f, want %.3f", pr.Width, width)
	}
	if d := math.Abs(pr.SEFDMetric() - 0.15/0.8); d > 0.01 {
		t.Errorf("SEFD metric %.3f, want %.3f", pr.SEFDMetric(), 0.15/0.8)
	}

	if _, err = FitCut(x[:3], y[:3], 2); err == nil {
		t.Error("three point cut accepted")
	}
	if _, err = FitCut(x, y[:5], 2); err == nil {
		t.Error("length mismatch accepted")
	}
}

func TestRobustMean(t *testing.T) {
	x := []float64{1, 1.1, 0.9, 1.05, 0.95, 1e6}
	if m := RobustMean(x); math.Abs(m-1) > 0.1 {
		t.Errorf("robust mean %g pulled by the outlier", m)
	}
}

func TestWidthAngle(t *testing.T) {
	// a source on the celestial equator drifts 15 deg per hour
	got := WidthAngle(3600, unit.Angle(0))
	if d := math.Abs(got.Deg() - 15); d > 1e-9 {
		t.Errorf("width %.6f deg, want 15", got.Deg())
	}
	// at dec 60 the drift rate is halved
	got = WidthAngle(3600, unit.AngleFromDeg(60))
	if d := math.Abs(got.Deg() - 7.5); d > 1e-9 {
		t.Errorf("width %.6f deg, want 7.5", got.Deg())
	}
}

func TestWrapSidereal(t *testing.T) {
	const day = 86164.090530833
	for _, tc := range []struct{ in, want float64 }{
		{0, 0},
		{10, 10},
		{-10, -10},
		{day, 0},
		{day + 25, 25},
		{-day - 25, -25},
		{day/2 + 1, 1 - day/2},
	} {
		if got := WrapSidereal(tc.in); math.Abs(got-tc.want) > 1e-6 {
			t.Errorf("WrapSidereal(%g) = %g, want %g", tc.in, got, tc.want)
		}
	}
}

func TestClean(t *testing.T) {
	x := make([]float64, 1000)
	for i := range x {
		x[i] = 100 + 0.1*math.Sin(float64(i)/50)
	}
	x[300] = 1e6
	x[301] = -1e6
	first, last := x[0], x[999]

	got := Clean(x, 201, 4)
	for _, i := range []int{300, 301} {
		if math.Abs(got[i]-100) > 1 {
			t.Errorf("sample %d not despiked: %g", i, got[i])
		}
	}
	// untouched samples pass through
	if got[0] != first || got[999] != last {
		t.Error("clean modified unflagged samples")
	}
}
