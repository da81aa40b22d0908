// Public domain.

package pointfit

import (
	"errors"
	"math"
	"testing"

	xrand "golang.org/x/exp/rand"

	"github.com/soniakeys/unit"
)

// synthGrid builds nAz*3 measurements over a spread of the visible sky
// with the measured directions displaced from the commanded ones by rot.
func synthGrid(rot Rotation, nAz int) []Pointing {
	var data []Pointing
	for k := 0; k < nAz; k++ {
		az := 360 * float64(k) / float64(nAz)
		for _, el := range []float64{35, 55, 75} {
			p := Pointing{
				Az: unit.AngleFromDeg(az),
				El: unit.AngleFromDeg(el),
			}
			p.MeasAz, p.MeasEl = rot.Apply(p.Az, p.El)
			data = append(data, p)
		}
	}
	return data
}

func synthRun(rot Rotation) []Pointing {
	return synthGrid(rot, 8)
}

func TestApplyIdentity(t *testing.T) {
	var rot Rotation
	az, el := rot.Apply(unit.AngleFromDeg(123.4), unit.AngleFromDeg(56.7))
	if math.Abs(az.Deg()-123.4) > 1e-9 || math.Abs(el.Deg()-56.7) > 1e-9 {
		t.Errorf("identity moved pointing to %.6f, %.6f", az.Deg(), el.Deg())
	}
}

func TestAxisUnit(t *testing.T) {
	r := Rotation{Theta: unit.AngleFromDeg(37), Phi: unit.AngleFromDeg(211)}
	a := r.Axis()
	if d := math.Abs(a.Square() - 1); d > 1e-12 {
		t.Errorf("axis norm² off by %g", d)
	}
}

func TestFitRecoversRotation(t *testing.T) {
	want := Rotation{
		Theta: unit.AngleFromDeg(30),
		Phi:   unit.AngleFromDeg(120),
		Psi:   unit.AngleFromDeg(4),
	}
	data := synthRun(want)

	got, rms, err := Fit(data, DefaultOptions)
	if err != nil {
		t.Fatal(err)
	}
	if d := math.Abs(got.Theta.Deg() - 30); d > 0.2 {
		t.Errorf("theta %.2f, want 30", got.Theta.Deg())
	}
	if d := math.Abs(got.Phi.Deg() - 120); d > 0.2 {
		t.Errorf("phi %.2f, want 120", got.Phi.Deg())
	}
	if d := math.Abs(got.Psi.Deg() - 4); d > 0.1 {
		t.Errorf("psi %.2f, want 4", got.Psi.Deg())
	}
	if rms.Deg() > 0.01 {
		t.Errorf("residual RMS %.4f deg after exact synthetic fit", rms.Deg())
	}
	// the fit strictly improves on no correction
	if raw := RMS(data, Rotation{}); raw <= rms {
		t.Errorf("raw RMS %.4f not above fitted RMS %.4f", raw.Deg(), rms.Deg())
	}
}

func TestFitNoisy(t *testing.T) {
	want := Rotation{
		Theta: unit.AngleFromDeg(30),
		Phi:   unit.AngleFromDeg(120),
		Psi:   unit.AngleFromDeg(4),
	}
	data := synthRun(want)

	rng := xrand.New(xrand.NewSource(1))
	for i := range data {
		data[i].MeasAz += unit.AngleFromDeg(rng.NormFloat64() * 0.05)
		data[i].MeasEl += unit.AngleFromDeg(rng.NormFloat64() * 0.05)
	}

	got, rms, err := Fit(data, DefaultOptions)
	if err != nil {
		t.Fatal(err)
	}
	if d := math.Abs(got.Psi.Deg() - 4); d > 0.5 {
		t.Errorf("psi %.2f, want 4 within 0.5", got.Psi.Deg())
	}
	if rms.Deg() > 0.2 {
		t.Errorf("residual RMS %.4f deg too large for 0.05 deg noise", rms.Deg())
	}
}

// TestFitConsistency checks that the recovery error of a noisy fit
// shrinks as the number of measurements grows.
func TestFitConsistency(t *testing.T) {
	want := Rotation{
		Theta: unit.AngleFromDeg(30),
		Phi:   unit.AngleFromDeg(120),
		Psi:   unit.AngleFromDeg(4),
	}
	noisy := func(nAz int, seed uint64) []Pointing {
		data := synthGrid(want, nAz)
		rng := xrand.New(xrand.NewSource(seed))
		for i := range data {
			data[i].MeasAz += unit.AngleFromDeg(rng.NormFloat64())
			data[i].MeasEl += unit.AngleFromDeg(rng.NormFloat64())
		}
		return data
	}
	// misfit measures a fitted rotation against the true one as the
	// residual RMS it leaves on clean synthetic measurements
	clean := synthGrid(want, 8)
	misfit := func(got Rotation) float64 {
		return RMS(clean, got).Deg()
	}

	var small, large float64
	for seed := uint64(1); seed <= 3; seed++ {
		gs, _, err := Fit(noisy(8, seed), DefaultOptions)
		if err != nil {
			t.Fatal(err)
		}
		gl, _, err := Fit(noisy(32, seed+10), DefaultOptions)
		if err != nil {
			t.Fatal(err)
		}
		small += misfit(gs)
		large += misfit(gl)
	}
	if large >= small {
		t.Errorf("mean recovery error %.3f deg with 96 measurements, %.3f with 24",
			large/3, small/3)
	}
	if small/3 > 1 {
		t.Errorf("mean recovery error %.3f deg too large for 1 deg noise", small/3)
	}
}

func TestFitTooFew(t *testing.T) {
	data := synthRun(Rotation{Psi: unit.AngleFromDeg(2)})[:2]
	_, _, err := Fit(data, DefaultOptions)
	var dgn *DegenerateError
	if !errors.As(err, &dgn) {
		t.Fatalf("expected DegenerateError, got %v", err)
	}
	if dgn.N != 2 || dgn.Spread != -1 {
		t.Errorf("unexpected error detail: %+v", dgn)
	}
}

func TestFitCoincident(t *testing.T) {
	// plenty of measurements, all the same direction
	one := Pointing{
		Az:     unit.AngleFromDeg(180),
		El:     unit.AngleFromDeg(60),
		MeasAz: unit.AngleFromDeg(180.5),
		MeasEl: unit.AngleFromDeg(60.2),
	}
	data := make([]Pointing, 8)
	for i := range data {
		data[i] = one
	}
	_, _, err := Fit(data, DefaultOptions)
	var dgn *DegenerateError
	if !errors.As(err, &dgn) {
		t.Fatalf("expected DegenerateError, got %v", err)
	}
	if dgn.Spread < 0 || dgn.Spread >= DefaultOptions.MinSpread {
		t.Errorf("unexpected spread %g", dgn.Spread)
	}
}

func TestRMSZero(t *testing.T) {
	data := synthRun(Rotation{})
	// the az/el to Cart and back round trip leaves a few nrad of noise
	if rms := RMS(data, Rotation{}); rms.Rad() > 1e-7 {
		t.Errorf("RMS %.6g rad on perfect pointing", rms.Rad())
	}
}
