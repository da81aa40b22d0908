// Public domain.

// Package driftfit fits total power drift scans with a Gaussian profile to
// estimate the transit time, the SEFD metric, and the beam width, and fits
// the declination offset from a set of offset beams.
package driftfit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/soniakeys/unit"
)

// ln16 appears in the Gaussian written with FWHM as the width parameter:
// exp(-4 ln2 (x-x0)²/w²).
var ln16 = 4 * math.Log(2)

// Profile holds fitted drift scan model parameters
//
//	P(t) = Height exp(-4 ln2 (t-Center)²/Width²) + Slope (t-Center) + Offset
//
// with times in seconds.  Slope is zero unless the linear baseline term
// was requested.
type Profile struct {
	Height float64
	Center float64
	Width  float64 // FWHM, seconds
	Offset float64
	Slope  float64
}

// Eval evaluates the model at time t.
func (p Profile) Eval(t float64) float64 {
	d := t - p.Center
	return p.Height*math.Exp(-ln16*d*d/(p.Width*p.Width)) + p.Offset + p.Slope*d
}

// SEFDMetric returns 1/(P1/P0 - 1), the off-source to on-source power
// ratio term.  Multiplying by the source flux gives the SEFD.
func (p Profile) SEFDMetric() float64 {
	return p.Offset / p.Height
}

// WidthAngle converts the fitted width from seconds of transit time to an
// angle on the sky for a source at declination dec.
func WidthAngle(widthSec float64, dec unit.Angle) unit.Angle {
	return unit.AngleFromDeg(widthSec / 3600 * 15 * dec.Cos())
}

// FitDriftscan fits the total power series power(t) with a Gaussian plus
// baseline.  With linear set, the baseline includes a slope term.  The fit
// is seeded from the data extrema, so a profile with the peak somewhere in
// the scan window converges without help.
func FitDriftscan(t, power []float64, linear bool) (Profile, error) {
	if len(t) != len(power) {
		return Profile{}, fmt.Errorf("driftfit: %d times, %d powers", len(t), len(power))
	}
	if len(t) < 5 {
		return Profile{}, errors.New("driftfit: too few samples")
	}

	// work in seconds from scan start; unix offsets are large enough to
	// stall the simplex otherwise
	t0 := t[0]
	ts := make([]float64, len(t))
	var tMean float64
	for i, v := range t {
		ts[i] = v - t0
		tMean += ts[i]
	}
	tMean /= float64(len(ts))

	lo, hi := power[0], power[0]
	for _, v := range power {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	p0 := []float64{hi - lo, tMean, 1000, lo}
	if linear {
		p0 = append(p0, 0)
	}
	x, err := minimizeSSE(ts, power, p0, func(p []float64) Profile {
		pr := Profile{Height: p[0], Center: p[1], Width: p[2], Offset: p[3]}
		if len(p) > 4 {
			pr.Slope = p[4]
		}
		return pr
	})
	if err != nil {
		return Profile{}, fmt.Errorf("driftfit: %v", err)
	}
	pr := Profile{Height: x[0], Center: x[1] + t0, Width: math.Abs(x[2]), Offset: x[3]}
	if linear {
		pr.Slope = x[4]
	}
	return pr, nil
}

// FitDecOffset fits the peak powers seen at a set of declination offsets
// with a Gaussian of fixed width fwhm and returns the fitted center, the
// declination pointing error.  Offsets, fwhm, and the result share units
// (degrees in practice).  Holding the width fixed lets three beams
// constrain the fit.
func FitDecOffset(offsets, powers []float64, fwhm float64) (float64, error) {
	if len(offsets) != len(powers) || len(offsets) < 3 {
		return 0, errors.New("driftfit: need at least 3 offset beams")
	}
	if !(fwhm > 0) {
		return 0, errors.New("driftfit: need a positive FWHM")
	}

	lo, hi := powers[0], powers[0]
	for _, v := range powers {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	p0 := []float64{hi - lo, 0, lo}
	x, err := minimizeSSE(offsets, powers, p0, func(p []float64) Profile {
		return Profile{Height: p[0], Center: p[1], Width: fwhm, Offset: p[2]}
	})
	if err != nil {
		return 0, fmt.Errorf("driftfit: %v", err)
	}
	return x[1], nil
}

// FitCut fits power sampled along a coordinate cut of a basket weave
// with a Gaussian plus offset.  The width is free and seeded at width0;
// x, width0, and the fitted Center and Width share units.
func FitCut(x, power []float64, width0 float64) (Profile, error) {
	if len(x) != len(power) {
		return Profile{}, fmt.Errorf("driftfit: %d coordinates, %d powers", len(x), len(power))
	}
	if len(x) < 5 {
		return Profile{}, errors.New("driftfit: too few cut points")
	}

	var xMean float64
	for _, v := range x {
		xMean += v
	}
	xMean /= float64(len(x))
	lo, hi := power[0], power[0]
	for _, v := range power {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	p0 := []float64{hi - lo, xMean, width0, lo}
	p, err := minimizeSSE(x, power, p0, func(p []float64) Profile {
		return Profile{Height: p[0], Center: p[1], Width: p[2], Offset: p[3]}
	})
	if err != nil {
		return Profile{}, fmt.Errorf("driftfit: %v", err)
	}
	return Profile{Height: p[0], Center: p[1], Width: math.Abs(p[2]), Offset: p[3]}, nil
}

// minimizeSSE runs Nelder-Mead on the sum of squared residuals of the
// model built from the parameter vector by mk.
func minimizeSSE(x, y []float64, p0 []float64, mk func([]float64) Profile) ([]float64, error) {
	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			pr := mk(p)
			var sse float64
			for i, xi := range x {
				r := y[i] - pr.Eval(xi)
				sse += r * r
			}
			return sse
		},
	}
	res, err := optimize.Minimize(problem, p0, nil, &optimize.NelderMead{})
	if err != nil {
		return nil, err
	}
	if err = res.Status.Err(); err != nil {
		return nil, err
	}
	return res.X, nil
}

// WrapSidereal wraps a time difference in seconds to ±half a sidereal
// day, so an offset measured across a day boundary lands near zero.
func WrapSidereal(dt float64) float64 {
	const day = 86164.090530833
	dt = math.Mod(dt, day)
	switch {
	case dt >= day/2:
		dt -= day
	case dt <= -day/2:
		dt += day
	}
	return dt
}
