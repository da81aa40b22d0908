// Public domain.

// Package pointfit fits a set of pointing error measurements with a
// single rigid rotation of the antenna pointing model.
//
// Each measurement pairs a commanded direction, where the antenna was
// told to point, with a measured direction, where the sky says it was
// actually pointing.  Fit searches for the rotation about an axis that
// best maps commanded onto measured directions in a least squares sense.
// The search is a staged grid refinement with a fixed iteration order, so
// the result is deterministic for fixed input.
package pointfit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"
)

// Pointing is one pointing error measurement in horizontal coordinates.
type Pointing struct {
	Name           string
	Az, El         unit.Angle // commanded direction
	MeasAz, MeasEl unit.Angle // measured direction
}

// Options bounds the fit.  The degeneracy gates exist because a rotation
// fit on too few or nearly coincident directions is unstable: the solver
// would still return an axis, but not a meaningful one.
type Options struct {
	// MinDirections is the minimum number of measurements.  Fewer than
	// 3 cannot constrain all three rotation parameters.
	MinDirections int

	// MinSpread is the minimum angular spread of the commanded
	// directions, measured as the second largest eigenvalue of the
	// direction scatter matrix (1/N) Σ v vᵀ.  Coincident directions
	// score 0; directions spread over the visible sky score ~0.1 or
	// more.  The historical reduction hard coded this judgement; here
	// it is explicit.
	MinSpread float64
}

// DefaultOptions are the gates used by the fitaxis command.
var DefaultOptions = Options{MinDirections: 3, MinSpread: 0.02}

// A DegenerateError reports input that cannot constrain the rotation.
type DegenerateError struct {
	N      int     // number of measurements
	Spread float64 // scatter eigenvalue, -1 when N alone is the problem
}

func (e *DegenerateError) Error() string {
	if e.Spread < 0 {
		return fmt.Sprintf("pointfit: %d measurements, need at least 3 independent directions", e.N)
	}
	return fmt.Sprintf("pointfit: commanded directions nearly coincident (spread %.4f)", e.Spread)
}

// RMS returns the root mean square angular separation between measured
// directions and commanded directions corrected by rot.  The zero
// Rotation gives the raw pointing error RMS.
func RMS(data []Pointing, rot Rotation) unit.Angle {
	cmd, meas := carts(data)
	return unit.Angle(rmsCart(cmd, meas, rot))
}

// Fit searches for the rotation minimizing RMS.  It returns a
// *DegenerateError when the input cannot constrain a rotation, and never
// returns a rotation in that case.
//
// The search runs three grid levels: 2° steps over the full axis space
// with 1° rotation steps, then 1°/0.5° steps around the level 1 minimum,
// then 0.1° steps.  The returned RMS is the cost at the final minimum.
func Fit(data []Pointing, opt Options) (Rotation, unit.Angle, error) {
	if opt.MinDirections < 3 {
		opt.MinDirections = 3
	}
	if opt.MinSpread <= 0 {
		opt.MinSpread = DefaultOptions.MinSpread
	}
	if len(data) < opt.MinDirections {
		return Rotation{}, 0, &DegenerateError{N: len(data), Spread: -1}
	}
	cmd, meas := carts(data)
	if s := spread(cmd); s < opt.MinSpread {
		return Rotation{}, 0, &DegenerateError{N: len(data), Spread: s}
	}

	// all grid values in degrees
	best, bestRMS := searchGrid(cmd, meas,
		seq(0, 90, 2), seq(0, 360, 2), seq(-10, 10.5, 1),
		Rotation{}, math.Inf(1))
	best, bestRMS = searchGrid(cmd, meas,
		around(best.Theta, 4, 1), around(best.Phi, 4, 1), around(best.Psi, 2, 0.5),
		best, bestRMS)
	best, bestRMS = searchGrid(cmd, meas,
		around(best.Theta, 2, 0.1), around(best.Phi, 2, 0.1), around(best.Psi, 1, 0.1),
		best, bestRMS)

	return best, unit.Angle(bestRMS), nil
}

func carts(data []Pointing) (cmd, meas []coord.Cart) {
	cmd = make([]coord.Cart, len(data))
	meas = make([]coord.Cart, len(data))
	for i, d := range data {
		cmd[i] = topoCart(d.Az, d.El)
		meas[i] = topoCart(d.MeasAz, d.MeasEl)
	}
	return
}

// rmsCart is the fit cost, in radians.
func rmsCart(cmd, meas []coord.Cart, rot Rotation) float64 {
	a := rot.Axis()
	var sum float64
	for i := range cmd {
		v := rotateAbout(a, cmd[i], rot.Psi)
		sep := math.Acos(clamp1(v.Dot(&meas[i])))
		sum += sep * sep
	}
	return math.Sqrt(sum / float64(len(cmd)))
}

func searchGrid(cmd, meas []coord.Cart, thetas, phis, psis []float64,
	best Rotation, bestRMS float64) (Rotation, float64) {
	for _, th := range thetas {
		for _, ph := range phis {
			for _, ps := range psis {
				r := Rotation{
					Theta: unit.AngleFromDeg(th),
					Phi:   unit.AngleFromDeg(ph),
					Psi:   unit.AngleFromDeg(ps),
				}
				if rms := rmsCart(cmd, meas, r); rms < bestRMS {
					best, bestRMS = r, rms
				}
			}
		}
	}
	return best, bestRMS
}

// seq returns start, start+step, ... up to but not including stop.
func seq(start, stop, step float64) []float64 {
	var s []float64
	for x := start; x < stop; x += step {
		s = append(s, x)
	}
	return s
}

// around returns a grid of ±halfWidth degrees around a fitted angle.
func around(a unit.Angle, halfWidth, step float64) []float64 {
	c := a.Deg()
	return seq(c-halfWidth, c+halfWidth+step/2, step)
}

// spread computes the second largest eigenvalue of the normalized
// direction scatter matrix.
func spread(cmd []coord.Cart) float64 {
	var s [9]float64
	for _, v := range cmd {
		s[0] += v.X * v.X
		s[1] += v.X * v.Y
		s[2] += v.X * v.Z
		s[4] += v.Y * v.Y
		s[5] += v.Y * v.Z
		s[8] += v.Z * v.Z
	}
	n := float64(len(cmd))
	s[3], s[6], s[7] = s[1], s[2], s[5]
	for i := range s {
		s[i] /= n
	}
	sym := mat.NewSymDense(3, s[:])
	var eig mat.EigenSym
	if !eig.Factorize(sym, false) {
		return 0
	}
	vals := eig.Values(nil) // ascending
	return vals[1]
}
