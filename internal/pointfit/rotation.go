// Public domain.

package pointfit

import (
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"
)

// Rotation is a rigid rotation of the pointing frame: a rotation by angle
// Psi about the axis at polar angle Theta from the zenith and azimuth Phi.
type Rotation struct {
	Theta, Phi, Psi unit.Angle
}

// Axis returns the rotation axis as a unit vector in the topocentric
// frame used throughout this package: x east, y north, z up.
func (r Rotation) Axis() coord.Cart {
	st, ct := r.Theta.Sincos()
	sp, cp := r.Phi.Sincos()
	return coord.Cart{X: st * sp, Y: st * cp, Z: ct}
}

// topoCart converts a horizontal direction to a topocentric unit vector.
func topoCart(az, el unit.Angle) coord.Cart {
	sa, ca := az.Sincos()
	se, ce := el.Sincos()
	return coord.Cart{X: ce * sa, Y: ce * ca, Z: se}
}

// topoAngles is the inverse of topoCart.
func topoAngles(v coord.Cart) (az, el unit.Angle) {
	az = unit.Angle(math.Atan2(v.X, v.Y)).Mod1()
	el = unit.Angle(math.Asin(clamp1(v.Z)))
	return
}

// rotate applies the rotation to a unit vector, Rodrigues form:
//
//	v' = v cosψ + (a×v) sinψ + a (a·v)(1-cosψ)
func (r Rotation) rotate(v coord.Cart) coord.Cart {
	a := r.Axis()
	return rotateAbout(a, v, r.Psi)
}

func rotateAbout(a, v coord.Cart, psi unit.Angle) coord.Cart {
	sp, cp := psi.Sincos()
	var cross coord.Cart
	cross.Cross(&a, &v)
	d := a.Dot(&v)

	var out, t coord.Cart
	out.MulScalar(&v, cp)
	t.MulScalar(&cross, sp)
	out.Add(&out, &t)
	t.MulScalar(&a, d*(1-cp))
	out.Add(&out, &t)
	return out
}

// Apply rotates a commanded horizontal pointing through the fitted
// rotation, returning the corrected azimuth and elevation.
func (r Rotation) Apply(az, el unit.Angle) (unit.Angle, unit.Angle) {
	return topoAngles(r.rotate(topoCart(az, el)))
}

func clamp1(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
