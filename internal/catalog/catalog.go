// Public domain.

// Package catalog holds the bright calibrator catalog used by the pointing
// commands.
//
// Source positions are J2000.  Fluxes follow Baars et al. (1977),
//
//	log S = A + B log(ν/1MHz) + C log(ν/1MHz)²
//
// with S in Jy, plus an optional secular change in flux since a given
// epoch.  CasA carries the Helmboldt & Kassim secular decrease of 0.84%/yr
// (Helmboldt & Kassim 2009, AJ, 138, 838).
package catalog

import (
	"math"
	"strings"
	"time"

	"github.com/soniakeys/unit"
)

// Source is a fixed calibrator.
type Source struct {
	Name string
	RA   unit.RA
	Dec  unit.Angle

	// Baars flux parameters.  HasFlux is false for sources the catalog
	// carries for scheduling only.
	HasFlux bool
	A, B, C float64

	// Fractional flux change per year since SecularEpoch.  Zero for
	// most sources.
	SecularChange float64
	SecularEpoch  float64
}

// FluxJy evaluates the source flux in Jy at frequency freq in Hz for
// observation time t.  It returns 0, false for sources without flux
// parameters.
func (s Source) FluxJy(freq float64, t time.Time) (float64, bool) {
	if !s.HasFlux {
		return 0, false
	}
	lf := math.Log10(freq / 1e6)
	flux := math.Pow(10, s.A+s.B*lf+s.C*lf*lf)
	if s.SecularChange != 0 {
		flux *= math.Pow(1+s.SecularChange, epochYear(t)-s.SecularEpoch)
	}
	return flux, true
}

// epochYear converts a time to a fractional year the way the flux epochs
// are tabulated.
func epochYear(t time.Time) float64 {
	return float64(t.Year()) + float64(t.YearDay())/365
}

// sources: 3C123 and HydA started as power laws, S0 (ν/ν0)^α, folded here
// into Baars form with A = log S0 - α log ν0, B = α.
var sources = []Source{
	{Name: "TauA", RA: unit.NewRA(5, 34, 32.00), Dec: unit.NewAngle(' ', 22, 0, 52.0),
		HasFlux: true, A: 3.915, B: -0.299},
	{Name: "VirA", RA: unit.NewRA(12, 30, 49.40), Dec: unit.NewAngle(' ', 12, 23, 28.0),
		HasFlux: true, A: 5.023, B: -0.856},
	{Name: "CygA", RA: unit.NewRA(19, 59, 28.30), Dec: unit.NewAngle(' ', 40, 44, 2.0),
		HasFlux: true, A: 4.695, B: 0.085, C: -0.178},
	{Name: "CasA", RA: unit.NewRA(23, 23, 27.94), Dec: unit.NewAngle(' ', 58, 48, 42.4),
		HasFlux: true, A: 5.625, B: -0.634, C: -0.023,
		SecularChange: -0.0084, SecularEpoch: 1965},
	{Name: "3C123", RA: unit.NewRA(4, 37, 4.38), Dec: unit.NewAngle(' ', 29, 40, 13.8),
		HasFlux: true, A: 3.8892, B: -0.70},
	{Name: "3C295", RA: unit.NewRA(14, 11, 20.47), Dec: unit.NewAngle(' ', 52, 12, 9.5),
		HasFlux: true, A: 1.485, B: 0.759, C: -0.255},
	{Name: "HerA", RA: unit.NewRA(16, 51, 8.15), Dec: unit.NewAngle(' ', 4, 59, 33.3)},
	{Name: "SgrA", RA: unit.NewRA(17, 45, 40.00), Dec: unit.NewAngle('-', 29, 0, 28.0)},
	{Name: "HydA", RA: unit.NewRA(9, 18, 5.65), Dec: unit.NewAngle('-', 12, 5, 44.0),
		HasFlux: true, A: 8.3389, B: -2.30},
}

// All returns the catalog in a stable order.
func All() []Source {
	return sources
}

// Lookup finds a source by name, case insensitively.
func Lookup(name string) (Source, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range sources {
		if strings.ToLower(s.Name) == name {
			return s, true
		}
	}
	return Source{}, false
}
