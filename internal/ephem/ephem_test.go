// Public domain.

package ephem

import (
	"math"
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/globe"
	"github.com/soniakeys/unit"

	"github.com/lwatools/pointing/internal/site"
)

// Venus from the US Naval Observatory, 1987 April 10, 19:21 UT.  Meeus
// works this example to A = 68.0337 west of south, h = 15.1249.
func TestHorizontal(t *testing.T) {
	usno := site.Site{
		ID:   "usno",
		Name: "USNO",
		Coord: globe.Coord{
			Lat: unit.NewAngle(' ', 38, 55, 17),
			Lon: unit.NewAngle(' ', 77, 3, 56),
		},
	}
	ra := unit.NewRA(23, 9, 16.641)
	dec := unit.NewAngle('-', 6, 43, 11.61)
	at := time.Date(1987, 4, 10, 19, 21, 0, 0, time.UTC)

	az, el := Horizontal(ra, dec, usno, at)
	if d := math.Abs(az.Deg() - (180 + 68.0337)); d > 0.05 {
		t.Errorf("az %.4f, want %.4f", az.Deg(), 180+68.0337)
	}
	if d := math.Abs(el.Deg() - 15.1249); d > 0.05 {
		t.Errorf("el %.4f, want 15.1249", el.Deg())
	}
}

func TestZenithAngle(t *testing.T) {
	z := ZenithAngle(unit.AngleFromDeg(30))
	if d := math.Abs(z.Deg() - 60); d > 1e-12 {
		t.Errorf("zenith angle %.6f, want 60", z.Deg())
	}
}

func TestSeparation(t *testing.T) {
	// small elevation offset at fixed azimuth is the offset itself
	s := Separation(
		unit.AngleFromDeg(100), unit.AngleFromDeg(40),
		unit.AngleFromDeg(100), unit.AngleFromDeg(40.5))
	if d := math.Abs(s.Deg() - 0.5); d > 1e-9 {
		t.Errorf("separation %.6f, want 0.5", s.Deg())
	}
	// azimuth offsets shrink with elevation
	s = Separation(
		unit.AngleFromDeg(100), unit.AngleFromDeg(60),
		unit.AngleFromDeg(101), unit.AngleFromDeg(60))
	if d := math.Abs(s.Deg() - 0.5); d > 1e-3 {
		t.Errorf("separation %.6f, want ~0.5", s.Deg())
	}
	if s := Separation(0, 0, 0, 0); s != 0 {
		t.Errorf("identical positions separated by %g", s.Rad())
	}
}

// The transit time should be the elevation maximum.
func TestTransit(t *testing.T) {
	ra := unit.NewRA(19, 59, 28.3) // CygA
	dec := unit.NewAngle(' ', 40, 44, 2)

	tr := Transit(ra, dec, site.LWA1, 2018, 6, 14)
	if d := tr.Sub(time.Date(2018, 6, 14, 0, 0, 0, 0, time.UTC)); d < 0 || d >= 24*time.Hour {
		t.Fatalf("transit %v outside the requested day", tr)
	}
	_, el := Horizontal(ra, dec, site.LWA1, tr)
	for _, off := range []time.Duration{-10 * time.Minute, 10 * time.Minute} {
		_, elOff := Horizontal(ra, dec, site.LWA1, tr.Add(off))
		if elOff >= el {
			t.Errorf("elevation %.4f at transit%+v not below %.4f at transit",
				elOff.Deg(), off, el.Deg())
		}
	}
}

func TestRiseSet(t *testing.T) {
	ra := unit.NewRA(19, 59, 28.3)
	dec := unit.NewAngle(' ', 40, 44, 2)
	h0 := unit.AngleFromDeg(30)

	tRise, tTransit, tSet, err := RiseSet(ra, dec, site.LWA1, 2018, 6, 14, h0)
	if err != nil {
		t.Fatal(err)
	}
	// approximate times put the source within half a degree of h0
	for _, tc := range []struct {
		name string
		at   time.Time
	}{{"rise", tRise}, {"set", tSet}} {
		_, el := Horizontal(ra, dec, site.LWA1, tc.at)
		if d := math.Abs(el.Deg() - 30); d > 0.5 {
			t.Errorf("%s: elevation %.3f, want 30±0.5", tc.name, el.Deg())
		}
	}
	_, elT := Horizontal(ra, dec, site.LWA1, tTransit)
	if elT.Deg() < 80 {
		t.Errorf("transit elevation %.2f, want near zenith", elT.Deg())
	}

	// CygA tops out near 83 degrees at LWA1, so it never crosses 89
	if _, _, _, err := RiseSet(ra, dec, site.LWA1, 2018, 6, 14, unit.AngleFromDeg(89)); err == nil {
		t.Error("expected circumpolar error at h0=89")
	}
}
