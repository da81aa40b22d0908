// Public domain.

package resplot

import (
	"math"
	"testing"

	"github.com/soniakeys/unit"
)

func TestSkyXY(t *testing.T) {
	tests := []struct {
		az, el float64
		x, y   float64
	}{
		{0, 0, 0, 1},    // north on the horizon, top of the chart
		{90, 0, -1, 0},  // east to the left
		{180, 0, 0, -1}, // south at the bottom
		{270, 0, 1, 0},  // west to the right
		{123, 90, 0, 0}, // zenith at the center regardless of azimuth
		{0, 60, 0, 0.5},
	}
	for _, tc := range tests {
		x, y := skyXY(unit.AngleFromDeg(tc.az), unit.AngleFromDeg(tc.el))
		if math.Abs(x-tc.x) > 1e-9 || math.Abs(y-tc.y) > 1e-9 {
			t.Errorf("skyXY(%v, %v) = %.6f, %.6f, want %.6f, %.6f",
				tc.az, tc.el, x, y, tc.x, tc.y)
		}
	}
}

func TestSkyCoverage(t *testing.T) {
	pts := []SkyPoint{
		{Az: unit.AngleFromDeg(180), El: unit.AngleFromDeg(60), Label: "CygA"},
		{Az: unit.AngleFromDeg(90), El: unit.AngleFromDeg(45), Label: "TauA"},
	}
	if _, err := SkyCoverage("coverage", pts); err != nil {
		t.Fatal(err)
	}
}

func TestZenith(t *testing.T) {
	pts := []Point{
		{X: 10, Y: 20e3, Label: "CygA"},
		{X: 25, Y: 35e3, Label: "CygA"},
		{X: 40, Y: 28e3, Label: "CasA"},
	}
	if _, err := Zenith("SEFD", "SEFD [Jy]", pts); err != nil {
		t.Fatal(err)
	}
}

func TestWeaveCut(t *testing.T) {
	x := []float64{-2, -1, 0, 1, 2}
	y := []float64{0.1, 0.5, 1, 0.5, 0.1}
	if _, err := WeaveCut("cut", "Dec. [deg]", x, y, x, y, 0); err != nil {
		t.Fatal(err)
	}
}
