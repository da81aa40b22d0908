// Public domain.

// Package site defines the stations the calibration commands know about.
package site

import (
	"fmt"
	"strings"

	"github.com/soniakeys/meeus/v3/globe"
	"github.com/soniakeys/unit"
)

// Site is a station that can run pointing calibration observations.
type Site struct {
	// ID is the short lower case name used in waterfall metadata and
	// on command line flags.
	ID   string
	Name string

	// Coord holds geographic coordinates in the Meeus convention,
	// longitude positive west.
	Coord globe.Coord

	Elev float64 // meters above mean sea level
}

var (
	LWA1 = Site{
		ID:   "lwa1",
		Name: "LWA1",
		Coord: globe.Coord{
			Lat: unit.AngleFromDeg(34.068894),
			Lon: unit.AngleFromDeg(107.628350),
		},
		Elev: 1477.0,
	}
	LWASV = Site{
		ID:   "lwasv",
		Name: "LWA-SV",
		Coord: globe.Coord{
			Lat: unit.AngleFromDeg(34.348358),
			Lon: unit.AngleFromDeg(106.885783),
		},
		Elev: 1477.8,
	}
	LWANA = Site{
		ID:   "lwana",
		Name: "LWA-NA",
		Coord: globe.Coord{
			Lat: unit.AngleFromDeg(34.247),
			Lon: unit.AngleFromDeg(107.640),
		},
		Elev: 2133.6,
	}
	OVROLWA = Site{
		ID:   "ovrolwa",
		Name: "OVRO-LWA",
		Coord: globe.Coord{
			Lat: unit.AngleFromDeg(37.23977727),
			Lon: unit.AngleFromDeg(118.2816667),
		},
		Elev: 1183.48,
	}
)

// All returns the known stations, default station first.
func All() []Site {
	return []Site{LWA1, LWASV, LWANA, OVROLWA}
}

// ByID looks a station up by its short name, case insensitively.
func ByID(id string) (Site, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, s := range All() {
		if s.ID == id {
			return s, nil
		}
	}
	return Site{}, fmt.Errorf("unknown station %q", id)
}

// Select maps the mutually exclusive station command line flags to a
// station.  LWA1 is the default when no flag is set.
func Select(lwasv, lwana, ovro bool) Site {
	switch {
	case lwasv:
		return LWASV
	case lwana:
		return LWANA
	case ovro:
		return OVROLWA
	}
	return LWA1
}
