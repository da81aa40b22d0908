// Public domain.

package sdf

import (
	"time"

	"github.com/lwatools/pointing/internal/site"
)

// sidereal day, so that consecutive sessions on a single beam station
// see the source at the same hour angle
const siderealStep = 86164090530833 * time.Nanosecond

// RunSetup holds the per site scheduler defaults for a drift scan run.
// Stations with multiple beams observe the target and both offsets at
// once; single beam stations repeat the pointings on consecutive
// sidereal days.
type RunSetup struct {
	Beams  [3]int // beams for target, north offset, south offset
	Spec   [2]int
	Filter int
	Step   time.Duration // start time step between the pointings
}

// DriftSetup returns the drift scan defaults for a site.
func DriftSetup(s site.Site) RunSetup {
	if s.ID == "lwasv" {
		return RunSetup{[3]int{1, 1, 1}, [2]int{1024, 6144}, 7, siderealStep}
	}
	return RunSetup{[3]int{2, 3, 4}, [2]int{1024, 6144}, 7, 0}
}

// WeaveSetup holds the scheduler defaults for a basket weave run, which
// uses a single beam stepping every few seconds.
type WeaveSetup struct {
	Beam   int
	Spec   [2]int
	Filter int
	Step   time.Duration
}

// WeaveDefaults returns the basket weave defaults for a site.
func WeaveDefaults(s site.Site) WeaveSetup {
	beam := 2
	if s.ID == "lwasv" {
		beam = 1
	}
	return WeaveSetup{beam, [2]int{1024, 1536}, 7, 6 * time.Second}
}
