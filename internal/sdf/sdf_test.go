// Public domain.

package sdf

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwatools/pointing/internal/site"
)

func TestDRXTuning(t *testing.T) {
	// tuning words are the closest representable frequency: round
	// tripping recovers the request to within half a word step
	for _, f := range []float64{37.9e6, 74.03e6, 10e6} {
		got := DRXTuningFreq(DRXTuningWord(f))
		assert.InDelta(t, f, got, 196e6/4294967296/2+1e-9)
	}
}

func TestMJDMPM(t *testing.T) {
	mjd, mpm := MJDMPM(time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 58119, mjd)
	assert.Equal(t, 0, mpm)

	mjd, mpm = MJDMPM(time.Date(2018, 6, 14, 3, 21, 45, int(500*time.Millisecond), time.UTC))
	assert.Equal(t, 58283, mjd)
	assert.Equal(t, ((3*60+21)*60+45)*1000+500, mpm)
}

func testProject(start time.Time) *Project {
	return &Project{
		Observer: Observer{Name: "Jayce Dowell", ID: 99},
		Title:    "DRX Pointing Checking",
		ID:       "COMST",
		Sessions: []*Session{{
			Name:    "Pointing Check Session Using CygA",
			ID:      1001,
			DRXBeam: 2,
			Spec:    [2]int{1024, 6144},
			Observations: []*Stepped{{
				Name:   "CygA",
				Target: "Az: 0.6 degrees; El: 83.3 degrees",
				Start:  start,
				Filter: 7,
				Steps: []BeamStep{{
					C1: 0.6, C2: 83.3, Dur: 7200 * time.Second,
					Freq1: 37.9e6, Freq2: 74.03e6,
				}},
			}},
		}},
	}
}

func TestRender(t *testing.T) {
	start := time.Date(2018, 6, 14, 2, 21, 45, 0, time.UTC)
	s := testProject(start).Render()

	for _, want := range []string{
		"PI_ID            99",
		"PI_NAME          Jayce Dowell",
		"PROJECT_ID       COMST",
		"SESSION_ID       1001",
		"SESSION_DRX_BEAM 2",
		"SESSION_SPC      1024 6144",
		"OBS_MODE         STEPPED",
		"OBS_START        UTC 2018/06/14 02:21:45",
		"OBS_DUR          7200000",
		"OBS_DUR+         02:00:00.000",
		"OBS_STP_N        1",
		"OBS_STP_RADEC    0",
		"OBS_STP_T[1]     7200000",
		"OBS_STP_B[1]     SUM",
	} {
		assert.Contains(t, s, want+"\n")
	}
	assert.NotContains(t, s, "SESSION_REMPO    UCF")

	// tuning words appear with their achieved frequency comment
	w1 := DRXTuningWord(37.9e6)
	assert.Contains(t, s, "OBS_STP_FREQ1[1] "+strconv.FormatUint(uint64(w1), 10))
	assert.Contains(t, s, " MHz\n")
}

func TestRenderUCF(t *testing.T) {
	p := testProject(time.Date(2018, 6, 14, 2, 21, 45, 0, time.UTC))
	p.Sessions[0].UCFUsername = "jdowell"
	assert.Contains(t, p.Render(), "SESSION_REMPO    UCF;ucfuser:jdowell\n")
}

func TestSteppedDuration(t *testing.T) {
	obs := &Stepped{Steps: []BeamStep{
		{Dur: 6 * time.Second}, {Dur: 6 * time.Second}, {Dur: 6 * time.Second},
	}}
	assert.Equal(t, 18*time.Second, obs.Duration())
}

func TestSetups(t *testing.T) {
	d := DriftSetup(site.LWA1)
	assert.Equal(t, [3]int{2, 3, 4}, d.Beams)
	assert.Equal(t, time.Duration(0), d.Step)

	d = DriftSetup(site.LWASV)
	assert.Equal(t, [3]int{1, 1, 1}, d.Beams)
	// one sidereal day between repeats on the single beam
	assert.InDelta(t, 86164.090530833, d.Step.Seconds(), 1e-6)

	w := WeaveDefaults(site.LWA1)
	assert.Equal(t, 2, w.Beam)
	assert.Equal(t, 6*time.Second, w.Step)
	assert.Equal(t, 1, WeaveDefaults(site.LWASV).Beam)

	require.Equal(t, [2]int{1024, 1536}, w.Spec)
}
