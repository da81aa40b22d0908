// Public domain.

// Package sdf builds session definition files for stepped beam
// observations.
//
// A session definition file, or SDF, is the flat key/value text format the
// station scheduler accepts.  Only the stepped observing mode is emitted
// here since that is the only mode the pointing check runs use.
package sdf

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DRXTuningWord converts a center frequency in Hz to the 32 bit tuning
// word the digital receiver uses.
func DRXTuningWord(freq float64) uint32 {
	return uint32(math.Round(freq * 4294967296 / 196e6))
}

// DRXTuningFreq is the inverse of DRXTuningWord.  The result is the
// frequency actually tuned, which differs from the requested one by up to
// half a word.
func DRXTuningFreq(word uint32) float64 {
	return float64(word) * 196e6 / 4294967296
}

// MJDMPM splits a UTC time into the integer modified Julian day and the
// milliseconds past midnight the scheduler keys observations by.
func MJDMPM(t time.Time) (mjd, mpm int) {
	t = t.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	// MJD 40587 is 1970 Jan 1
	mjd = 40587 + int(midnight.Unix()/86400)
	mpm = int(t.Sub(midnight) / time.Millisecond)
	return
}

// Observer identifies the project PI.
type Observer struct {
	Name string
	ID   int
}

// BeamStep is a single pointing of a stepped observation.  C1 and C2 are
// azimuth and elevation in degrees, or RA in hours and declination in
// degrees when RADec is set.
type BeamStep struct {
	C1, C2 float64
	Dur    time.Duration
	Freq1  float64 // tuning 1 center frequency, Hz
	Freq2  float64 // tuning 2 center frequency, Hz
	RADec  bool
}

// Stepped is a stepped mode observation, a sequence of beam pointings
// taken back to back.
type Stepped struct {
	Name   string // observation title, typically the source name
	Target string // pointing comment, "Az: ... degrees; El: ... degrees"
	Start  time.Time
	Filter int // DRX filter code
	RADec  bool
	Steps  []BeamStep
}

// Duration is the total length of all steps.
func (o *Stepped) Duration() time.Duration {
	var d time.Duration
	for _, s := range o.Steps {
		d += s.Dur
	}
	return d
}

// Session is one scheduler session holding the observations for a single
// beam.
type Session struct {
	Name         string
	ID           int
	DRXBeam      int
	Spec         [2]int // spectrometer setup, channels and integrations per frame
	UCFUsername  string // when set, data is copied to this UCF account
	Observations []*Stepped
}

// Project ties the observer, project identifiers, and sessions together.
type Project struct {
	Observer Observer
	Title    string
	ID       string
	Sessions []*Session
}

// Render emits the project as SDF text.
func (p *Project) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "PI_ID            %d\n", p.Observer.ID)
	fmt.Fprintf(&b, "PI_NAME          %s\n\n", p.Observer.Name)
	fmt.Fprintf(&b, "PROJECT_ID       %s\n", p.ID)
	fmt.Fprintf(&b, "PROJECT_TITLE    %s\n", p.Title)
	fmt.Fprintf(&b, "PROJECT_REMPI    None provided\n")
	fmt.Fprintf(&b, "PROJECT_REMPO    None\n\n")

	for _, s := range p.Sessions {
		fmt.Fprintf(&b, "SESSION_ID       %d\n", s.ID)
		fmt.Fprintf(&b, "SESSION_TITLE    %s\n", s.Name)
		fmt.Fprintf(&b, "SESSION_REMPI    None provided\n")
		fmt.Fprintf(&b, "SESSION_REMPO    None\n")
		fmt.Fprintf(&b, "SESSION_DRX_BEAM %d\n", s.DRXBeam)
		fmt.Fprintf(&b, "SESSION_SPC      %d %d\n", s.Spec[0], s.Spec[1])
		if s.UCFUsername != "" {
			fmt.Fprintf(&b, "SESSION_REMPO    UCF;ucfuser:%s\n", s.UCFUsername)
		}
		fmt.Fprintf(&b, "SESSION_LOG_SCH  0\n")
		fmt.Fprintf(&b, "SESSION_LOG_EXE  0\n\n")

		for i, o := range s.Observations {
			renderObs(&b, i+1, o)
		}
	}
	return b.String()
}

func renderObs(b *strings.Builder, id int, o *Stepped) {
	mjd, mpm := MJDMPM(o.Start)
	dur := o.Duration()
	ms := int(dur / time.Millisecond)

	fmt.Fprintf(b, "OBS_ID           %d\n", id)
	fmt.Fprintf(b, "OBS_TITLE        %s\n", o.Name)
	fmt.Fprintf(b, "OBS_TARGET       %s\n", o.Target)
	fmt.Fprintf(b, "OBS_REMPO        None\n")
	fmt.Fprintf(b, "OBS_START_MJD    %d\n", mjd)
	fmt.Fprintf(b, "OBS_START_MPM    %d\n", mpm)
	fmt.Fprintf(b, "OBS_START        %s\n", o.Start.UTC().Format("UTC 2006/01/02 15:04:05"))
	fmt.Fprintf(b, "OBS_DUR          %d\n", ms)
	fmt.Fprintf(b, "OBS_DUR+         %s\n", durPlus(dur))
	fmt.Fprintf(b, "OBS_MODE         STEPPED\n")
	fmt.Fprintf(b, "OBS_BW           %d\n", o.Filter)
	fmt.Fprintf(b, "OBS_STP_N        %d\n", len(o.Steps))
	fmt.Fprintf(b, "OBS_STP_RADEC    %d\n", btoi(o.RADec))
	for j, stp := range o.Steps {
		k := j + 1
		fmt.Fprintf(b, "OBS_STP_C1[%d]    %.9f\n", k, stp.C1)
		fmt.Fprintf(b, "OBS_STP_C2[%d]    %+.9f\n", k, stp.C2)
		fmt.Fprintf(b, "OBS_STP_T[%d]     %d\n", k, int(stp.Dur/time.Millisecond))
		w1 := DRXTuningWord(stp.Freq1)
		w2 := DRXTuningWord(stp.Freq2)
		fmt.Fprintf(b, "OBS_STP_FREQ1[%d] %d\n", k, w1)
		fmt.Fprintf(b, "OBS_STP_FREQ1+[%d] %.9f MHz\n", k, DRXTuningFreq(w1)/1e6)
		fmt.Fprintf(b, "OBS_STP_FREQ2[%d] %d\n", k, w2)
		fmt.Fprintf(b, "OBS_STP_FREQ2+[%d] %.9f MHz\n", k, DRXTuningFreq(w2)/1e6)
		fmt.Fprintf(b, "OBS_STP_B[%d]     SUM\n", k)
	}
	b.WriteByte('\n')
}

func durPlus(d time.Duration) string {
	ms := d / time.Millisecond
	h := ms / 3600000
	ms -= h * 3600000
	m := ms / 60000
	ms -= m * 60000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, ms/1000, ms%1000)
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
