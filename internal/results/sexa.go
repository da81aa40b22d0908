// Public domain.

package results

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/soniakeys/unit"
)

// Colon separated sexagesimal fields, the form the ephem library printed
// in the files these tools grew up with: unpadded leading units, two digit
// minutes and seconds, fixed decimals on seconds.  The sexa package
// formats the symboled form (1°2′3″), not this one, so these are manual.

// FmtDMS formats an angle as [-]D:MM:SS.S with prec decimals on seconds.
func FmtDMS(a unit.Angle, prec int) string {
	return fmtSexa(a.Deg(), prec)
}

// FmtHMS formats an hour angle as [-]H:MM:SS.SS with prec decimals on
// seconds.
func FmtHMS(h unit.HourAngle, prec int) string {
	return fmtSexa(h.Hour(), prec)
}

func fmtSexa(x float64, prec int) string {
	sign := ""
	if math.Signbit(x) {
		sign = "-"
		x = -x
	}
	// round at the final precision first so 59.96s carries into minutes
	pow := math.Pow(10, float64(prec))
	total := math.Round(x*3600*pow) / pow // seconds
	d := math.Floor(total / 3600)
	total -= d * 3600
	m := math.Floor(total / 60)
	s := total - m*60
	return fmt.Sprintf("%s%d:%02d:%0*.*f", sign, int(d), int(m), prec+3, prec, s)
}

// ParseDMS parses a [-]D:MM:SS[.S] angle.
func ParseDMS(s string) (unit.Angle, error) {
	x, err := parseSexa(s)
	return unit.AngleFromDeg(x), err
}

// ParseHMS parses a [-]H:MM:SS[.S] hour angle.
func ParseHMS(s string) (unit.HourAngle, error) {
	x, err := parseSexa(s)
	return unit.HourAngle(unit.AngleFromDeg(x * 15)), err
}

func parseSexa(s string) (float64, error) {
	neg := false
	t := s
	if strings.HasPrefix(t, "-") {
		neg = true
		t = t[1:]
	}
	parts := strings.Split(t, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("expected D:MM:SS form, got %q", s)
	}
	d, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	sec, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, err
	}
	if d < 0 || m < 0 || m > 59 || sec < 0 || sec >= 60 {
		return 0, fmt.Errorf("field out of range in %q", s)
	}
	x := float64(d) + float64(m)/60 + sec/3600
	if neg {
		x = -x
	}
	return x, nil
}
