// Public domain.

// Package ephem computes topocentric quantities for the calibration
// commands: apparent az/el of a catalog source, angular separations, and
// rise/transit/set times.
//
// All of the underlying ephemeris math comes from the meeus packages.
// Azimuths follow the usual convention, measured eastward from north;
// meeus measures from the south and the conversion happens here.
package ephem

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/rise"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/unit"

	"github.com/lwatools/pointing/internal/site"
)

// SiderealDay is the length of one sidereal day in SI seconds.
const SiderealDay = 86164.090530833

// Horizontal returns the apparent azimuth and elevation of the J2000
// position ra, dec seen from st at time t.
func Horizontal(ra unit.RA, dec unit.Angle, st site.Site, t time.Time) (az, el unit.Angle) {
	jd := julian.TimeToJD(t.UTC())
	th := sidereal.Apparent(jd)
	a, h := coord.EqToHz(ra, dec, st.Coord.Lat, st.Coord.Lon, th)
	// meeus azimuth is measured westward from the south
	az = (a + unit.AngleFromDeg(180)).Mod1()
	el = h
	return
}

// ZenithAngle converts an elevation to a zenith angle.
func ZenithAngle(el unit.Angle) unit.Angle {
	return unit.AngleFromDeg(90) - el
}

// Separation returns the great circle separation of two horizontal
// positions.  The haversine form stays accurate for the small separations
// pointing errors produce.
func Separation(az1, el1, az2, el2 unit.Angle) unit.Angle {
	sdEl := math.Sin((el2 - el1).Rad() / 2)
	sdAz := math.Sin((az2 - az1).Rad() / 2)
	h := sdEl*sdEl + el1.Cos()*el2.Cos()*sdAz*sdAz
	return unit.Angle(2 * math.Asin(math.Sqrt(h)))
}

// RiseSet returns the UTC times on the given day at which the position
// ra, dec crosses elevation h0 rising and setting, and its transit time.
// Year, month, day name a UTC calendar date.
//
// The error is non-nil for circumpolar geometry, where the source never
// crosses h0 on that day.
func RiseSet(ra unit.RA, dec unit.Angle, st site.Site, year, month, day int, h0 unit.Angle) (tRise, tTransit, tSet time.Time, err error) {
	jd := julian.CalendarGregorianToJD(year, month, float64(day))
	th0 := sidereal.Apparent0UT(jd)
	r, tr, s, err := rise.ApproxTimes(st.Coord, h0, th0, ra, dec)
	if err != nil {
		return
	}
	day0 := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	tRise = day0.Add(dayFraction(r))
	tTransit = day0.Add(dayFraction(tr))
	tSet = day0.Add(dayFraction(s))
	return
}

// Transit returns the UTC transit time of ra, dec on the given day.
// Transit always exists, even for circumpolar sources, so unlike RiseSet
// there is no error case.  This is Meeus eq. 15.2.
func Transit(ra unit.RA, dec unit.Angle, st site.Site, year, month, day int) time.Time {
	jd := julian.CalendarGregorianToJD(year, month, float64(day))
	th0 := sidereal.Apparent0UT(jd)
	m := math.Mod(ra.Rad()+st.Coord.Lon.Rad()-th0.Rad(), 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}
	day0 := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return day0.Add(time.Duration(m / (2 * math.Pi) * 86400 * float64(time.Second)))
}

func dayFraction(t unit.Time) time.Duration {
	return time.Duration(t.Sec() * float64(time.Second))
}
