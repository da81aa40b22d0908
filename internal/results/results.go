// Public domain.

// Package results reads and writes the plain text results files produced
// by procdrift and consumed by the reporting commands.
//
// A results file holds one whitespace delimited record per line in the
// order written by procdrift.  Blank lines, lines starting with #, and
// header lines starting with "Source" are skipped on read.  Files written
// before the frequency and FWHM columns existed parse with those values
// set to -1.
//
// The writer is the only formatter of these files.  Reading a line the
// writer produced and writing the record back reproduces the line byte
// for byte, so numeric fields survive any number of round trips.
package results

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/soniakeys/unit"
)

// Record is one pointing check measurement.
type Record struct {
	Name    string    // calibrator name
	Time    time.Time // UTC midpoint (transit) of the observation
	FreqMHz float64   // tuning center frequency; -1 if not recorded
	Zenith  unit.Angle
	RAErr   unit.HourAngle // RA pointing error in time units
	DecErr  unit.Angle
	SEFD    float64    // Jy
	FWHM    unit.Angle // beam width; negative if not recorded
}

// Header is the column header line procdrift writes ahead of records.
const Header = "Source YYYY/MM/DD HH:MM:SS MHz    Z          errRA      errDec      SEFD      FWHM"

const timeLayout = "2006/01/02 15:04:05"

// String renders the record as a results file line.
func (r Record) String() string {
	fwhm := "-1.0"
	if r.FWHM >= 0 {
		fwhm = FmtDMS(r.FWHM, 1)
	}
	return fmt.Sprintf("%-6s %-19s %6.3f %-10s %-10s %-10s %10.3f %-10s",
		r.Name,
		r.Time.UTC().Format(timeLayout),
		r.FreqMHz,
		FmtDMS(r.Zenith, 1),
		FmtHMS(r.RAErr, 2),
		FmtDMS(r.DecErr, 1),
		r.SEFD,
		fwhm)
}

// Parse parses one results file line.
func Parse(line string) (Record, error) {
	f := strings.Fields(line)
	var name, dateStr, timeStr, freqStr, zStr, raStr, decStr, sefdStr, fwhmStr string
	switch len(f) {
	case 9:
		name, dateStr, timeStr, freqStr, zStr, raStr, decStr, sefdStr, fwhmStr =
			f[0], f[1], f[2], f[3], f[4], f[5], f[6], f[7], f[8]
	case 8:
		name, dateStr, timeStr, zStr, raStr, decStr, sefdStr, fwhmStr =
			f[0], f[1], f[2], f[3], f[4], f[5], f[6], f[7]
		freqStr = "-1.0"
	case 7:
		name, dateStr, timeStr, zStr, raStr, decStr, sefdStr =
			f[0], f[1], f[2], f[3], f[4], f[5], f[6]
		freqStr = "-1.0"
		fwhmStr = "-1.0"
	default:
		return Record{}, fmt.Errorf("results: expected 7, 8, or 9 fields per line, found %d", len(f))
	}

	var r Record
	r.Name = name

	// older files wrote dates with dashes and carried fractional seconds
	dateStr = strings.ReplaceAll(dateStr, "-", "/")
	if i := strings.IndexByte(timeStr, '.'); i >= 0 {
		timeStr = timeStr[:i]
	}
	t, err := time.Parse(timeLayout, dateStr+" "+timeStr)
	if err != nil {
		return Record{}, fmt.Errorf("results: bad timestamp: %v", err)
	}
	r.Time = t

	if r.FreqMHz, err = strconv.ParseFloat(freqStr, 64); err != nil {
		return Record{}, fmt.Errorf("results: bad frequency %q: %v", freqStr, err)
	}
	if r.Zenith, err = ParseDMS(zStr); err != nil {
		return Record{}, fmt.Errorf("results: bad zenith angle %q: %v", zStr, err)
	}
	if r.RAErr, err = ParseHMS(raStr); err != nil {
		return Record{}, fmt.Errorf("results: bad RA error %q: %v", raStr, err)
	}
	if r.DecErr, err = ParseDMS(decStr); err != nil {
		return Record{}, fmt.Errorf("results: bad dec error %q: %v", decStr, err)
	}
	if r.SEFD, err = strconv.ParseFloat(sefdStr, 64); err != nil {
		return Record{}, fmt.Errorf("results: bad SEFD %q: %v", sefdStr, err)
	}
	if fwhmStr == "-1.0" {
		r.FWHM = unit.AngleFromDeg(-1)
	} else if r.FWHM, err = ParseDMS(fwhmStr); err != nil {
		return Record{}, fmt.Errorf("results: bad FWHM %q: %v", fwhmStr, err)
	}
	return r, nil
}

// Read parses all records from r, skipping comments and headers.
func Read(r io.Reader) ([]Record, error) {
	var recs []Record
	scn := bufio.NewScanner(r)
	for n := 1; scn.Scan(); n++ {
		line := strings.TrimSpace(scn.Text())
		switch {
		case len(line) < 3:
			continue
		case line[0] == '#':
			continue
		case strings.HasPrefix(line, "Source"):
			continue
		}
		rec, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", n, err)
		}
		recs = append(recs, rec)
	}
	if err := scn.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// ReadFile parses all records from the named file, or from stdin if the
// name is "-".
func ReadFile(name string) ([]Record, error) {
	if name == "-" {
		return Read(os.Stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	recs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	return recs, nil
}

// Write writes a header line and all records to w.
func Write(w io.Writer, recs []Record) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return err
	}
	for _, r := range recs {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}
	return nil
}
