// Public domain.

// Package waterfall reads the HDF5 waterfall files the station recorder
// writes for drift scan and basket weave observations.
//
// The layout read here is the DRX spectrometer one: a root attribute
// StationName, an Observation1 group carrying ObservationName and
// TargetName attributes and a time dataset, and Tuning1/Tuning2 subgroups
// each with a freq dataset and spectra as XX and YY, XY_real and XY_imag,
// or Stokes I datasets.  Stepped observations additionally carry a
// Pointing group with a Steps dataset of commanded coordinates.
package waterfall

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/hdf5"

	"github.com/soniakeys/unit"
)

// Tuning is one spectrometer tuning of an observation.
type Tuning struct {
	Freq []float64 // channel center frequencies, Hz
	I    []float64 // total power (XX+YY) summed over the inner band, per integration
}

// CenterFreq returns the mean channel frequency in Hz.
func (t Tuning) CenterFreq() float64 {
	var sum float64
	for _, f := range t.Freq {
		sum += f
	}
	return sum / float64(len(t.Freq))
}

// Step is one commanded pointing of a stepped observation.
type Step struct {
	Start float64 // unix seconds
	RA    float64 // hours
	Dec   float64 // degrees
}

// Observation is the usable content of one waterfall file.
type Observation struct {
	Station string // station short name, possibly empty in older files
	Name    string // observation name, the target source or offset beam
	Target  string // commanded pointing comment, "Az: ... degrees; El: ... degrees"
	Time    []float64
	Tunings []Tuning
	Steps   []Step // nil for plain drift scans
}

// Read loads the named waterfall file.  Integrations that were never
// recorded (zero timestamps or zero power) are dropped, and each tuning's
// spectra are summed over the inner 75% of the band.
func Read(name string) (*Observation, error) {
	f, err := hdf5.OpenFile(name, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, fmt.Errorf("waterfall: %v", err)
	}
	defer f.Close()

	var o Observation
	o.Station, _ = readStringAttr(f, "StationName")

	g, err := f.OpenGroup("Observation1")
	if err != nil {
		return nil, fmt.Errorf("waterfall: %s: no Observation1 group: %v", name, err)
	}
	defer g.Close()
	if o.Name, err = readGroupStringAttr(g, "ObservationName"); err != nil {
		return nil, fmt.Errorf("waterfall: %s: %v", name, err)
	}
	if o.Target, err = readGroupStringAttr(g, "TargetName"); err != nil {
		return nil, fmt.Errorf("waterfall: %s: %v", name, err)
	}

	if o.Time, err = read1D(g, "time"); err != nil {
		return nil, fmt.Errorf("waterfall: %s: %v", name, err)
	}

	var raw []rawTuning
	for _, tn := range []string{"Tuning1", "Tuning2"} {
		tg, err := g.OpenGroup(tn)
		if err != nil {
			continue
		}
		rt, err := readTuning(tg)
		tg.Close()
		if err != nil {
			return nil, fmt.Errorf("waterfall: %s: %s: %v", name, tn, err)
		}
		raw = append(raw, rt)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("waterfall: %s: no tunings", name)
	}

	if pg, err := g.OpenGroup("Pointing"); err == nil {
		steps, rows, cols, err := read2D(pg, "Steps")
		pg.Close()
		if err != nil {
			return nil, fmt.Errorf("waterfall: %s: Pointing: %v", name, err)
		}
		if cols < 3 {
			return nil, fmt.Errorf("waterfall: %s: Steps has %d columns, need 3", name, cols)
		}
		for i := 0; i < rows; i++ {
			o.Steps = append(o.Steps, Step{
				Start: steps[i*cols],
				RA:    steps[i*cols+1],
				Dec:   steps[i*cols+2],
			})
		}
	}

	o.reduce(raw)
	return &o, nil
}

type rawTuning struct {
	freq []float64
	i    []float64 // nTime x nChan, row major
	rows int
	cols int
}

func readTuning(g *hdf5.Group) (rawTuning, error) {
	var rt rawTuning
	var err error
	if rt.freq, err = read1D(g, "freq"); err != nil {
		return rt, err
	}

	// basket weave recordings carry cross power or Stokes I spectra,
	// drift scans the two linear polarizations
	if re, r, c, err := read2D(g, "XY_real"); err == nil {
		im, r2, c2, err := read2D(g, "XY_imag")
		if err != nil {
			return rt, err
		}
		if r != r2 || c != c2 {
			return rt, fmt.Errorf("XY_real %dx%d but XY_imag %dx%d", r, c, r2, c2)
		}
		rt.rows, rt.cols = r, c
		rt.i = re
		for k := range rt.i {
			rt.i[k] = math.Hypot(rt.i[k], im[k])
		}
		return rt, nil
	}
	if id, r, c, err := read2D(g, "I"); err == nil {
		rt.rows, rt.cols = r, c
		rt.i = id
		return rt, nil
	}

	xx, r, c, err := read2D(g, "XX")
	if err != nil {
		return rt, err
	}
	yy, r2, c2, err := read2D(g, "YY")
	if err != nil {
		return rt, err
	}
	if r != r2 || c != c2 {
		return rt, fmt.Errorf("XX %dx%d but YY %dx%d", r, c, r2, c2)
	}
	rt.rows, rt.cols = r, c
	rt.i = xx
	for k := range rt.i {
		rt.i[k] += yy[k]
	}
	return rt, nil
}

// reduce drops unrecorded integrations and collapses spectra to band
// integrated power.
func (o *Observation) reduce(raw []rawTuning) {
	n := len(o.Time)
	for _, rt := range raw {
		if rt.rows < n {
			n = rt.rows
		}
	}

	// an integration counts as recorded when its timestamp is set and
	// every tuning saw power in a mid band test channel
	good := make([]bool, n)
	for i := 0; i < n; i++ {
		good[i] = o.Time[i] > 0
		for _, rt := range raw {
			probe := 10
			if probe >= rt.cols {
				probe = rt.cols - 1
			}
			if rt.i[i*rt.cols+probe] <= 0 {
				good[i] = false
			}
		}
	}
	// the recorder pads a trailing partial integration; drop the last
	// good sample like the historical reduction did
	for i := n - 1; i >= 0; i-- {
		if good[i] {
			good[i] = false
			break
		}
	}

	var times []float64
	keep := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if good[i] {
			keep = append(keep, i)
			times = append(times, o.Time[i])
		}
	}
	o.Time = times

	for _, rt := range raw {
		lo, hi := rt.cols/8, 7*rt.cols/8
		t := Tuning{Freq: rt.freq}
		for _, i := range keep {
			row := rt.i[i*rt.cols : (i+1)*rt.cols]
			var sum float64
			for _, v := range row[lo:hi] {
				sum += v
			}
			t.I = append(t.I, sum)
		}
		o.Tunings = append(o.Tunings, t)
	}
}

// ParseTargetAzEl extracts the commanded azimuth and elevation from a
// TargetName comment of the form "Az: 123.4 degrees; El: 56.7 degrees".
func ParseTargetAzEl(target string) (az, el unit.Angle, err error) {
	f := strings.Fields(target)
	if len(f) < 5 {
		return 0, 0, fmt.Errorf("waterfall: unparseable target %q", target)
	}
	var azDeg, elDeg float64
	if _, err = fmt.Sscan(f[1], &azDeg); err != nil {
		return 0, 0, fmt.Errorf("waterfall: bad azimuth in %q", target)
	}
	if _, err = fmt.Sscan(f[4], &elDeg); err != nil {
		return 0, 0, fmt.Errorf("waterfall: bad elevation in %q", target)
	}
	return unit.AngleFromDeg(azDeg), unit.AngleFromDeg(elDeg), nil
}

func read1D(g *hdf5.Group, name string) ([]float64, error) {
	d, err := g.OpenDataset(name)
	if err != nil {
		return nil, fmt.Errorf("no %s dataset: %v", name, err)
	}
	defer d.Close()
	dims, _, err := d.Space().SimpleExtentDims()
	if err != nil {
		return nil, err
	}
	if len(dims) != 1 {
		return nil, fmt.Errorf("%s: expected 1 dimension, found %d", name, len(dims))
	}
	data := make([]float64, dims[0])
	if err := d.Read(&data); err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	return data, nil
}

func read2D(g *hdf5.Group, name string) (data []float64, rows, cols int, err error) {
	d, err := g.OpenDataset(name)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("no %s dataset: %v", name, err)
	}
	defer d.Close()
	dims, _, err := d.Space().SimpleExtentDims()
	if err != nil {
		return nil, 0, 0, err
	}
	if len(dims) != 2 {
		return nil, 0, 0, fmt.Errorf("%s: expected 2 dimensions, found %d", name, len(dims))
	}
	rows, cols = int(dims[0]), int(dims[1])
	data = make([]float64, rows*cols)
	if err := d.Read(&data); err != nil {
		return nil, 0, 0, fmt.Errorf("%s: %v", name, err)
	}
	return data, rows, cols, nil
}

// readStringAttr reads a root level attribute.  File has no attribute
// access of its own, so go through the root group.
func readStringAttr(f *hdf5.File, name string) (string, error) {
	root, err := f.OpenGroup("/")
	if err != nil {
		return "", err
	}
	defer root.Close()
	return readGroupStringAttr(root, name)
}

func readGroupStringAttr(g *hdf5.Group, name string) (string, error) {
	a, err := g.OpenAttribute(name)
	if err != nil {
		return "", fmt.Errorf("no %s attribute: %v", name, err)
	}
	defer a.Close()
	var s string
	if err := a.Read(&s, hdf5.T_GO_STRING); err != nil {
		return "", fmt.Errorf("%s attribute: %v", name, err)
	}
	return s, nil
}
