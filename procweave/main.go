// Public domain.

package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/soniakeys/exit"
	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/interp"

	"github.com/lwatools/pointing/internal/catalog"
	"github.com/lwatools/pointing/internal/driftfit"
	"github.com/lwatools/pointing/internal/ephem"
	"github.com/lwatools/pointing/internal/resplot"
	"github.com/lwatools/pointing/internal/results"
	"github.com/lwatools/pointing/internal/site"
	"github.com/lwatools/pointing/internal/waterfall"
)

func main() {
	defer exit.Handler()

	flag.Usage = func() {
		os.Stderr.WriteString(`Usage:
  procweave [options] file.hdf5 [file.hdf5 ...]

Given the waterfall file of a basket weave observation generated by
genweave, fit the two coordinate cuts to determine the current pointing
offset and estimate the SEFD and FWHM.  One results line per tuning is
written to standard output.

Options:
  -v    assume LWA-SV when the files do not name their station
  -n    assume LWA-NA when the files do not name their station
  -o    assume OVRO-LWA when the files do not name their station
  -p    cut plot file prefix, empty to disable (default "weave")
`)
	}
	lwasv := flag.Bool("v", false, "assume LWA-SV")
	lwana := flag.Bool("n", false, "assume LWA-NA")
	ovro := flag.Bool("o", false, "assume OVRO-LWA")
	plotPrefix := flag.String("p", "weave", "plot file prefix")
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	var recs []results.Record
	for _, fn := range flag.Args() {
		r, err := processFile(fn, *lwasv, *lwana, *ovro, *plotPrefix)
		if err != nil {
			exit.Log(err)
		}
		recs = append(recs, r...)
	}

	fmt.Fprintln(os.Stderr, results.Header)
	for _, rec := range recs {
		fmt.Println(rec.String())
	}
}

func processFile(fn string, lwasv, lwana, ovro bool, plotPrefix string) ([]results.Record, error) {
	o, err := waterfall.Read(fn)
	if err != nil {
		return nil, err
	}
	if len(o.Steps) == 0 {
		return nil, fmt.Errorf("%s: no pointing steps, not a basket weave recording", fn)
	}

	st := site.Select(lwasv, lwana, ovro)
	if o.Station != "" {
		st, err = site.ByID(o.Station)
		if err != nil {
			return nil, err
		}
		fmt.Printf("Data appears to be from %s\n", st.Name)
	}

	src, ok := catalog.Lookup(o.Name)
	if !ok {
		return nil, fmt.Errorf("%s: unknown source %q", fn, o.Name)
	}
	cmdAz, cmdEl, err := waterfall.ParseTargetAzEl(o.Target)
	if err != nil {
		return nil, err
	}
	zenith := ephem.ZenithAngle(cmdEl)
	tTransit := expectedTransit(src, st, o.Time, cmdAz, cmdEl)
	if !src.HasFlux {
		fmt.Println("Warning: Cannot find flux for this target")
	}

	for _, tn := range o.Tunings {
		max := tn.I[0]
		for _, v := range tn.I {
			if v > max {
				max = v
			}
		}
		for i := range tn.I {
			tn.I[i] /= max
		}
	}

	raCtr, decCtr := centerPointing(o.Steps)
	onSrc, raCut, decCut := partition(o.Steps, raCtr, decCtr)
	m, pwr := stepAverages(o)

	// the interleaved on source steps track the ionosphere; dividing
	// every step by their power interpolated to its time flattens it out
	for ti := range pwr {
		if err := correctIonosphere(m, pwr[ti], onSrc); err != nil {
			return nil, fmt.Errorf("%s: %v", fn, err)
		}
	}
	raCut = weed(raCut, pwr)
	decCut = weed(decCut, pwr)

	var recs []results.Record
	for ti, tn := range o.Tunings {
		freq := tn.CenterFreq()
		fmt.Printf("Tuning %d @ %.3f MHz\n", ti+1, freq/1e6)

		decFit, err := fitCut(o.Steps, decCut, pwr[ti], stepDec, 2)
		if err != nil {
			return nil, fmt.Errorf("%s tuning %d dec cut: %v", fn, ti+1, err)
		}
		decOffset := decFit.Center - decCtr
		fwhmD := decFit.Width
		fmt.Println("  Dec")
		fmt.Printf("    FWHM Estimate: %.2f deg\n", fwhmD)
		fmt.Printf("    Pointing Error: %.4f deg\n", decOffset)
		sefdD := reportSEFD(src, freq, unixTime(tTransit), decFit.SEFDMetric())

		raFit, err := fitCut(o.Steps, raCut, pwr[ti], stepRA, 2.0/15)
		if err != nil {
			return nil, fmt.Errorf("%s tuning %d RA cut: %v", fn, ti+1, err)
		}
		raOffset := raFit.Center - raCtr // hours
		fwhmR := raFit.Width * 15 * unit.AngleFromDeg(decCtr).Cos()
		fmt.Println("  RA")
		fmt.Printf("    FWHM Estimate: %.2f deg\n", fwhmR)
		fmt.Printf("    Pointing Error: %.4f h\n", raOffset)
		sefdR := reportSEFD(src, freq, unixTime(tTransit), raFit.SEFDMetric())

		sefd := -1.0
		if sefdD >= 0 && sefdR >= 0 {
			sefd = (sefdD + sefdR) / 2
		}
		recs = append(recs, results.Record{
			Name:    src.Name,
			Time:    unixTime(tTransit),
			FreqMHz: freq / 1e6,
			Zenith:  zenith,
			RAErr:   unit.HourAngle(unit.AngleFromDeg(raOffset * 15)),
			DecErr:  unit.AngleFromDeg(decOffset),
			SEFD:    sefd,
			FWHM:    unit.AngleFromDeg((fwhmD + fwhmR) / 2),
		})

		if plotPrefix != "" {
			title := fmt.Sprintf("%s @ %s: %.2f MHz", src.Name, st.Name, freq/1e6)
			err = savePlot(title, "Dec. [deg]", o.Steps, decCut, pwr[ti], stepDec,
				decFit, decCtr, fmt.Sprintf("%s_tuning%d_dec.png", plotPrefix, ti+1))
			if err != nil {
				return nil, err
			}
			err = savePlot(title, "RA [h]", o.Steps, raCut, pwr[ti], stepRA,
				raFit, raCtr, fmt.Sprintf("%s_tuning%d_ra.png", plotPrefix, ti+1))
			if err != nil {
				return nil, err
			}
		}
	}
	return recs, nil
}

// centerPointing finds the reference coordinates as the most commonly
// commanded RA and dec over the steps.
func centerPointing(steps []waterfall.Step) (ra, dec float64) {
	raN, decN := map[float64]int{}, map[float64]int{}
	for _, s := range steps {
		raN[s.RA]++
		decN[s.Dec]++
	}
	best := 0
	for v, n := range raN {
		if n > best {
			ra, best = v, n
		}
	}
	best = 0
	for v, n := range decN {
		if n > best {
			dec, best = v, n
		}
	}
	return ra, dec
}

// partition splits the step indices into the on source ionospheric
// reference and the two cuts.  The reference steps are the even indexed
// center pointings; the odd indexed center pointings belong to whichever
// cut surrounds them, dec in the first half of the sequence and RA in
// the second.
func partition(steps []waterfall.Step, raCtr, decCtr float64) (onSrc, raCut, decCut []int) {
	half := len(steps) / 2
	for i, s := range steps {
		ctr := s.RA == raCtr && s.Dec == decCtr
		switch {
		case ctr && i%2 == 0:
			onSrc = append(onSrc, i)
		case s.RA != raCtr && s.Dec == decCtr, ctr && i%2 == 1 && i > half:
			raCut = append(raCut, i)
		case s.RA == raCtr && s.Dec != decCtr, ctr && i%2 == 1 && i < half:
			decCut = append(decCut, i)
		}
	}
	return
}

// stepAverages collapses the integrations of each step to a mean time
// and a robust mean power per tuning.  Steps with no recorded
// integrations come out NaN and are weeded later.
func stepAverages(o *waterfall.Observation) (m []float64, pwr [][]float64) {
	m = make([]float64, len(o.Steps))
	pwr = make([][]float64, len(o.Tunings))
	for ti := range pwr {
		pwr[ti] = make([]float64, len(o.Steps))
	}
	for i, s := range o.Steps {
		stop := math.Inf(1)
		if i+1 < len(o.Steps) {
			stop = o.Steps[i+1].Start
		}
		var sum float64
		var idx []int
		for j, t := range o.Time {
			if t >= s.Start && t < stop {
				idx = append(idx, j)
				sum += t
			}
		}
		if len(idx) == 0 {
			m[i] = math.NaN()
			for ti := range pwr {
				pwr[ti][i] = math.NaN()
			}
			continue
		}
		m[i] = sum / float64(len(idx))
		for ti, tn := range o.Tunings {
			sel := make([]float64, len(idx))
			for k, j := range idx {
				sel[k] = tn.I[j]
			}
			pwr[ti][i] = driftfit.RobustMean(sel)
		}
	}
	return
}

// correctIonosphere divides every step power by the on source power
// interpolated linearly to the step time.  Steps outside the reference
// span cannot be corrected and are set NaN.
func correctIonosphere(m, pwr []float64, onSrc []int) error {
	var xs, ys []float64
	for _, i := range onSrc {
		if math.IsNaN(m[i]) || math.IsNaN(pwr[i]) {
			continue
		}
		xs = append(xs, m[i])
		ys = append(ys, pwr[i])
	}
	if len(xs) < 2 {
		return fmt.Errorf("only %d usable on source reference steps", len(xs))
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return err
	}
	for i := range pwr {
		if math.IsNaN(m[i]) || m[i] < xs[0] || m[i] > xs[len(xs)-1] {
			pwr[i] = math.NaN()
			continue
		}
		pwr[i] /= pl.Predict(m[i])
	}
	return nil
}

// weed drops cut indices whose corrected power is unusable in any tuning.
func weed(cut []int, pwr [][]float64) []int {
	var kept []int
	for _, i := range cut {
		ok := true
		for ti := range pwr {
			if !isFinite(pwr[ti][i]) {
				ok = false
			}
		}
		if ok {
			kept = append(kept, i)
		}
	}
	return kept
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func stepRA(s waterfall.Step) float64  { return s.RA }
func stepDec(s waterfall.Step) float64 { return s.Dec }

// fitCut runs the Gaussian cut fit on the selected steps with coord
// picking the cut coordinate.
func fitCut(steps []waterfall.Step, cut []int, pwr []float64, coord func(waterfall.Step) float64, width0 float64) (driftfit.Profile, error) {
	x := make([]float64, len(cut))
	y := make([]float64, len(cut))
	for k, i := range cut {
		x[k] = coord(steps[i])
		y[k] = pwr[i]
	}
	return driftfit.FitCut(x, y, width0)
}

// reportSEFD prints the sensitivity line for one cut and returns the
// SEFD in Jy, -1 when the source flux is unknown.
func reportSEFD(src catalog.Source, freq float64, t time.Time, metric float64) float64 {
	if flux, ok := src.FluxJy(freq, t); ok {
		sefd := flux * metric
		fmt.Printf("    S / (P1/P0 - 1): %.3f kJy\n", sefd/1e3)
		return sefd
	}
	fmt.Printf("    1/(P1/P0 - 1): %.3f\n", metric)
	return -1
}

func savePlot(title, xlabel string, steps []waterfall.Step, cut []int, pwr []float64, coord func(waterfall.Step) float64, prof driftfit.Profile, center float64, name string) error {
	x := make([]float64, len(cut))
	y := make([]float64, len(cut))
	lo, hi := math.Inf(1), math.Inf(-1)
	for k, i := range cut {
		x[k] = coord(steps[i])
		y[k] = pwr[i]
		lo = math.Min(lo, x[k])
		hi = math.Max(hi, x[k])
	}
	xf := make([]float64, 101)
	yf := make([]float64, 101)
	for i := range xf {
		xf[i] = lo + (hi-lo)*float64(i)/100
		yf[i] = prof.Eval(xf[i])
	}
	p, err := resplot.WeaveCut(title, xlabel, x, y, xf, yf, center)
	if err != nil {
		return err
	}
	return resplot.Save(p, name)
}

// expectedTransit scans the recorded timestamps for the one where the
// source is closest to the commanded pointing.
func expectedTransit(src catalog.Source, st site.Site, times []float64, az, el unit.Angle) float64 {
	best := times[0]
	bestSep := unit.Angle(math.Inf(1))
	for _, t := range times {
		sAz, sEl := ephem.Horizontal(src.RA, src.Dec, st, unixTime(t))
		sep := ephem.Separation(sAz, sEl, az, el)
		if sep < bestSep {
			best, bestSep = t, sep
		}
	}
	return best
}

func unixTime(t float64) time.Time {
	sec := math.Floor(t)
	return time.Unix(int64(sec), int64((t-sec)*1e9)).UTC()
}
