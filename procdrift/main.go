// Public domain.

package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/soniakeys/exit"
	"github.com/soniakeys/unit"

	"github.com/lwatools/pointing/internal/catalog"
	"github.com/lwatools/pointing/internal/driftfit"
	"github.com/lwatools/pointing/internal/ephem"
	"github.com/lwatools/pointing/internal/resplot"
	"github.com/lwatools/pointing/internal/results"
	"github.com/lwatools/pointing/internal/site"
	"github.com/lwatools/pointing/internal/waterfall"
)

const timeLayout = "2006-01-02 15:04:05"

func main() {
	defer exit.Handler()

	flag.Usage = func() {
		os.Stderr.WriteString(`Usage:
  procdrift [options] file.hdf5 [file.hdf5 ...]

Given the waterfall files of a drift scan set generated by gendrift,
fit the drift profiles to determine the current pointing offset and
estimate the SEFD and FWHM.  One results line per tuning is written to
standard output.

Options:
  -v    assume LWA-SV when the files do not name their station
  -n    assume LWA-NA when the files do not name their station
  -o    assume OVRO-LWA when the files do not name their station
  -p    drift profile plot file prefix, empty to disable (default "drift")
`)
	}
	lwasv := flag.Bool("v", false, "assume LWA-SV")
	lwana := flag.Bool("n", false, "assume LWA-NA")
	ovro := flag.Bool("o", false, "assume OVRO-LWA")
	plotPrefix := flag.String("p", "drift", "plot file prefix")
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	var scans []*waterfall.Observation
	for _, fn := range flag.Args() {
		o, err := waterfall.Read(fn)
		if err != nil {
			exit.Log(err)
		}
		scans = append(scans, o)
	}

	st := site.Select(*lwasv, *lwana, *ovro)
	for _, o := range scans {
		if o.Station == "" {
			continue
		}
		named, err := site.ByID(o.Station)
		if err != nil {
			exit.Log(err)
		}
		fmt.Printf("Data appears to be from %s\n", named.Name)
		st = named
		break
	}

	// the scan recorded on the source itself anchors the set
	var target *waterfall.Observation
	var src catalog.Source
	for _, o := range scans {
		if s, ok := catalog.Lookup(o.Name); ok {
			target, src = o, s
			break
		}
	}
	if target == nil {
		exit.Log(fmt.Errorf("unknown source in input files"))
	}

	cmdAz, cmdEl, err := waterfall.ParseTargetAzEl(target.Target)
	if err != nil {
		exit.Log(err)
	}
	zenith := ephem.ZenithAngle(cmdEl)

	// when the source should have transited the beam: the time its
	// position is closest to the commanded pointing
	tTransit := expectedTransit(src, st, target.Time, cmdAz, cmdEl)

	if !src.HasFlux {
		fmt.Println("Warning: Cannot find flux for this target")
	}

	tStartPlot := math.Inf(1)
	for _, o := range scans {
		if o.Time[0] < tStartPlot {
			tStartPlot = o.Time[0]
		}
	}

	nTunings := len(scans[0].Tunings)
	var recs []results.Record
	for ti := 0; ti < nTunings; ti++ {
		freq := scans[0].Tunings[ti].CenterFreq()

		type scanFit struct {
			name   string
			offset float64 // observed minus expected transit, s
			power  float64 // fitted profile amplitude
			fwhm   float64 // deg
			metric float64 // Offset/Height of the fit
		}
		var fits []scanFit
		var curves []resplot.Curve
		for _, o := range scans {
			power := driftfit.Clean(o.Tunings[ti].I, 201, 4)
			max := power[0]
			for _, v := range power {
				if v > max {
					max = v
				}
			}
			for i := range power {
				power[i] /= max
			}

			prof, err := driftfit.FitDriftscan(o.Time, power, false)
			if err != nil {
				exit.Log(fmt.Errorf("%s tuning %d: %v", o.Name, ti+1, err))
			}
			fit := make([]float64, len(o.Time))
			lo, hi := math.Inf(1), math.Inf(-1)
			for i, t := range o.Time {
				fit[i] = prof.Eval(t)
				lo = math.Min(lo, fit[i])
				hi = math.Max(hi, fit[i])
			}
			diff := driftfit.WrapSidereal(prof.Center - tTransit)
			fwhmDeg := driftfit.WidthAngle(prof.Width, src.Dec).Deg()
			fits = append(fits, scanFit{o.Name, diff, hi - lo, fwhmDeg, prof.SEFDMetric()})

			pt := make([]float64, len(o.Time))
			for i, t := range o.Time {
				pt[i] = driftfit.WrapSidereal(t - tStartPlot)
			}
			curves = append(curves, resplot.Curve{Name: o.Name, T: pt, Data: power, Fit: fit})

			fmt.Printf("Target: %s\n", o.Name)
			fmt.Printf("  Tuning %d @ %.2f MHz\n", ti+1, freq/1e6)
			fmt.Printf("    FWHM: %.2f s (%.2f deg)\n", prof.Width, fwhmDeg)
			fmt.Printf("    Observed Transit: %s\n", unixTime(prof.Center).Format(timeLayout))
			fmt.Printf("    Expected Transit: %s\n", unixTime(tTransit).Format(timeLayout))
			fmt.Printf("    -> Difference: %.2f s\n", diff)
			if flux, ok := src.FluxJy(freq, unixTime(tTransit)); ok {
				fmt.Printf("    S / (P1/P0 - 1): %.3f kJy\n", flux*prof.SEFDMetric()/1e3)
			} else {
				fmt.Printf("    1/(P1/P0 - 1): %.3f\n", prof.SEFDMetric())
			}
			fmt.Println(" ")
		}

		// the strongest response picks the RA offset and FWHM; the
		// relative powers of the three pointings give the dec offset
		best := fits[0]
		var sefd float64 = -1
		var do, dp []float64
		for _, f := range fits {
			if f.power > best.power {
				best = f
			}
			switch {
			case strings.Contains(strings.ToLower(f.name), "north"):
				do = append(do, 1)
			case strings.Contains(strings.ToLower(f.name), "south"):
				do = append(do, -1)
			default:
				do = append(do, 0)
				if flux, ok := src.FluxJy(freq, unixTime(tTransit)); ok {
					sefd = flux * f.metric
				}
			}
			dp = append(dp, f.power)
		}
		sort.Sort(byOffset{do, dp})

		decOffset, err := driftfit.FitDecOffset(do, dp, best.fwhm)
		if err != nil {
			decOffset = -99
		}

		recs = append(recs, results.Record{
			Name:    src.Name,
			Time:    unixTime(tTransit),
			FreqMHz: freq / 1e6,
			Zenith:  zenith,
			RAErr:   unit.HourAngle(unit.AngleFromDeg(best.offset / 3600 * 15)),
			DecErr:  unit.AngleFromDeg(decOffset),
			SEFD:    sefd,
			FWHM:    unit.AngleFromDeg(best.fwhm),
		})

		if *plotPrefix != "" {
			p, err := resplot.DriftProfile(
				fmt.Sprintf("%s: %.2f MHz", st.Name, freq/1e6),
				curves, driftfit.WrapSidereal(tTransit-tStartPlot))
			if err != nil {
				exit.Log(err)
			}
			name := fmt.Sprintf("%s_tuning%d.png", *plotPrefix, ti+1)
			if err := resplot.Save(p, name); err != nil {
				exit.Log(err)
			}
		}
	}

	fmt.Fprintln(os.Stderr, results.Header)
	for _, rec := range recs {
		fmt.Println(rec.String())
	}
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

// byOffset sorts the dec offset and power slices together by offset.
type byOffset struct{ do, dp []float64 }

func (s byOffset) Len() int           { return len(s.do) }
func (s byOffset) Less(i, j int) bool { return s.do[i] < s.do[j] }
func (s byOffset) Swap(i, j int) {
	s.do[i], s.do[j] = s.do[j], s.do[i]
	s.dp[i], s.dp[j] = s.dp[j], s.dp[i]
}
