// Public domain.

package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/stat"

	"github.com/soniakeys/exit"
	"github.com/soniakeys/unit"

	"github.com/lwatools/pointing/internal/catalog"
	"github.com/lwatools/pointing/internal/ephem"
	"github.com/lwatools/pointing/internal/pointfit"
	"github.com/lwatools/pointing/internal/resplot"
	"github.com/lwatools/pointing/internal/results"
	"github.com/lwatools/pointing/internal/site"
)

func main() {
	defer exit.Handler()

	flag.Usage = func() {
		os.Stderr.WriteString(`Usage:
  fitaxis [options] <results file> [<results file> ...]

Given results files of pointing error measurements from procdrift, fit
the rigid rotation about an axis that best explains the errors, and
report error statistics before and after the correction.

Options:
  -v    use LWA-SV instead of LWA1
  -n    use LWA-NA instead of LWA1
  -o    use OVRO-LWA instead of LWA1
  -p    before/after plot file prefix, empty to disable (default "pointing")
`)
	}
	lwasv := flag.Bool("v", false, "use LWA-SV")
	lwana := flag.Bool("n", false, "use LWA-NA")
	ovro := flag.Bool("o", false, "use OVRO-LWA")
	plotPrefix := flag.String("p", "pointing", "plot file prefix")
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	st := site.Select(*lwasv, *lwana, *ovro)
	fmt.Printf("Station: %s\n", st.Name)
	fmt.Println(" ")

	var recs []results.Record
	for _, fn := range flag.Args() {
		r, err := results.ReadFile(fn)
		if err != nil {
			exit.Log(err)
		}
		recs = append(recs, r...)
	}

	// analyze each observing frequency separately
	var freqs []float64
	groups := map[float64][]results.Record{}
	for _, rec := range recs {
		if _, ok := groups[rec.FreqMHz]; !ok {
			freqs = append(freqs, rec.FreqMHz)
		}
		groups[rec.FreqMHz] = append(groups[rec.FreqMHz], rec)
	}

	for _, freq := range freqs {
		group := groups[freq]
		if len(groups) > 1 {
			fmt.Printf("Working on %.3f MHz\n", freq)
		}
		data, err := pointings(group, st)
		if err != nil {
			exit.Log(err)
		}

		rms0 := pointfit.RMS(data, pointfit.Rotation{})
		fmt.Println("No correction:")
		fmt.Println("  Theta: None applied")
		fmt.Println("  Phi:   None applied")
		fmt.Println("  Psi:   None applied")
		fmt.Printf("  -> RMS: %.3f degrees\n", rms0.Deg())

		rot, rms, err := pointfit.Fit(data, pointfit.DefaultOptions)
		var dgn *pointfit.DegenerateError
		if errors.As(err, &dgn) {
			exit.Log(fmt.Errorf("measurement set too degenerate to fit: %v", dgn))
		} else if err != nil {
			exit.Log(err)
		}
		fmt.Println("Best fit:")
		fmt.Printf("  Theta: %.1f degrees\n", rot.Theta.Deg())
		fmt.Printf("  Phi:   %.1f degrees\n", rot.Phi.Deg())
		fmt.Printf("  Psi:   %.1f degrees\n", rot.Psi.Deg())
		fmt.Printf("  -> RMS: %.3f degrees\n", rms.Deg())

		raw := errorPoints(group, data, pointfit.Rotation{})
		corrected := errorPoints(group, data, rot)
		report("Raw Offsets:", raw)
		report("Corrected Offsets:", corrected)

		if *plotPrefix != "" {
			p, err := resplot.Residuals(
				fmt.Sprintf("%s: %.2f MHz", st.Name, freq), raw, corrected)
			if err != nil {
				exit.Log(err)
			}
			name := fmt.Sprintf("%s_%.2fMHz.png", *plotPrefix, freq)
			if err := resplot.Save(p, name); err != nil {
				exit.Log(err)
			}
		}
	}
}

// pointings converts results records to commanded/measured pointing
// pairs.  The commanded direction is where the source truly was at the
// observation midpoint; the measured one is where the offset-corrected
// coordinates put it.
func pointings(group []results.Record, st site.Site) ([]pointfit.Pointing, error) {
	var data []pointfit.Pointing
	for _, rec := range group {
		src, ok := catalog.Lookup(rec.Name)
		if !ok {
			return nil, fmt.Errorf("unknown source %q in results", rec.Name)
		}
		az, el := ephem.Horizontal(src.RA, src.Dec, st, rec.Time)
		mAz, mEl := ephem.Horizontal(
			src.RA+unit.RA(rec.RAErr), src.Dec+rec.DecErr, st, rec.Time)
		data = append(data, pointfit.Pointing{
			Name: rec.Name,
			Az:   az, El: el,
			MeasAz: mAz, MeasEl: mEl,
		})
	}
	return data, nil
}

// errorPoints computes per-measurement angular errors, in degrees
// against zenith angle, after applying a candidate rotation to the
// commanded directions.
func errorPoints(group []results.Record, data []pointfit.Pointing, rot pointfit.Rotation) []resplot.Point {
	pts := make([]resplot.Point, len(data))
	for i, p := range data {
		az, el := rot.Apply(p.Az, p.El)
		sep := ephem.Separation(az, el, p.MeasAz, p.MeasEl)
		pts[i] = resplot.Point{
			X:     group[i].Zenith.Deg(),
			Y:     sep.Deg(),
			Label: p.Name,
		}
	}
	return pts
}

func report(title string, pts []resplot.Point) {
	zeniths := make([]float64, len(pts))
	errs := make([]float64, len(pts))
	var sum, sumSq float64
	for i, pt := range pts {
		zeniths[i], errs[i] = pt.X, pt.Y
		sum += pt.Y
		sumSq += pt.Y * pt.Y
	}
	n := float64(len(pts))
	_, slope := stat.LinearRegression(zeniths, errs, nil, false)
	r := stat.Correlation(zeniths, errs, nil)

	fmt.Println(title)
	fmt.Printf("  Mean Error: %.3f degrees\n", sum/n)
	fmt.Printf("  RMS Error:  %.3f degrees\n", math.Sqrt(sumSq/n))
	fmt.Printf("  Error Slope:   %.3f degrees/degree\n", slope)
	fmt.Printf("  Error R-Value: %.3f\n", r)
}
