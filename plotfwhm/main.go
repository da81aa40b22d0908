// Public domain.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/soniakeys/exit"

	"github.com/lwatools/pointing/internal/resplot"
	"github.com/lwatools/pointing/internal/results"
)

func main() {
	defer exit.Handler()

	flag.Usage = func() {
		os.Stderr.WriteString(`Usage:
  plotfwhm [options] <results file>

Plot the beam FWHM estimates in a results file against zenith angle.
Records without a FWHM estimate are skipped.

Options:
  -f    output file name (default "fwhm.png")
`)
	}
	out := flag.String("f", "fwhm.png", "output file name")
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	recs, err := results.ReadFile(flag.Arg(0))
	if err != nil {
		exit.Log(err)
	}

	var pts []resplot.Point
	for _, rec := range recs {
		if rec.FWHM < 0 {
			continue
		}
		pts = append(pts, resplot.Point{
			X:     rec.Zenith.Deg(),
			Y:     rec.FWHM.Deg(),
			Label: rec.Name,
		})
	}
	p, err := resplot.Zenith("FWHM Estimates", "FWHM [deg]", pts)
	if err != nil {
		exit.Log(err)
	}
	if err := resplot.Save(p, *out); err != nil {
		exit.Log(err)
	}
	fmt.Println("->", *out)
}
