// Public domain.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/soniakeys/exit"

	"github.com/lwatools/pointing/internal/catalog"
	"github.com/lwatools/pointing/internal/ephem"
	"github.com/lwatools/pointing/internal/resplot"
	"github.com/lwatools/pointing/internal/results"
	"github.com/lwatools/pointing/internal/site"
)

func main() {
	defer exit.Handler()

	flag.Usage = func() {
		os.Stderr.WriteString(`Usage:
  plotsky [options] <results file>

Plot the sky coverage of the observations in a results file.

Options:
  -v    use LWA-SV instead of LWA1
  -n    use LWA-NA instead of LWA1
  -o    use OVRO-LWA instead of LWA1
  -f    output file name (default "sky.png")
`)
	}
	lwasv := flag.Bool("v", false, "use LWA-SV")
	lwana := flag.Bool("n", false, "use LWA-NA")
	ovro := flag.Bool("o", false, "use OVRO-LWA")
	out := flag.String("f", "sky.png", "output file name")
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	st := site.Select(*lwasv, *lwana, *ovro)

	recs, err := results.ReadFile(flag.Arg(0))
	if err != nil {
		exit.Log(err)
	}

	var pts []resplot.SkyPoint
	for _, rec := range recs {
		src, ok := catalog.Lookup(rec.Name)
		if !ok {
			exit.Log(fmt.Errorf("unknown source %q in results", rec.Name))
		}
		az, el := ephem.Horizontal(src.RA, src.Dec, st, rec.Time)
		pts = append(pts, resplot.SkyPoint{Az: az, El: el, Label: rec.Name})
	}
	p, err := resplot.SkyCoverage("Observation Sky Coverage", pts)
	if err != nil {
		exit.Log(err)
	}
	if err := resplot.Save(p, *out); err != nil {
		exit.Log(err)
	}
	fmt.Println("->", *out)
}
