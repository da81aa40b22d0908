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
  plotsefd [options] <results file>

Plot the SEFD estimates in a results file against zenith angle.

Options:
  -f    output file name (default "sefd.png")
`)
	}
	out := flag.String("f", "sefd.png", "output file name")
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
		pts = append(pts, resplot.Point{
			X:     rec.Zenith.Deg(),
			Y:     rec.SEFD / 1e3,
			Label: rec.Name,
		})
	}
	p, err := resplot.Zenith("SEFD Estimates", "SEFD [kJy]", pts)
	if err != nil {
		exit.Log(err)
	}
	if err := resplot.Save(p, *out); err != nil {
		exit.Log(err)
	}
	fmt.Println("->", *out)
}
