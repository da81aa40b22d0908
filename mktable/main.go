// Public domain.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/soniakeys/exit"

	"github.com/lwatools/pointing/internal/catalog"
	"github.com/lwatools/pointing/internal/ephem"
	"github.com/lwatools/pointing/internal/results"
	"github.com/lwatools/pointing/internal/site"
)

func main() {
	defer exit.Handler()

	flag.Usage = func() {
		os.Stderr.WriteString(`Usage:
  mktable [options] <results file>

Convert a results file from procdrift to a LaTeX table suitable for a
pointing error memo.

Options:
  -v    use LWA-SV instead of LWA1
  -n    use LWA-NA instead of LWA1
  -o    use OVRO-LWA instead of LWA1
`)
	}
	lwasv := flag.Bool("v", false, "use LWA-SV")
	lwana := flag.Bool("n", false, "use LWA-NA")
	ovro := flag.Bool("o", false, "use OVRO-LWA")
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

	fmt.Println("\\begin{tabular}{|c|c|r|r|r|r|r|}")
	fmt.Println("\\hline")
	fmt.Println("Source Name & UTC Observation Midpoint & Azimuth & Elevation & RA Error & Dec. Error & SEFD\\\\")
	fmt.Println("~ & [YYYY/MM/DD HH:MM:SS] & [DDD:MM.SS.S] & [DD:MM:SS.S] & [HH:MM:SS.SS] & [DD:MM:SS.S] & [kJy] \\\\")
	fmt.Println("\\hline")
	fmt.Println("\\hline")

	for _, rec := range recs {
		src, ok := catalog.Lookup(rec.Name)
		if !ok {
			exit.Log(fmt.Errorf("unknown source %q in results", rec.Name))
		}
		az, el := ephem.Horizontal(src.RA, src.Dec, st, rec.Time)
		fmt.Printf("%-5s & %s & %11s & %11s & %11s & %11s & %4.1f\\\\\n",
			rec.Name, rec.Time.Format("2006/01/02 15:04:05"),
			results.FmtDMS(az, 1), results.FmtDMS(el, 1),
			results.FmtHMS(rec.RAErr, 2), results.FmtDMS(rec.DecErr, 1),
			rec.SEFD/1e3)
	}

	fmt.Println("\\hline")
	fmt.Println("\\end{tabular}")
	fmt.Println("\\caption[Right Ascension and Declination Pointing Errors]{\\label{tab:obs}List of Drift Scan Sets used to Determine the Pointing Error}")
}
