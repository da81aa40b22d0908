// Public domain.

package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/soniakeys/exit"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/lwatools/pointing/internal/catalog"
	"github.com/lwatools/pointing/internal/ephem"
	"github.com/lwatools/pointing/internal/site"
)

const timeLayout = "2006/01/02 15:04:05"

func main() {
	defer exit.Handler()

	flag.Usage = func() {
		os.Stderr.WriteString(`Usage:
  obstimes [options] <source name> YYYY/MM/DD

List the times a source rises through, transits, and sets through a
ladder of elevations (30 to 90 degrees) on a given UTC day.

Options:
  -v    compute for LWA-SV instead of LWA1
  -n    compute for LWA-NA instead of LWA1
  -o    compute for OVRO-LWA instead of LWA1
  -l    list valid sources and exit
  -e    comma separated list of additional elevations in degrees
`)
	}
	lwasv := flag.Bool("v", false, "compute for LWA-SV")
	lwana := flag.Bool("n", false, "compute for LWA-NA")
	ovro := flag.Bool("o", false, "compute for OVRO-LWA")
	list := flag.Bool("l", false, "list valid sources and exit")
	extra := flag.String("e", "", "additional elevations in degrees")
	flag.Parse()

	if *list {
		listSources()
		os.Exit(0)
	}
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	src, ok := catalog.Lookup(flag.Arg(0))
	if !ok {
		exit.Log(fmt.Errorf("cannot find source %q", flag.Arg(0)))
	}
	date := strings.ReplaceAll(flag.Arg(1), "-", "/")
	day, err := time.Parse("2006/1/2", date)
	if err != nil {
		exit.Log(fmt.Errorf("bad date %q: %v", flag.Arg(1), err))
	}
	st := site.Select(*lwasv, *lwana, *ovro)

	elevations := []float64{30, 40, 50, 60, 70, 80, 90}
	if *extra != "" {
		for _, f := range strings.Split(*extra, ",") {
			e, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				exit.Log(fmt.Errorf("bad elevation %q: %v", f, err))
			}
			elevations = append(elevations, e)
		}
		sort.Float64s(elevations)
	}

	y, m, d := day.Year(), int(day.Month()), day.Day()
	tRise := map[float64]time.Time{}
	tSet := map[float64]time.Time{}
	for _, el := range elevations {
		r, _, s, err := ephem.RiseSet(src.RA, src.Dec, st, y, m, d,
			unit.AngleFromDeg(el))
		if err != nil {
			// the source never crosses this elevation
			continue
		}
		tRise[el] = r
		tSet[el] = s
	}
	tTransit := ephem.Transit(src.RA, src.Dec, st, y, m, d)

	fmt.Printf("%s on %s UTC:\n", src.Name, date)

	fmt.Println("  rising")
	for _, el := range elevations {
		t, ok := tRise[el]
		if !ok {
			continue
		}
		az, alt := ephem.Horizontal(src.RA, src.Dec, st, t)
		fmt.Printf("    el: %4.1f degrees at %s (el: %4.1f, az: %5.1f)\n",
			el, t.Format(timeLayout), alt.Deg(), az.Deg())
	}

	fmt.Println("  transit")
	_, alt := ephem.Horizontal(src.RA, src.Dec, st, tTransit)
	fmt.Printf("    el: %4.1f degrees at %s\n",
		alt.Deg(), tTransit.Format(timeLayout))

	fmt.Println("  setting")
	for i := len(elevations) - 1; i >= 0; i-- {
		el := elevations[i]
		t, ok := tSet[el]
		if !ok {
			continue
		}
		az, alt := ephem.Horizontal(src.RA, src.Dec, st, t)
		fmt.Printf("    el: %4.1f degrees at %s (el: %4.1f, az: %5.1f)\n",
			el, t.Format(timeLayout), alt.Deg(), az.Deg())
	}
}

func listSources() {
	fmt.Println("Valid Sources:")
	fmt.Println(" ")
	fmt.Printf("%-8s  %11s  %11s  %6s\n", "Name", "RA", "Dec", "Epoch")
	fmt.Println(strings.Repeat("-", 42))
	for _, s := range catalog.All() {
		fmt.Printf("%-8s  %11s  %11s  %6d\n", s.Name,
			sexa.FmtRA(s.RA), sexa.FmtAngle(s.Dec), 2000)
	}
}
