// Public domain.

package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/soniakeys/exit"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/lwatools/pointing/internal/catalog"
	"github.com/lwatools/pointing/internal/ephem"
	"github.com/lwatools/pointing/internal/sdf"
	"github.com/lwatools/pointing/internal/site"
)

func main() {
	defer exit.Handler()

	flag.Usage = func() {
		os.Stderr.WriteString(`Usage:
  genweave [options] <source name> YYYY/MM/DD HH:MM:SS[.SS]

Generate a basket weave SDF for a pointing check: short pointings stepped
across the source in declination and then in right ascension, each
interleaved with a reference pointing back on the source.

Options:
  -v    generate for LWA-SV instead of LWA1
  -n    generate for LWA-NA instead of LWA1
  -o    generate for OVRO-LWA instead of LWA1
  -l    list valid sources and exit
  -s    session ID to use (default 1001)
`)
	}
	lwasv := flag.Bool("v", false, "generate for LWA-SV")
	lwana := flag.Bool("n", false, "generate for LWA-NA")
	ovro := flag.Bool("o", false, "generate for OVRO-LWA")
	list := flag.Bool("l", false, "list valid sources and exit")
	session := flag.Int("s", 1001, "session ID")
	flag.Parse()

	if *list {
		listSources()
		os.Exit(0)
	}
	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}
	src, ok := catalog.Lookup(flag.Arg(0))
	if !ok {
		exit.Log(fmt.Errorf("unknown source %q", flag.Arg(0)))
	}
	mid, err := parseDateTime(flag.Arg(1), flag.Arg(2))
	if err != nil {
		exit.Log(err)
	}
	st := site.Select(*lwasv, *lwana, *ovro)
	setup := sdf.WeaveDefaults(st)

	az, el := ephem.Horizontal(src.RA, src.Dec, st, mid)
	azDeg := math.Mod(math.Round(az.Deg()*10)/10, 360)
	elDeg := math.Round(el.Deg()*10) / 10

	raHours := unit.HourAngle(src.RA).Hour()
	decDeg := src.Dec.Deg()

	// weave pattern: 17 pointings stepped -4 to +4 degrees across the
	// source in declination, then 17 in right ascension, each preceded
	// by a reference pointing on the source
	type pnt struct{ ra, dec float64 }
	var weave []pnt
	for i := 0; i < 17; i++ {
		off := -4 + 0.5*float64(i)
		weave = append(weave, pnt{raHours, decDeg + off})
	}
	cosDec := math.Cos(src.Dec.Rad())
	for i := 0; i < 17; i++ {
		off := (-4 + 0.5*float64(i)) / cosDec
		weave = append(weave, pnt{raHours + off/15, decDeg})
	}
	var pnts []pnt
	for _, p := range weave {
		pnts = append(pnts, pnt{raHours, decDeg}, p)
	}

	start := mid.Add(-time.Duration(len(pnts)/2) * setup.Step)

	fmt.Printf("Start of observations: %s\n", start.Format("2006-01-02 15:04:05"))
	fmt.Printf("Mid-point of observation: %s\n", mid.Format("2006-01-02 15:04:05"))
	fmt.Println(" ")

	obs := &sdf.Stepped{
		Name:   src.Name,
		Target: fmt.Sprintf("Az: %.1f degrees; El: %.1f degrees", azDeg, elDeg),
		Start:  start,
		Filter: setup.Filter,
		RADec:  true,
	}
	for _, p := range pnts {
		obs.Steps = append(obs.Steps, sdf.BeamStep{
			C1: p.ra, C2: p.dec, Dur: setup.Step,
			Freq1: 37.9e6, Freq2: 74.03e6, RADec: true,
		})
	}
	proj := &sdf.Project{
		Observer: sdf.Observer{Name: "Jayce Dowell", ID: 99},
		Title:    "DRX Pointing Weave",
		ID:       "COMST",
		Sessions: []*sdf.Session{{
			Name:         "Pointing Weave Session Using " + src.Name,
			ID:           *session,
			DRXBeam:      setup.Beam,
			Spec:         setup.Spec,
			Observations: []*sdf.Stepped{obs},
		}},
	}

	name := fmt.Sprintf("COMST_%s_%s_%s_B%d.sdf",
		start.Format("060102"), start.Format("1504"), src.Name, setup.Beam)
	if err := os.WriteFile(name, []byte(proj.Render()), 0666); err != nil {
		exit.Log(err)
	}
	fmt.Println("->", name)
}

func parseDateTime(date, clock string) (time.Time, error) {
	date = strings.ReplaceAll(date, "-", "/")
	if i := strings.LastIndex(clock, "."); i >= 0 {
		clock = clock[:i]
	}
	t, err := time.Parse("2006/1/2 15:04:05", date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad UTC date/time: %v", err)
	}
	return t, nil
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
