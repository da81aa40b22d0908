// Public domain.

package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
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
  gendrift [options] <source name> YYYY/MM/DD HH:MM:SS[.SS]

Generate the SDFs for a drift scan pointing/sensitivity check centered on
the given UTC transit time: the target plus pointings offset one degree
north and south in declination.

Options:
  -v    generate for LWA-SV instead of LWA1
  -n    generate for LWA-NA instead of LWA1
  -o    generate for OVRO-LWA instead of LWA1
  -l    list valid sources and exit
  -d    observation length in seconds (default 7200)
  -t    generate the SDF for the target source only
  -s    comma separated list of session IDs (default 1001,1002,1003)
  -f    comma separated tuning center frequencies in MHz (default 37.9,74.03)
  -u    optional UCF username for data copy
`)
	}
	lwasv := flag.Bool("v", false, "generate for LWA-SV")
	lwana := flag.Bool("n", false, "generate for LWA-NA")
	ovro := flag.Bool("o", false, "generate for OVRO-LWA")
	list := flag.Bool("l", false, "list valid sources and exit")
	duration := flag.Float64("d", 7200, "observation length in seconds")
	targetOnly := flag.Bool("t", false, "generate the target SDF only")
	sessionArg := flag.String("s", "1001,1002,1003", "session IDs")
	freqArg := flag.String("f", "37.9,74.03", "tuning frequencies in MHz")
	ucf := flag.String("u", "", "UCF username for data copy")
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
	sessions, err := parseSessions(*sessionArg)
	if err != nil {
		exit.Log(err)
	}
	freq1, freq2, err := parseFreqs(*freqArg)
	if err != nil {
		exit.Log(err)
	}
	st := site.Select(*lwasv, *lwana, *ovro)
	setup := sdf.DriftSetup(st)
	dur := time.Duration(*duration * float64(time.Second))
	start := mid.Add(-dur / 2)

	fmt.Printf("Start of observations: %s\n", start.Format("2006-01-02 15:04:05"))
	fmt.Printf("Mid-point of observation: %s\n", mid.Format("2006-01-02 15:04:05"))
	fmt.Println(" ")

	// the target and the two offset pointings, frozen at the az/el they
	// have at the transit midpoint
	targets := []struct {
		name string
		dec  unit.Angle
	}{
		{src.Name, src.Dec},
		{"Offset to the north", src.Dec + unit.AngleFromDeg(1)},
		{"Offset to the south", src.Dec - unit.AngleFromDeg(1)},
	}

	for i, tgt := range targets {
		if *targetOnly && i > 0 {
			continue
		}
		beam := setup.Beams[i]
		az, el := ephem.Horizontal(src.RA, tgt.dec, st, mid)
		azDeg := math.Mod(math.Round(az.Deg()*10)/10, 360)
		elDeg := math.Round(el.Deg()*10) / 10

		name := fmt.Sprintf("COMST_%s_%s_%s_B%d.sdf",
			start.Format("060102"), start.Format("1504"), src.Name, beam)
		fmt.Printf("Source: %s\n", tgt.name)
		fmt.Printf("  Az: %.1f\n", azDeg)
		fmt.Printf("  El: %.1f\n", elDeg)
		fmt.Printf("  Beam: %d\n", beam)
		fmt.Printf("  SDF: %s\n", name)

		p := &sdf.Project{
			Observer: sdf.Observer{Name: "Jayce Dowell", ID: 99},
			Title:    "DRX Pointing Checking",
			ID:       "COMST",
			Sessions: []*sdf.Session{{
				Name:        "Pointing Check Session Using " + src.Name,
				ID:          sessions[i%len(sessions)],
				DRXBeam:     beam,
				Spec:        setup.Spec,
				UCFUsername: *ucf,
				Observations: []*sdf.Stepped{{
					Name:   tgt.name,
					Target: fmt.Sprintf("Az: %.1f degrees; El: %.1f degrees", azDeg, elDeg),
					Start:  start,
					Filter: setup.Filter,
					Steps: []sdf.BeamStep{{
						C1: azDeg, C2: elDeg, Dur: dur,
						Freq1: freq1, Freq2: freq2,
					}},
				}},
			}},
		}
		if err := os.WriteFile(name, []byte(p.Render()), 0666); err != nil {
			exit.Log(err)
		}
		start = start.Add(setup.Step)
	}
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

func parseSessions(s string) ([]int, error) {
	var ids []int
	for _, f := range strings.Split(s, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("bad session ID %q", f)
		}
		ids = append(ids, id)
	}
	for len(ids) < 3 {
		ids = append(ids, ids[len(ids)-1]+1)
	}
	return ids, nil
}

func parseFreqs(s string) (f1, f2 float64, err error) {
	flds := strings.Split(s, ",")
	if len(flds) != 2 {
		return 0, 0, fmt.Errorf("need two tuning frequencies, found %d", len(flds))
	}
	if f1, err = strconv.ParseFloat(strings.TrimSpace(flds[0]), 64); err != nil {
		return 0, 0, fmt.Errorf("bad frequency %q", flds[0])
	}
	if f2, err = strconv.ParseFloat(strings.TrimSpace(flds[1]), 64); err != nil {
		return 0, 0, fmt.Errorf("bad frequency %q", flds[1])
	}
	return f1 * 1e6, f2 * 1e6, nil
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
