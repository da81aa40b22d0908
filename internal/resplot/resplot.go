// Public domain.

// Package resplot draws the summary figures for pointing check results.
package resplot

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/soniakeys/unit"
)

// Point is one labeled measurement.
type Point struct {
	X, Y  float64
	Label string
}

// Zenith builds a labeled scatter of some quantity against zenith angle,
// one color per source name.
func Zenith(title, ylabel string, pts []Point) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Zenith Angle [deg]"
	p.Y.Label.Text = ylabel

	byName := map[string][]Point{}
	var order []string
	for _, pt := range pts {
		if _, ok := byName[pt.Label]; !ok {
			order = append(order, pt.Label)
		}
		byName[pt.Label] = append(byName[pt.Label], pt)
	}
	for i, name := range order {
		group := byName[name]
		xys := make(plotter.XYs, len(group))
		labels := make([]string, len(group))
		for j, pt := range group {
			xys[j].X, xys[j].Y = pt.X, pt.Y
			labels[j] = pt.Label
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return nil, err
		}
		p.Add(s, l)
		p.Legend.Add(name, s)
	}
	p.Legend.Top = true
	return p, nil
}

// SkyPoint is one pointing on the sky.
type SkyPoint struct {
	Az, El unit.Angle
	Label  string
}

// SkyCoverage builds an overhead view of the observed pointings with the
// horizon and dotted circles of constant elevation.  North is up and east
// is to the left, as when looking up at the sky.
func SkyCoverage(title string, pts []SkyPoint) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Min, p.X.Max = -1.15, 1.15
	p.Y.Min, p.Y.Max = -1.15, 1.15
	p.X.Tick.Marker = plot.ConstantTicks(nil)
	p.Y.Tick.Marker = plot.ConstantTicks(nil)

	for _, elDeg := range []float64{0, 20, 40, 60, 80} {
		var xys plotter.XYs
		for az := 0.0; az <= 360; az += 2 {
			x, y := skyXY(unit.AngleFromDeg(az), unit.AngleFromDeg(elDeg))
			xys = append(xys, plotter.XY{X: x, Y: y})
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		if elDeg > 0 {
			l.LineStyle.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
		}
		p.Add(l)
	}

	var xys plotter.XYs
	var labels []string
	for _, pt := range pts {
		x, y := skyXY(pt.Az, pt.El)
		xys = append(xys, plotter.XY{X: x, Y: y})
		labels = append(labels, pt.Label)
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = plotutil.Color(0)
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}
	p.Add(s, l)

	compass, err := plotter.NewLabels(plotter.XYLabels{
		XYs: plotter.XYs{
			{X: 0, Y: 1.05}, {X: 0, Y: -1.12},
			{X: -1.12, Y: 0}, {X: 1.05, Y: 0},
		},
		Labels: []string{"N", "S", "E", "W"},
	})
	if err != nil {
		return nil, err
	}
	p.Add(compass)
	return p, nil
}

// skyXY projects a pointing onto the overhead view.  North maps to +y and
// east to -x so the chart reads like the sky seen from below.
func skyXY(az, el unit.Angle) (x, y float64) {
	ce := el.Cos()
	sa, ca := az.Sincos()
	return -ce * sa, ce * ca
}

// Curve is one drift scan power series with its model fit.
type Curve struct {
	Name string
	T    []float64 // seconds from the plot origin
	Data []float64
	Fit  []float64
}

// DriftProfile builds the per tuning drift scan figure: each scan's power
// as a solid line, the fitted model dotted, and a dashed vertical at the
// expected transit.
func DriftProfile(title string, curves []Curve, transit float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Elapsed Time [s]"
	p.Y.Label.Text = "Power [arb.]"

	lo, hi := math.Inf(1), math.Inf(-1)
	for i, c := range curves {
		data := make(plotter.XYs, len(c.T))
		fit := make(plotter.XYs, len(c.T))
		for j, t := range c.T {
			data[j] = plotter.XY{X: t, Y: c.Data[j]}
			fit[j] = plotter.XY{X: t, Y: c.Fit[j]}
			lo = math.Min(lo, c.Data[j])
			hi = math.Max(hi, c.Data[j])
		}
		ld, err := plotter.NewLine(data)
		if err != nil {
			return nil, err
		}
		ld.LineStyle.Color = plotutil.Color(i)
		lf, err := plotter.NewLine(fit)
		if err != nil {
			return nil, err
		}
		lf.LineStyle.Color = plotutil.Color(i)
		lf.LineStyle.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
		p.Add(ld, lf)
		p.Legend.Add(c.Name, ld)
	}

	vline, err := plotter.NewLine(plotter.XYs{{X: transit, Y: lo}, {X: transit, Y: hi}})
	if err != nil {
		return nil, err
	}
	vline.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(vline)
	p.Legend.Add("Expected Transit", vline)
	p.Legend.Top = true
	return p, nil
}

// WeaveCut builds one basket weave cut figure: the corrected step powers
// as points, the fitted profile as a line, and a dashed vertical at the
// commanded center coordinate.
func WeaveCut(title, xlabel string, x, y, xFit, yFit []float64, center float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Power [arb., corr.]"

	data := make(plotter.XYs, len(x))
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range x {
		data[i] = plotter.XY{X: x[i], Y: y[i]}
		lo = math.Min(lo, y[i])
		hi = math.Max(hi, y[i])
	}
	s, err := plotter.NewScatter(data)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = plotutil.Color(0)

	fit := make(plotter.XYs, len(xFit))
	for i := range xFit {
		fit[i] = plotter.XY{X: xFit[i], Y: yFit[i]}
	}
	lf, err := plotter.NewLine(fit)
	if err != nil {
		return nil, err
	}
	lf.LineStyle.Color = plotutil.Color(1)
	p.Add(s, lf)
	p.Legend.Add("Data", s)
	p.Legend.Add("Fit", lf)

	vline, err := plotter.NewLine(plotter.XYs{{X: center, Y: lo}, {X: center, Y: hi}})
	if err != nil {
		return nil, err
	}
	vline.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(vline)
	p.Legend.Top = true
	return p, nil
}

// Residuals builds the before and after figure for an axis fit: pointing
// error against zenith angle for the raw and corrected measurements.
func Residuals(title string, raw, corrected []Point) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Zenith Angle [deg]"
	p.Y.Label.Text = "Pointing Error [deg]"

	for i, set := range []struct {
		name string
		pts  []Point
	}{{"Raw", raw}, {"Corrected", corrected}} {
		xys := make(plotter.XYs, len(set.pts))
		for j, pt := range set.pts {
			xys[j] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		p.Add(s)
		p.Legend.Add(set.name, s)
	}
	p.Legend.Top = true
	return p, nil
}

// Save writes a plot as a 10 by 7.5 inch image, format chosen by the file
// extension.
func Save(p *plot.Plot, name string) error {
	return p.Save(10*vg.Inch, 7.5*vg.Inch, name)
}
