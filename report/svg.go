package report

import (
	"fmt"
	"math"
	"strings"
)

// Sparkline holds SVG path data for a small trend line and the area below
// it.
type Sparkline struct {
	Width  float64
	Height float64
	Line   string
	Area   string
}

// NewSparkline scales values into a width x height box, keeping 10% of the
// height free above and below the line. A single value draws a flat line.
func NewSparkline(values []float64, width, height float64) Sparkline {
	sp := Sparkline{Width: width, Height: height}
	if len(values) == 0 {
		return sp
	}

	lo, hi := bounds(values)
	valueRange := hi - lo
	if valueRange == 0 {
		valueRange = 1
	}

	y := func(v float64) float64 {
		return height - (v-lo)/valueRange*height*0.8 - height*0.1
	}

	var points []string
	if len(values) == 1 {
		points = []string{point(0, y(values[0])), point(width, y(values[0]))}
	} else {
		points = make([]string, len(values))
		for i, v := range values {
			x := float64(i) / float64(len(values)-1) * width
			points[i] = point(x, y(v))
		}
	}

	joined := strings.Join(points, " L ")
	sp.Line = "M " + joined
	sp.Area = fmt.Sprintf("M %s L %s L %s L %s Z", points[0], joined, point(width, height), point(0, height))
	return sp
}

type ChartLine struct {
	Label  string
	Color  string
	Stroke float64
	Points string // SVG polyline points
}

type Tick struct {
	Pos   float64
	Value float64
	Label string
}

// LineChart is the growth chart: three series over the same y axis starting
// at zero.
type LineChart struct {
	Width   float64
	Height  float64
	Padding float64
	Lines   []ChartLine
	YTicks  []Tick
	XTicks  []Tick
}

const (
	chartYTicks  = 5
	chartXLabels = 10
)

func NewLineChart(series Series, width, height, padding float64) LineChart {
	chart := LineChart{Width: width, Height: height, Padding: padding}
	n := len(series.Balance)
	if n == 0 {
		return chart
	}

	hi := 0.0
	for _, values := range [][]float64{series.Invested, series.Interest, series.Balance} {
		for _, v := range values {
			hi = math.Max(hi, v)
		}
	}
	if hi == 0 {
		hi = 1
	}

	plotW := width - 2*padding
	plotH := height - 2*padding
	x := func(i int) float64 {
		if n == 1 {
			return padding + plotW/2
		}
		return padding + float64(i)/float64(n-1)*plotW
	}
	y := func(v float64) float64 {
		return padding + plotH - v/hi*plotH
	}
	polyline := func(values []float64) string {
		pts := make([]string, len(values))
		for i, v := range values {
			pts[i] = fmt.Sprintf("%.2f,%.2f", x(i), y(v))
		}
		return strings.Join(pts, " ")
	}

	chart.Lines = []ChartLine{
		{Label: "Total Invested", Color: "#667eea", Stroke: 2, Points: polyline(series.Invested)},
		{Label: "Interest Earned", Color: "#28a745", Stroke: 2, Points: polyline(series.Interest)},
		{Label: "Total Balance", Color: "#ffc107", Stroke: 3, Points: polyline(series.Balance)},
	}

	for i := 0; i <= chartYTicks; i++ {
		v := hi * float64(i) / chartYTicks
		chart.YTicks = append(chart.YTicks, Tick{Pos: y(v), Value: v})
	}

	step := int(math.Ceil(float64(n) / chartXLabels))
	for i := 0; i < n; i += step {
		chart.XTicks = append(chart.XTicks, Tick{Pos: x(i), Value: float64(i + 1), Label: series.Labels[i]})
	}
	return chart
}

// Arc is one doughnut segment drawn as a dashed circle stroke.
type Arc struct {
	Slice
	Dash   float64
	Gap    float64
	Offset float64
}

func DoughnutArcs(slices []Slice, radius float64) []Arc {
	circumference := 2 * math.Pi * radius
	arcs := make([]Arc, 0, len(slices))
	consumed := 0.0
	for _, s := range slices {
		dash := math.Max(0, s.Percent) / 100 * circumference
		arcs = append(arcs, Arc{
			Slice:  s,
			Dash:   dash,
			Gap:    circumference - dash,
			Offset: -consumed,
		})
		consumed += dash
	}
	return arcs
}

func bounds(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func point(x, y float64) string {
	return fmt.Sprintf("%.2f,%.2f", x, y)
}
