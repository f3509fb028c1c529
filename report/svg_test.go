package report

import (
	"math"
	"strings"
	"testing"
)

func TestNewSparkline(t *testing.T) {
	cases := []struct {
		name   string
		values []float64
		line   string
		area   string
	}{
		{
			name:   "rising",
			values: []float64{0, 10},
			line:   "M 0.00,27.00 L 100.00,3.00",
			area:   "M 0.00,27.00 L 0.00,27.00 L 100.00,3.00 L 100.00,30.00 L 0.00,30.00 Z",
		},
		{
			name:   "single value",
			values: []float64{5},
			line:   "M 0.00,27.00 L 100.00,27.00",
			area:   "M 0.00,27.00 L 0.00,27.00 L 100.00,27.00 L 100.00,30.00 L 0.00,30.00 Z",
		},
		{
			name:   "flat",
			values: []float64{7, 7, 7},
			line:   "M 0.00,27.00 L 50.00,27.00 L 100.00,27.00",
			area:   "M 0.00,27.00 L 0.00,27.00 L 50.00,27.00 L 100.00,27.00 L 100.00,30.00 L 0.00,30.00 Z",
		},
	}

	for _, c := range cases {
		sp := NewSparkline(c.values, 100, 30)
		if sp.Line != c.line {
			t.Errorf("%s: line %q, want %q", c.name, sp.Line, c.line)
		}
		if sp.Area != c.area {
			t.Errorf("%s: area %q, want %q", c.name, sp.Area, c.area)
		}
	}
}

func TestNewSparkline_Empty(t *testing.T) {
	sp := NewSparkline(nil, 100, 30)
	if sp.Line != "" || sp.Area != "" {
		t.Errorf("expected empty paths, got %+v", sp)
	}
}

func TestNewLineChart(t *testing.T) {

	chart := NewLineChart(NewSeries(sampleLedger()), 600, 300, 40)

	if len(chart.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(chart.Lines))
	}
	for _, line := range chart.Lines {
		if got := len(strings.Fields(line.Points)); got != 2 {
			t.Errorf("%s: expected 2 points, got %d", line.Label, got)
		}
	}
	if chart.Lines[2].Points != "40.00,110.40 560.00,40.00" {
		t.Errorf("unexpected balance points %q", chart.Lines[2].Points)
	}
	if len(chart.YTicks) != chartYTicks+1 {
		t.Errorf("expected %d y ticks, got %d", chartYTicks+1, len(chart.YTicks))
	}
	if chart.YTicks[chartYTicks].Value != 2500 {
		t.Errorf("expected top tick at the max balance, got %.2f", chart.YTicks[chartYTicks].Value)
	}
	if len(chart.XTicks) != 2 || chart.XTicks[0].Label != "Year 1" {
		t.Errorf("unexpected x ticks %+v", chart.XTicks)
	}
}

func TestDoughnutArcs(t *testing.T) {

	arcs := DoughnutArcs([]Slice{{Percent: 50}, {Percent: 50}}, 10)
	half := math.Pi * 10

	if math.Abs(arcs[0].Dash-half) > 1e-9 || arcs[0].Offset != 0 {
		t.Errorf("unexpected first arc %+v", arcs[0])
	}
	if math.Abs(arcs[1].Offset+half) > 1e-9 {
		t.Errorf("unexpected second arc offset %.6f", arcs[1].Offset)
	}
	if math.Abs(arcs[1].Dash+arcs[1].Gap-2*half) > 1e-9 {
		t.Errorf("dash and gap must cover the circumference")
	}
}
