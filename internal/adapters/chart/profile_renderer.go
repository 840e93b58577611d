// Package chart renders depth-profile charts from processed surveys.
package chart

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"gpr-profile-service/internal/domain"
)

// Depth axis contract: 0 m at the top, 100 m at the bottom, one
// gridline every 10 m.
const (
	depthAxisMin  = 0.0
	depthAxisMax  = 100.0
	depthGridStep = 10.0
)

// Fixed per-layer stroke palette, applied in layer order.
var layerPalette = []drawing.Color{
	{R: 0, G: 0, B: 0, A: 255},     // black
	{R: 0, G: 0, B: 255, A: 255},   // blue
	{R: 255, G: 165, B: 0, A: 255}, // orange
	{R: 0, G: 128, B: 0, A: 255},   // green
}

var gridColor = drawing.Color{R: 211, G: 211, B: 211, A: 255}

// The survey has no defined boundary values anywhere, so there is
// nothing to draw.
var ErrNoPlottableData = errors.New("survey has no plottable data")

// ProfileRenderer draws one line series per boundary column onto a
// PNG depth-profile chart: x is chainage in meters, y is depth in
// meters with the axis reversed. Boundary columns with no defined
// values are skipped entirely.
type ProfileRenderer struct {
	Width  int
	Height int
}

func NewProfileRenderer() *ProfileRenderer {
	return &ProfileRenderer{Width: 1280, Height: 720}
}

func (r *ProfileRenderer) Render(ctx context.Context, survey *domain.Survey, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	series := make([]chart.Series, 0, survey.Layers.Len())
	for i, name := range survey.Layers.Names {
		xs, ys := boundaryPoints(survey, i)
		if len(xs) == 0 {
			continue
		}

		series = append(series, chart.ContinuousSeries{
			Name:    name + " boundary",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: layerPalette[i%len(layerPalette)],
				StrokeWidth: 2.0,
			},
		})
	}

	if len(series) == 0 {
		return fmt.Errorf("render profile: %w", ErrNoPlottableData)
	}

	graph := chart.Chart{
		Width:  r.Width,
		Height: r.Height,
		XAxis: chart.XAxis{
			Name: "Chainage (m)",
		},
		YAxis: chart.YAxis{
			Name: "Depth (m)",
			// Reversed axis: depth grows downward from the surface.
			Range: &chart.ContinuousRange{
				Min:        depthAxisMin,
				Max:        depthAxisMax,
				Descending: true,
			},
			Ticks: depthTicks(),
			GridMajorStyle: chart.Style{
				StrokeColor: gridColor,
				StrokeWidth: 1.0,
			},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render profile: %w", err)
	}

	return nil
}

// boundaryPoints collects the defined (chainage, boundary) pairs of
// one layer. Undefined boundaries contribute no point.
func boundaryPoints(survey *domain.Survey, layer int) (xs, ys []float64) {
	for _, row := range survey.Rows {
		if layer >= len(row.Boundary) || !row.Boundary[layer].Valid {
			continue
		}
		xs = append(xs, row.Chainage)
		ys = append(ys, row.Boundary[layer].Value)
	}
	return xs, ys
}

func depthTicks() []chart.Tick {
	var ticks []chart.Tick
	for v := depthAxisMin; v <= depthAxisMax; v += depthGridStep {
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%.0f", v)})
	}
	return ticks
}
