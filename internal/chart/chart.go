// Package chart renders the payment balance as a horizontal bar chart.
//
// Charts are rendered to PNG bytes in memory.
package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"fjacquet/expensas-report/internal/models"

	"github.com/shopspring/decimal"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Colors used by the balance chart.
var (
	Blue = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	Red  = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// Bar is one horizontal bar. Negative values are drawn as empty bars but
// keep their label.
type Bar struct {
	Label string
	Value decimal.Decimal
	Color color.RGBA
}

// Spec describes a chart.
type Spec struct {
	Title  string
	XLabel string
	Bars   []Bar
}

// Renderer draws charts of a fixed size in pixels.
type Renderer struct {
	Width  int
	Height int
}

const (
	// At 72 dpi one point is one pixel.
	dpi       = 72
	valueGap  = 6
	barShare  = 0.6
	chartTrim = 140
)

// NewRenderer returns a Renderer producing 800x400 images.
func NewRenderer() (*Renderer, error) {
	return &Renderer{Width: 800, Height: 400}, nil
}

// Render draws spec and returns it PNG-encoded.
func (r *Renderer) Render(spec Spec) ([]byte, error) {
	p, err := r.plot(spec)
	if err != nil {
		return nil, err
	}

	canvas := r.canvas()
	p.Draw(draw.New(canvas))

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) canvas() *vgimg.Canvas {
	return vgimg.NewWith(
		vgimg.UseWH(vg.Length(r.Width), vg.Length(r.Height)),
		vgimg.UseDPI(dpi),
	)
}

// plot lays the bars out top to bottom in spec order, each with its value
// printed past its end.
func (r *Renderer) plot(spec Spec) (*plot.Plot, error) {
	if len(spec.Bars) == 0 {
		return nil, fmt.Errorf("chart %q has no bars", spec.Title)
	}
	n := len(spec.Bars)

	p := plot.New()
	p.Title.Text = spec.Title
	p.Title.TextStyle.Font.Size = vg.Points(18)
	p.Title.TextStyle.Font.Weight = xfont.WeightBold
	p.X.Label.Text = spec.XLabel
	p.X.Tick.Marker = groupedTicks{}
	p.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	p.Add(grid)

	names := make([]string, n)
	points := make(plotter.XYs, n)
	values := make([]string, n)
	for i, b := range spec.Bars {
		pos := position(i, n)
		bars, err := plotter.NewBarChart(plotter.Values{barLength(b)}, r.barWidth(n))
		if err != nil {
			return nil, fmt.Errorf("failed to build bar %q: %w", b.Label, err)
		}
		bars.Horizontal = true
		bars.XMin = pos
		bars.Color = b.Color
		bars.LineStyle.Color = b.Color
		p.Add(bars)
		p.Legend.Add(b.Label, bars)

		names[int(pos)] = b.Label
		points[i] = plotter.XY{X: barLength(b), Y: pos}
		values[i] = models.FormatGrouped(b.Value)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: values})
	if err != nil {
		return nil, fmt.Errorf("failed to build value labels: %w", err)
	}
	labels.Offset = vg.Point{X: vg.Points(valueGap)}
	p.Add(labels)

	p.NominalY(names...)
	p.X.Min = 0
	if p.X.Max <= 0 {
		p.X.Max = 1
	}
	p.Y.Min, p.Y.Max = -0.5, float64(n)-0.5
	return p, nil
}

// barRects returns the pixel rectangle of every bar in spec order, using the
// same layout Render draws with.
func (r *Renderer) barRects(spec Spec) ([]image.Rectangle, error) {
	p, err := r.plot(spec)
	if err != nil {
		return nil, err
	}
	data := p.DataCanvas(draw.New(r.canvas()))
	trX, trY := p.Transforms(&data)

	n := len(spec.Bars)
	half := r.barWidth(n) / 2
	rects := make([]image.Rectangle, n)
	for i, b := range spec.Bars {
		y := trY(position(i, n))
		rects[i] = image.Rect(
			int(trX(0)), r.Height-int(y+half),
			int(trX(barLength(b))), r.Height-int(y-half),
		)
	}
	return rects, nil
}

func (r *Renderer) barWidth(n int) vg.Length {
	return vg.Length(float64(r.Height-chartTrim) / float64(n) * barShare)
}

// position puts the first bar at the top of the value axis.
func position(i, n int) float64 {
	return float64(n - 1 - i)
}

func barLength(b Bar) float64 {
	if b.Value.IsNegative() {
		return 0
	}
	return b.Value.InexactFloat64()
}

// groupedTicks labels the value axis with thousands separators.
type groupedTicks struct{}

func (groupedTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = models.FormatGrouped(decimal.NewFromFloat(ticks[i].Value))
		}
	}
	return ticks
}
