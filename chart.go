package benchplot

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Chart describes a line chart drawn from a long-form table: one line
// per distinct value of the Hue column.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	X      string
	Y      string
	Hue    string
	LogX   bool
	Width  vg.Length
	Height vg.Length
	Logger *zap.Logger
}

// TimeChart compares execution time across iteration counts.
func TimeChart() Chart {
	return Chart{
		Title:  "Execution Time Comparison",
		XLabel: "Iterations",
		YLabel: "Time (ms)",
		X:      ColumnIterations,
		Y:      ColumnTime,
		Hue:    ColumnType,
		LogX:   true,
		Width:  10 * vg.Inch,
		Height: 6 * vg.Inch,
	}
}

// Series is the points of one line, sorted by X.
type Series struct {
	Label  string
	Points plotter.XYs
}

// Series groups the rows of t by the Hue column, in order of first
// appearance. Within a group, rows sharing an X value are averaged into
// one point. Rows with a NaN or infinite coordinate, or a non-positive
// X on a log axis, are skipped.
func (c Chart) Series(t *Table) ([]Series, error) {
	xs, err := t.numericColumn(c.X)
	if err != nil {
		return nil, err
	}
	ys, err := t.numericColumn(c.Y)
	if err != nil {
		return nil, err
	}
	hue, ok := t.Column(c.Hue)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrMissingColumn, c.Hue)
	}

	type acc struct{ sum, n float64 }
	var order []string
	groups := make(map[string]map[float64]*acc)
	dropped := 0
	for i := 0; i < t.Len(); i++ {
		x, y := xs[i], ys[i]
		if !finite(x) || !finite(y) || (c.LogX && x <= 0) {
			dropped++
			continue
		}
		label := hue.String(i)
		g, ok := groups[label]
		if !ok {
			g = make(map[float64]*acc)
			groups[label] = g
			order = append(order, label)
		}
		a, ok := g[x]
		if !ok {
			a = &acc{}
			g[x] = a
		}
		a.sum += y
		a.n++
	}
	if dropped > 0 {
		c.logger().Debug("skipped rows that cannot be plotted", zap.Int("rows", dropped))
	}

	series := make([]Series, 0, len(order))
	for _, label := range order {
		g := groups[label]
		pts := make(plotter.XYs, 0, len(g))
		for x, a := range g {
			pts = append(pts, plotter.XY{X: x, Y: a.sum / a.n})
		}
		sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
		series = append(series, Series{Label: label, Points: pts})
	}
	return series, nil
}

// Plot builds the chart for t. A table with no plottable rows yields
// empty axes.
func (c Chart) Plot(t *Table) (*plot.Plot, error) {
	series, err := c.Series(t)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	if c.LogX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Add(plotter.NewGrid())

	colors := seriesColors(len(series))
	for i, s := range series {
		line, points, err := plotter.NewLinePoints(s.Points)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		line.Color = colors[i]
		line.Width = vg.Points(2)
		points.Color = colors[i]
		points.Shape = draw.CircleGlyph{}
		points.Radius = vg.Points(3)
		p.Add(line, points)
		p.Legend.Add(s.Label, line, points)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	// Without points the axes still need a finite range; a log axis
	// also needs it to stay positive.
	if len(series) == 0 {
		p.X.Min, p.X.Max = 1, 10
		p.Y.Min, p.Y.Max = 0, 1
		c.logger().Debug("no plottable rows, drawing empty axes")
	}
	// A log axis cannot be padded below zero, which is what happens when
	// every point shares one X value.
	if c.LogX && p.X.Min == p.X.Max {
		x := p.X.Min
		p.X.Min, p.X.Max = x/10, x*10
	}
	return p, nil
}

// Render encodes the chart for t in the given image format (png, svg,
// pdf, ...) and writes it to w.
func (c Chart) Render(t *Table, w io.Writer, format string) error {
	p, err := c.Plot(t)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(c.Width, c.Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save renders the chart to path, choosing the format from its
// extension. The image is fully encoded before path is touched, so a
// failed render leaves any existing file alone.
func (c Chart) Save(t *Table, path string) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format == "" {
		return fmt.Errorf("%s: no file extension to choose an image format", path)
	}
	buf := &bytes.Buffer{}
	if err := c.Render(t, buf, format); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	c.logger().Debug("chart written", zap.String("path", path), zap.Int("bytes", buf.Len()))
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (c Chart) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// seriesColors picks n distinguishable colors from a qualitative
// palette, cycling when n exceeds the palette size.
func seriesColors(n int) []color.Color {
	size := min(max(n, 3), 9)
	palette, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", size)
	if err != nil {
		panic(err)
	}
	base := palette.Colors()
	colors := make([]color.Color, n)
	for i := range colors {
		colors[i] = base[i%len(base)]
	}
	return colors
}
