// Package render maps AutoViz chart specifications onto
// github.com/wcharczuk/go-chart/v2 and produces images for display and PNG
// export. It implements the orchestrator's Surface contract; anything the
// engine cannot draw becomes a placeholder image rather than an error the
// user has to deal with.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	png "image/png"
	"io"
	"math"
	"sort"
	"strings"
	"sync"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Bhakti2904/Autoviz-Smart-Data-Visualizer/src/chartspec"
	"github.com/Bhakti2904/Autoviz-Smart-Data-Visualizer/src/viz"
)

// palette used for consecutive traces. The service already bakes the chosen
// color scheme into the spec where it matters; this is the client-side
// fallback ordering.
var palette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorOrange,
	chart.ColorRed,
	chart.ColorCyan,
	chart.ColorAlternateGray,
}

func traceColor(i int) drawing.Color { return palette[i%len(palette)] }

// pointStyle returns a style that renders points only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

// Engine renders chart specifications. It keeps the display size the UI last
// asked for and pushes finished images through OnImage.
type Engine struct {
	mu     sync.Mutex
	width  int
	height int

	// OnImage receives every displayed image; OnClear fires when the chart
	// container should be hidden. Either may be nil for headless use.
	OnImage func(image.Image)
	OnClear func()
}

// NewEngine returns an engine with a reasonable default display size.
func NewEngine() *Engine {
	return &Engine{width: 900, height: 500}
}

// SetSize adjusts the display render size (export size is fixed elsewhere).
func (e *Engine) SetSize(w, h int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if w > 0 {
		e.width = w
	}
	if h > 0 {
		e.height = h
	}
}

func (e *Engine) size() (int, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.width, e.height
}

// Display renders the spec at the current display size and hands the image
// to OnImage.
func (e *Engine) Display(spec *chartspec.Spec) {
	if e.OnImage == nil {
		return
	}
	w, h := e.size()
	e.OnImage(Render(spec, w, h))
}

// Export renders the spec at the given size and writes it as PNG.
func (e *Engine) Export(spec *chartspec.Spec, width, height int, out io.Writer) error {
	img := Render(spec, width, height)
	return png.Encode(out, img)
}

// Clear hides the chart container.
func (e *Engine) Clear() {
	if e.OnClear != nil {
		e.OnClear()
	}
}

var _ viz.Surface = (*Engine)(nil)

// Render draws a spec into an image of the requested size. It never fails:
// unsupported or broken traces produce a placeholder with an explanatory
// note, matching how the viewer treats render errors.
func Render(spec *chartspec.Spec, width, height int) image.Image {
	if spec == nil || len(spec.Data) == 0 {
		return noteImage(width, height, "No chart data")
	}
	kind := strings.ToLower(spec.Data[0].Type)
	var (
		img image.Image
		err error
	)
	switch kind {
	case "pie":
		img, err = renderPie(spec, width, height)
	case "bar":
		img, err = renderBar(spec, width, height)
	case "histogram":
		img, err = renderHistogram(spec, width, height)
	case "scatter", "line", "area", "scattergl":
		img, err = renderXY(spec, width, height)
	default:
		return noteImage(width, height, fmt.Sprintf("Chart type %q is not supported by the local renderer", kind))
	}
	if err != nil {
		viz.Warnf("chart render failed: %v", err)
		return noteImage(width, height, "Unable to render chart: "+err.Error())
	}
	return img
}

func renderPNG(ch interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// renderXY draws line, scatter and area traces as continuous series. A
// categorical X axis is mapped to indices with the labels as ticks.
func renderXY(spec *chartspec.Spec, width, height int) (image.Image, error) {
	var series []chart.Series
	var ticks []chart.Tick
	for i, tr := range spec.Data {
		ys, ok := toFloats(tr.Y)
		if !ok || len(ys) == 0 {
			continue
		}
		xs, numeric := toFloats(tr.X)
		if !numeric {
			labels := toStrings(tr.X)
			xs = make([]float64, len(labels))
			for j := range labels {
				xs[j] = float64(j)
			}
			if ticks == nil {
				ticks = labelTicks(labels)
			}
		}
		if len(xs) != len(ys) {
			return nil, fmt.Errorf("trace %d: x/y length mismatch (%d vs %d)", i, len(xs), len(ys))
		}
		// go-chart refuses single-point ranges; pad with a duplicate.
		if len(xs) == 1 {
			xs = append(xs, xs[0]+1)
			ys = append(ys, ys[0])
		}
		col := traceColor(i)
		st := chart.Style{StrokeColor: col, StrokeWidth: 2}
		mode := strings.ToLower(tr.Mode)
		kind := strings.ToLower(tr.Type)
		switch {
		case kind == "area" || tr.Fill != "":
			st.FillColor = col.WithAlpha(60)
		case kind == "scatter" && (mode == "" || strings.Contains(mode, "markers")) && !strings.Contains(mode, "lines"):
			st = pointStyle(col)
		}
		name := tr.Name
		if name == "" {
			name = fmt.Sprintf("trace %d", i)
		}
		series = append(series, chart.ContinuousSeries{Name: name, XValues: xs, YValues: ys, Style: st})
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("no drawable traces")
	}
	ch := chart.Chart{
		Title:      spec.Title(),
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Name: spec.Layout.XAxis.Title.Text, Ticks: ticks},
		YAxis:      chart.YAxis{Name: spec.Layout.YAxis.Title.Text},
		Series:     series,
	}
	if len(series) > 1 {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	return renderPNG(&ch)
}

// renderBar draws the first bar trace; go-chart bar charts are single
// series, so additional traces are ignored.
func renderBar(spec *chartspec.Spec, width, height int) (image.Image, error) {
	tr := spec.Data[0]
	ys, ok := toFloats(tr.Y)
	if !ok || len(ys) == 0 {
		return nil, fmt.Errorf("bar trace has no numeric y values")
	}
	labels := toStrings(tr.X)
	values := make([]chart.Value, 0, len(ys))
	for i, y := range ys {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		values = append(values, chart.Value{Label: label, Value: y, Style: chart.Style{FillColor: traceColor(0), StrokeColor: traceColor(0)}})
	}
	ch := chart.BarChart{
		Title:      spec.Title(),
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 28}},
		BarWidth:   barWidth(width, len(values)),
		Bars:       values,
		YAxis:      chart.YAxis{Name: spec.Layout.YAxis.Title.Text},
	}
	return renderPNG(&ch)
}

// renderHistogram bins the raw x values of the first trace and draws the
// counts as bars. Categorical values fall back to per-category counts.
func renderHistogram(spec *chartspec.Spec, width, height int) (image.Image, error) {
	tr := spec.Data[0]
	xs, numeric := toFloats(tr.X)
	var values []chart.Value
	if numeric && len(xs) > 0 {
		values = binCounts(xs, 10)
	} else {
		labels := toStrings(tr.X)
		if len(labels) == 0 {
			return nil, fmt.Errorf("histogram trace has no values")
		}
		values = categoryCounts(labels)
	}
	ch := chart.BarChart{
		Title:      spec.Title(),
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 28}},
		BarWidth:   barWidth(width, len(values)),
		Bars:       values,
		YAxis:      chart.YAxis{Name: "count"},
	}
	return renderPNG(&ch)
}

func renderPie(spec *chartspec.Spec, width, height int) (image.Image, error) {
	tr := spec.Data[0]
	if len(tr.Values) == 0 {
		return nil, fmt.Errorf("pie trace has no values")
	}
	labels := toStrings(tr.Labels)
	values := make([]chart.Value, 0, len(tr.Values))
	for i, v := range tr.Values {
		if v <= 0 {
			continue
		}
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		values = append(values, chart.Value{Label: label, Value: v})
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("pie trace has no positive values")
	}
	side := width
	if height < side {
		side = height
	}
	ch := chart.PieChart{
		Title:  spec.Title(),
		Width:  side,
		Height: side,
		Values: values,
	}
	return renderPNG(&ch)
}

func barWidth(chartWidth, n int) int {
	if n <= 0 {
		return 20
	}
	w := (chartWidth - 80) / (2 * n)
	if w < 6 {
		w = 6
	}
	if w > 80 {
		w = 80
	}
	return w
}

// binCounts splits numeric values into equal-width bins labeled by their
// lower bound.
func binCounts(xs []float64, bins int) []chart.Value {
	minV, maxV := xs[0], xs[0]
	for _, v := range xs {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if maxV <= minV {
		return []chart.Value{{Label: trimFloat(minV), Value: float64(len(xs))}}
	}
	step := (maxV - minV) / float64(bins)
	counts := make([]int, bins)
	for _, v := range xs {
		idx := int((v - minV) / step)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	out := make([]chart.Value, bins)
	for i, c := range counts {
		out[i] = chart.Value{Label: trimFloat(minV + float64(i)*step), Value: float64(c)}
	}
	return out
}

func categoryCounts(labels []string) []chart.Value {
	counts := map[string]int{}
	for _, l := range labels {
		counts[l]++
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]chart.Value, 0, len(keys))
	for _, k := range keys {
		out = append(out, chart.Value{Label: k, Value: float64(counts[k])})
	}
	return out
}

func trimFloat(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e9 {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

// toFloats coerces trace values to float64. ok is false when any value is
// non-numeric (JSON numbers decode as float64).
func toFloats(vals []any) ([]float64, bool) {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		switch x := v.(type) {
		case float64:
			out = append(out, x)
		case int:
			out = append(out, float64(x))
		default:
			return nil, false
		}
	}
	return out, true
}

func toStrings(vals []any) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		switch x := v.(type) {
		case string:
			out[i] = x
		case float64:
			out[i] = trimFloat(x)
		case nil:
			out[i] = ""
		default:
			out[i] = fmt.Sprintf("%v", x)
		}
	}
	return out
}

// labelTicks maps categorical labels onto index positions, thinning them so
// long axes stay readable.
func labelTicks(labels []string) []chart.Tick {
	stride := 1
	if len(labels) > 20 {
		stride = len(labels) / 20
	}
	ticks := make([]chart.Tick, 0, len(labels))
	for i, l := range labels {
		if i%stride != 0 {
			continue
		}
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: l})
	}
	return ticks
}

func blank(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 250, G: 250, B: 250, A: 255}), image.Point{}, draw.Src)
	return img
}

// noteImage returns a blank image with a short message, used for
// unsupported chart kinds and render failures.
func noteImage(w, h int, text string) image.Image {
	if w <= 0 {
		w = 800
	}
	if h <= 0 {
		h = 320
	}
	img := blank(w, h)
	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 60, G: 60, B: 60, A: 255})
	dr := &font.Drawer{Dst: img, Src: textCol, Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := (w - tw) / 2
	if x < 8 {
		x = 8
	}
	y := h / 2
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return img
}
