package charts

import (
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"
)

type Slice struct {
	Label string
	Value float64
}

// Shares converts raw slice values into percentages. Negative and NaN values
// count as zero; when nothing is left every share is zero.
func Shares(values []float64) []float64 {
	valid := make([]float64, len(values))
	total := 0.0
	for i, value := range values {
		if math.IsNaN(value) || value < 0 {
			value = 0
		}
		valid[i] = value
		total += value
	}

	shares := make([]float64, len(values))
	if total == 0 {
		return shares
	}
	for i, value := range valid {
		shares[i] = value / total * 100
	}
	return shares
}

func PercentLabel(share float64) string {
	if share == 0 {
		return ""
	}
	return fmt.Sprintf("%.1f%%", share)
}

// Wedges start at 12 o'clock and go counter-clockwise.
const pieStartAngle = -math.Pi / 2

const (
	legendRowHeight  = 20
	legendSwatchSize = 12
)

func (r *Renderer) legendWidth() float64 {
	return float64(r.width) * 0.3
}

func (r *Renderer) pieGeometry() (cx, cy, radius float64) {
	width := float64(r.width) - r.legendWidth()
	cx = width / 2
	cy = (float64(r.height) + titleHeight) / 2
	// a true circle fitting the smaller side, with room for labels
	radius = math.Min(width, float64(r.height)-titleHeight) / 2 * 0.7
	return
}

type legendEntry struct {
	Label   string
	Percent string
	Color   string
}

// legend lists every slice, including the empty ones.
func legend(slices []Slice, shares []float64) []legendEntry {
	entries := make([]legendEntry, len(slices))
	for i, slice := range slices {
		entries[i] = legendEntry{
			Label:   slice.Label,
			Percent: PercentLabel(shares[i]),
			Color:   palette[i%len(palette)],
		}
	}
	return entries
}

func (r *Renderer) legendSwatch(row int) (x, y float64) {
	x = float64(r.width) - r.legendWidth() + 10
	y = titleHeight + 20 + float64(row)*legendRowHeight
	return
}

func (r *Renderer) drawLegend(dc *gg.Context, entries []legendEntry) {
	for i, entry := range entries {
		x, y := r.legendSwatch(i)
		dc.DrawRectangle(x, y, legendSwatchSize, legendSwatchSize)
		dc.SetHexColor(entry.Color)
		dc.Fill()

		text := entry.Label
		if entry.Percent != "" {
			text += "  " + entry.Percent
		}
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(text, x+legendSwatchSize+6, y+legendSwatchSize/2, 0, 0.5)
	}
}

func (r *Renderer) WritePieChart(w io.Writer, slices []Slice) error {
	dc := r.newContext()
	drawTitle(dc, "Course Registration Distribution")

	values := make([]float64, len(slices))
	for i, slice := range slices {
		values[i] = slice.Value
	}
	shares := Shares(values)

	cx, cy, radius := r.pieGeometry()

	dc.SetRGB(0.8, 0.8, 0.8)
	dc.SetLineWidth(1)
	dc.DrawCircle(cx, cy, radius)
	dc.Stroke()

	angle := pieStartAngle
	for i, slice := range slices {
		sweep := shares[i] / 100 * 2 * math.Pi
		if sweep == 0 {
			continue
		}
		end := angle - sweep
		middle := angle - sweep/2

		dc.MoveTo(cx, cy)
		dc.DrawArc(cx, cy, radius, angle, end)
		dc.ClosePath()
		dc.SetHexColor(palette[i%len(palette)])
		dc.FillPreserve()
		dc.SetRGB(1, 1, 1)
		dc.Stroke()

		cos, sin := math.Cos(middle), math.Sin(middle)
		anchor := 0.0
		if cos < 0 {
			anchor = 1
		}
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(slice.Label, cx+radius*1.1*cos, cy+radius*1.1*sin, anchor, 0.5)
		dc.DrawStringAnchored(PercentLabel(shares[i]), cx+radius*0.6*cos, cy+radius*0.6*sin, 0.5, 0.5)

		angle = end
	}

	r.drawLegend(dc, legend(slices, shares))

	return dc.EncodePNG(w)
}

// RenderPieChart draws one wedge per slice sized by its share of the total.
func (r *Renderer) RenderPieChart(slices []Slice, path string) error {
	return renderToFile(path, func(w io.Writer) error {
		return r.WritePieChart(w, slices)
	})
}
