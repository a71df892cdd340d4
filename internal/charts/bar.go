package charts

import (
	"io"
	"math"

	"github.com/bigredeye/gradebook/internal/scorer"
)

const (
	barMarginLeft   = 70
	barMarginRight  = 20
	barMarginBottom = 50
	barTicks        = 5
)

type plotArea struct {
	left, top, right, bottom float64
	lo, hi                   float64
}

func (p plotArea) y(value float64) float64 {
	return p.bottom - (value-p.lo)/(p.hi-p.lo)*(p.bottom-p.top)
}

func (r *Renderer) barArea(results []scorer.CourseResult) plotArea {
	lo, hi := 0.0, 0.0
	for _, result := range results {
		lo = math.Min(lo, result.Average)
		hi = math.Max(hi, result.Average)
	}
	if hi == lo {
		hi = lo + 1
	}
	// leave headroom above the tallest bar
	pad := (hi - lo) * 0.05
	if hi > 0 {
		hi += pad
	}
	if lo < 0 {
		lo -= pad
	}

	return plotArea{
		left:   barMarginLeft,
		top:    titleHeight,
		right:  float64(r.width - barMarginRight),
		bottom: float64(r.height - barMarginBottom),
		lo:     lo,
		hi:     hi,
	}
}

func (r *Renderer) WriteBarChart(w io.Writer, results []scorer.CourseResult) error {
	dc := r.newContext()
	area := r.barArea(results)

	drawTitle(dc, "Student Results per Course")

	// y axis ticks and grid
	dc.SetLineWidth(1)
	for i := 0; i <= barTicks; i++ {
		value := area.lo + (area.hi-area.lo)*float64(i)/barTicks
		y := area.y(value)
		dc.SetRGB(0.9, 0.9, 0.9)
		dc.DrawLine(area.left, y, area.right, y)
		dc.Stroke()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(formatTick(value), area.left-6, y, 1, 0.5)
	}

	if len(results) > 0 {
		slot := (area.right - area.left) / float64(len(results))
		for i, result := range results {
			x := area.left + slot*float64(i) + slot*0.1
			top := area.y(math.Max(result.Average, 0))
			bottom := area.y(math.Min(result.Average, 0))

			dc.SetHexColor(palette[0])
			dc.DrawRectangle(x, top, slot*0.8, bottom-top)
			dc.Fill()

			dc.SetRGB(0, 0, 0)
			dc.DrawStringAnchored(result.Course, x+slot*0.4, area.bottom+12, 0.5, 0.5)
		}
	}

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1.5)
	dc.DrawLine(area.left, area.top, area.left, area.bottom)
	dc.DrawLine(area.left, area.y(0), area.right, area.y(0))
	dc.Stroke()

	dc.DrawStringAnchored("Course Code", (area.left+area.right)/2, float64(r.height)-14, 0.5, 0.5)

	dc.Push()
	middle := (area.top + area.bottom) / 2
	dc.RotateAbout(-math.Pi/2, 16, middle)
	dc.DrawStringAnchored("Final Grade", 16, middle, 0.5, 0.5)
	dc.Pop()

	return dc.EncodePNG(w)
}

// RenderBarChart draws one bar per course result; courses without results
// have no bar at all.
func (r *Renderer) RenderBarChart(results []scorer.CourseResult, path string) error {
	return renderToFile(path, func(w io.Writer) error {
		return r.WriteBarChart(w, results)
	})
}
