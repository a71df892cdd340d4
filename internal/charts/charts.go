package charts

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

func BarChartFile(student string) string {
	return student + "_bar_chart.png"
}

func PieChartFile(student string) string {
	return student + "_pie_chart.png"
}

// matplotlib's tab10 cycle
var palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

type Renderer struct {
	width  int
	height int
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{width, height}
}

func (r *Renderer) newContext() *gg.Context {
	dc := gg.NewContext(r.width, r.height)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(color.Black)
	return dc
}

func drawTitle(dc *gg.Context, title string) {
	dc.SetColor(color.Black)
	dc.DrawStringAnchored(title, float64(dc.Width())/2, titleHeight/2, 0.5, 0.5)
}

const titleHeight = 40

func renderToFile(path string, render func(w io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Failed to create %s", path)
	}

	if err := render(file); err != nil {
		file.Close()
		return errors.Wrapf(err, "Failed to render %s", path)
	}

	return errors.Wrapf(file.Close(), "Failed to write %s", path)
}

func formatTick(value float64) string {
	return fmt.Sprintf("%g", math.Round(value*100)/100)
}
