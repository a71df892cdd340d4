package report

import (
	"html/template"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/bigredeye/gradebook/internal/scorer"
	"github.com/bigredeye/gradebook/web"
)

type Page struct {
	StudentCode string
	Results     []scorer.CourseResult
	// Chart paths relative to the page
	BarChart string
	PieChart string
}

// FormatGrade prints the shortest representation that round-trips, keeping a
// trailing ".0" for whole numbers: 85 -> "85.0", 260/3 -> "86.66666666666667".
func FormatGrade(value float64) string {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if math.IsInf(value, 0) || math.IsNaN(value) || strings.ContainsRune(s, '.') {
		return s
	}
	return s + ".0"
}

var pageTemplate = template.Must(
	template.New("result.tmpl").
		Funcs(template.FuncMap{"grade": FormatGrade}).
		ParseFS(web.Templates, "result.tmpl"),
)

func RenderHTML(w io.Writer, page *Page) error {
	return errors.Wrap(pageTemplate.Execute(w, page), "Failed to render report page")
}
