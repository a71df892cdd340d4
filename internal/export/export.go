package export

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/bigredeye/gradebook/internal/models"
	"github.com/bigredeye/gradebook/internal/scorer"
)

const SheetName = "Results"

var headers = []string{"Course Code", "Course Name", "Max Degree", "Final Grade"}

func setRow(f *excelize.File, row int, values ...interface{}) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, value); err != nil {
			return err
		}
	}
	return nil
}

// WriteResults stores the student's averages as an xlsx workbook, one row per
// course in results order. Course names come from the catalog when known.
func WriteResults(w io.Writer, results *scorer.StudentResults, courses []models.Course) error {
	known := make(map[string]models.Course, len(courses))
	for _, course := range courses {
		if _, found := known[course.Code]; !found {
			known[course.Code] = course
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return errors.Wrap(err, "Failed to create sheet")
	}
	f.SetActiveSheet(index)

	headerRow := make([]interface{}, len(headers))
	for i, header := range headers {
		headerRow[i] = header
	}
	if err := setRow(f, 1, headerRow...); err != nil {
		return errors.Wrap(err, "Failed to write header")
	}

	for i, result := range results.Courses {
		course := known[result.Course]
		if err := setRow(f, i+2, result.Course, course.Name, course.MaxDegree, result.Average); err != nil {
			return errors.Wrapf(err, "Failed to write %s", result.Course)
		}
	}

	return errors.Wrap(f.Write(w), "Failed to write workbook")
}
