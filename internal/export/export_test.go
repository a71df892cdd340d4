package export

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/bigredeye/gradebook/internal/models"
	"github.com/bigredeye/gradebook/internal/scorer"
)

func TestWriteResults(t *testing.T) {
	results := &scorer.StudentResults{
		Student: "S1",
		Courses: []scorer.CourseResult{
			{Course: "CS101", Average: 85.5},
			{Course: "GHOST", Average: 10},
		},
	}
	courses := []models.Course{
		{Code: "CS101", Name: "Intro CS", MaxDegree: "100"},
		{Code: "MATH1", Name: "Calculus", MaxDegree: "50"},
	}

	var buf bytes.Buffer
	if err := WriteResults(&buf, results, courses); err != nil {
		t.Fatal("Failed to export results:", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal("Failed to open workbook:", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatal(err)
	}

	expected := [][]string{
		{"Course Code", "Course Name", "Max Degree", "Final Grade"},
		{"CS101", "Intro CS", "100", "85.5"},
		{"GHOST", "", "", "10"},
	}
	if diff := cmp.Diff(expected, rows); diff != "" {
		t.Fatalf("Unexpected rows (-want +got):\n%s", diff)
	}
}

func TestWriteEmptyResults(t *testing.T) {
	var buf bytes.Buffer
	err := WriteResults(&buf, &scorer.StudentResults{Student: "S1"}, nil)
	if err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected only the header row, got %v", rows)
	}
}
