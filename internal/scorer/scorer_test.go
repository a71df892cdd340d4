package scorer

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"github.com/bigredeye/gradebook/internal/ledger"
	"github.com/bigredeye/gradebook/internal/models"
)

type staticGrades map[string][]models.GradeEntry

func (g staticGrades) ReadAll(course string) ([]models.GradeEntry, error) {
	if course == "BROKEN" {
		return nil, fmt.Errorf("disk on fire")
	}
	return g[course], nil
}

func makeScorer(t *testing.T, grades staticGrades) *Scorer {
	return NewScorer(grades, zaptest.NewLogger(t))
}

func checkAverages(t *testing.T, results *StudentResults, expected map[string]float64) {
	t.Helper()
	if diff := cmp.Diff(expected, results.Averages()); diff != "" {
		t.Fatalf("Invalid averages (-want +got):\n%s", diff)
	}
}

func TestAverageOfMatchingRows(t *testing.T) {
	scorer := makeScorer(t, staticGrades{
		"CS101": {{StudentCode: "S1", Grade: 80}, {StudentCode: "S1", Grade: 90}, {StudentCode: "S2", Grade: 70}},
		"MATH1": {{StudentCode: "S2", Grade: 10}, {StudentCode: "S1", Grade: 1}, {StudentCode: "S1", Grade: 2}, {StudentCode: "S1", Grade: 2}},
	})
	courses := []models.Course{{Code: "CS101", Name: "Intro CS"}, {Code: "MATH1", Name: "Calculus"}}

	results, err := scorer.CalcStudentResults("S1", courses)
	if err != nil {
		t.Fatal(err)
	}
	checkAverages(t, results, map[string]float64{"CS101": 85.0, "MATH1": 5.0 / 3.0})

	results, err = scorer.CalcStudentResults("S2", courses)
	if err != nil {
		t.Fatal(err)
	}
	checkAverages(t, results, map[string]float64{"CS101": 70, "MATH1": 10})
}

func TestCoursesWithoutGradesAreAbsent(t *testing.T) {
	scorer := makeScorer(t, staticGrades{
		"CS101": {{StudentCode: "S2", Grade: 70}},
		"PHYS":  {{StudentCode: "S1", Grade: 60}},
	})
	courses := []models.Course{{Code: "CS101"}, {Code: "MATH1"}, {Code: "PHYS"}}

	results, err := scorer.CalcStudentResults("S1", courses)
	if err != nil {
		t.Fatal(err)
	}
	expected := []CourseResult{{Course: "PHYS", Average: 60}}
	if !cmp.Equal(expected, results.Courses) {
		t.Fatalf("Unexpected results: %+v", results.Courses)
	}
}

func TestStudentWithoutGrades(t *testing.T) {
	scorer := makeScorer(t, staticGrades{
		"CS101": {{StudentCode: "S1", Grade: 80}},
	})

	results, err := scorer.CalcStudentResults("S404", []models.Course{{Code: "CS101"}, {Code: "MATH1"}})
	if err != nil {
		t.Fatal(err)
	}
	if !results.Empty() || len(results.Averages()) != 0 {
		t.Fatalf("Expected empty results, got %+v", results.Courses)
	}
}

func TestCatalogOrderAndDuplicates(t *testing.T) {
	scorer := makeScorer(t, staticGrades{
		"A": {{StudentCode: "S1", Grade: 1}},
		"B": {{StudentCode: "S1", Grade: 2}},
		"C": {{StudentCode: "S1", Grade: 3}},
	})
	courses := []models.Course{{Code: "C"}, {Code: "A"}, {Code: "C"}, {Code: "B"}}

	results, err := scorer.CalcStudentResults("S1", courses)
	if err != nil {
		t.Fatal(err)
	}
	expected := []CourseResult{{"C", 3}, {"A", 1}, {"B", 2}}
	if !cmp.Equal(expected, results.Courses) {
		t.Fatalf("Unexpected results: %+v", results.Courses)
	}
}

func TestFractionalAverageIsNotRounded(t *testing.T) {
	scorer := makeScorer(t, staticGrades{
		"CS101": {{StudentCode: "S1", Grade: 80}, {StudentCode: "S1", Grade: 90}, {StudentCode: "S1", Grade: 90}},
	})

	results, err := scorer.CalcStudentResults("S1", []models.Course{{Code: "CS101"}})
	if err != nil {
		t.Fatal(err)
	}
	if results.Courses[0].Average != 260.0/3.0 {
		t.Fatalf("Invalid average: %v", results.Courses[0].Average)
	}
}

func TestLedgerFailurePropagates(t *testing.T) {
	scorer := makeScorer(t, staticGrades{})

	_, err := scorer.CalcStudentResults("S1", []models.Course{{Code: "BROKEN"}})
	if err == nil {
		t.Fatal("Expected ledger failure to propagate")
	}
}

func TestWithLedgerFiles(t *testing.T) {
	dir := t.TempDir()
	grades := ledger.NewLedger(dir, zaptest.NewLogger(t))
	if err := os.WriteFile(grades.Path("CS101"), []byte("S1,80\nS1,90\nS2,70\n"), 0644); err != nil {
		t.Fatal(err)
	}
	scorer := NewScorer(grades, zaptest.NewLogger(t))

	results, err := scorer.CalcStudentResults("S1", []models.Course{{Code: "CS101", Name: "Intro CS"}})
	if err != nil {
		t.Fatal(err)
	}
	checkAverages(t, results, map[string]float64{"CS101": 85.0})

	results, err = scorer.CalcStudentResults("S1", []models.Course{{Code: "MATH1"}})
	if err != nil {
		t.Fatal(err)
	}
	checkAverages(t, results, map[string]float64{})

	info, err := os.Stat(filepath.Join(dir, "MATH1.csv"))
	if err != nil {
		t.Fatal("Missing ledger was not created:", err)
	}
	if info.Size() != 0 {
		t.Fatal("Created ledger is not empty")
	}
}
