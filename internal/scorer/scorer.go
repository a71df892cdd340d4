package scorer

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	lf "github.com/bigredeye/gradebook/internal/logfield"
	"github.com/bigredeye/gradebook/internal/models"
)

type GradeSource interface {
	ReadAll(course string) ([]models.GradeEntry, error)
}

type Scorer struct {
	grades GradeSource
	logger *zap.Logger
}

func NewScorer(grades GradeSource, logger *zap.Logger) *Scorer {
	return &Scorer{grades, logger.With(lf.Module("scorer"))}
}

func (s Scorer) loadStudentGrades(student, course string) ([]int, error) {
	entries, err := s.grades.ReadAll(course)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to load grades of %s", course)
	}

	grades := make([]int, 0)
	for _, entry := range entries {
		if entry.StudentCode == student {
			grades = append(grades, entry.Grade)
		}
	}
	return grades, nil
}

func average(grades []int) float64 {
	sum := 0
	for _, grade := range grades {
		sum += grade
	}
	return float64(sum) / float64(len(grades))
}

func (s Scorer) CalcStudentResults(student string, courses []models.Course) (*StudentResults, error) {
	results := &StudentResults{
		Student: student,
		Courses: make([]CourseResult, 0, len(courses)),
	}

	seen := make(map[string]bool, len(courses))
	for _, course := range courses {
		if seen[course.Code] {
			continue
		}
		seen[course.Code] = true

		grades, err := s.loadStudentGrades(student, course.Code)
		if err != nil {
			return nil, err
		}
		if len(grades) == 0 {
			continue
		}

		results.Courses = append(results.Courses, CourseResult{
			Course:  course.Code,
			Average: average(grades),
		})
	}

	s.logger.Debug("Calculated student results",
		lf.StudentCode(student),
		lf.Count(len(results.Courses)),
	)
	return results, nil
}
