package catalog

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"

	"github.com/bigredeye/gradebook/internal/models"
)

// Catalog is a bulk list of records to import, e.g.
//
//	students:
//	  - code: S1
//	    name: Ada Lovelace
//	    birthdate: 10-12-1815
//	courses:
//	  - code: CS101
//	    name: Intro CS
//	    max_degree: "100"
type Catalog struct {
	Students []models.Student `yaml:"students"`
	Courses  []models.Course  `yaml:"courses"`
}

func Parse(body []byte) (*Catalog, error) {
	catalog := &Catalog{}
	if err := yaml.UnmarshalStrict(body, catalog); err != nil {
		return nil, errors.Wrap(err, "Failed to unmarshal catalog")
	}

	for i, student := range catalog.Students {
		if student.Code == "" {
			return nil, errors.Errorf("Student #%d has no code", i+1)
		}
	}
	for i, course := range catalog.Courses {
		if course.Code == "" {
			return nil, errors.Errorf("Course #%d has no code", i+1)
		}
	}
	return catalog, nil
}

func Load(path string) (*Catalog, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read catalog")
	}
	return Parse(body)
}

func merge[T any](existing, imported []T, code func(*T) string) ([]T, int) {
	added := 0
	for i := range imported {
		found := slices.IndexFunc(existing, func(record T) bool {
			return code(&record) == code(&imported[i])
		})
		if found != -1 {
			continue
		}
		existing = append(existing, imported[i])
		added++
	}
	return existing, added
}

// MergeStudents appends imported students whose code is not taken yet.
func MergeStudents(existing, imported []models.Student) ([]models.Student, int) {
	return merge(existing, imported, func(s *models.Student) string { return s.Code })
}

// MergeCourses appends imported courses whose code is not taken yet.
func MergeCourses(existing, imported []models.Course) ([]models.Course, int) {
	return merge(existing, imported, func(c *models.Course) string { return c.Code })
}
