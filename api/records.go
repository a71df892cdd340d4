package api

import "github.com/bigredeye/gradebook/internal/models"

type StudentsResponse struct {
	Status
	Students []models.Student `json:"students,omitempty"`
}

type CoursesResponse struct {
	Status
	Courses []models.Course `json:"courses,omitempty"`
}
