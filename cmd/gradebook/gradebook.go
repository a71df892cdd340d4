package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bigredeye/gradebook/internal/charts"
	"github.com/bigredeye/gradebook/internal/config"
	"github.com/bigredeye/gradebook/internal/ledger"
	lf "github.com/bigredeye/gradebook/internal/logfield"
	"github.com/bigredeye/gradebook/internal/models"
	"github.com/bigredeye/gradebook/internal/records"
	"github.com/bigredeye/gradebook/internal/report"
	"github.com/bigredeye/gradebook/internal/scorer"
)

// gradebook wires the stores and the report pipeline for one command run.
type gradebook struct {
	config *config.Config
	logger *zap.Logger

	students  *records.Document[models.Student]
	courses   *records.Document[models.Course]
	ledger    *ledger.Ledger
	generator *report.Generator
}

func newGradebook(conf *config.Config, logger *zap.Logger) *gradebook {
	grades := ledger.NewLedger(conf.Storage.Dir, logger)
	courses := records.NewDocument[models.Course](conf.CoursesPath())

	return &gradebook{
		config:   conf,
		logger:   logger,
		students: records.NewDocument[models.Student](conf.StudentsPath()),
		courses:  courses,
		ledger:   grades,
		generator: report.NewGenerator(
			courses,
			grades,
			scorer.NewScorer(grades, logger),
			charts.NewRenderer(conf.Reports.Charts.Width, conf.Reports.Charts.Height),
			conf.Reports.Dir,
			logger,
		),
	}
}

func (b *gradebook) listStudents(w io.Writer) error {
	students, err := b.students.LoadOrEmpty()
	if err != nil {
		return errors.Wrap(err, "Failed to load students")
	}
	for _, student := range students {
		fmt.Fprintf(w, "Code: %s, Name: %s, Birthdate: %s\n", student.Code, student.Name, student.Birthdate)
	}
	return nil
}

func (b *gradebook) addStudent(student models.Student) error {
	if err := b.students.Append(student); err != nil {
		return errors.Wrap(err, "Failed to add student")
	}
	b.logger.Info("Added student", lf.StudentCode(student.Code))
	return nil
}

func (b *gradebook) listCourses(w io.Writer) error {
	courses, err := b.courses.LoadOrEmpty()
	if err != nil {
		return errors.Wrap(err, "Failed to load courses")
	}
	for _, course := range courses {
		fmt.Fprintf(w, "Code: %s, Name: %s, Max Degree: %s\n", course.Code, course.Name, course.MaxDegree)
	}
	return nil
}

func (b *gradebook) addCourse(course models.Course) error {
	if err := b.courses.Append(course); err != nil {
		return errors.Wrap(err, "Failed to add course")
	}
	b.logger.Info("Added course", lf.CourseCode(course.Code))
	return nil
}

func (b *gradebook) supplyGrade(student, course string, grade int) error {
	if err := b.ledger.Append(course, student, grade); err != nil {
		return errors.Wrap(err, "Failed to supply grade")
	}
	b.logger.Info("Supplied grade", lf.StudentCode(student), lf.CourseCode(course), lf.Grade(grade))
	return nil
}

func (b *gradebook) generateReport(w io.Writer, student string) (*report.Artifacts, error) {
	artifacts, err := b.generator.Generate(student)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to generate report")
	}
	fmt.Fprintf(w, "Report: %s\n", artifacts.HTML)
	return artifacts, nil
}
