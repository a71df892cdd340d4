package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bigredeye/gradebook/internal/catalog"
	lf "github.com/bigredeye/gradebook/internal/logfield"
)

func makeImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import students and courses from a yaml catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imported, err := catalog.Load(args[0])
			if err != nil {
				return err
			}

			students, err := book.students.LoadOrEmpty()
			if err != nil {
				return errors.Wrap(err, "Failed to load students")
			}
			students, addedStudents := catalog.MergeStudents(students, imported.Students)
			if err := book.students.Save(students); err != nil {
				return errors.Wrap(err, "Failed to save students")
			}

			courses, err := book.courses.LoadOrEmpty()
			if err != nil {
				return errors.Wrap(err, "Failed to load courses")
			}
			courses, addedCourses := catalog.MergeCourses(courses, imported.Courses)
			if err := book.courses.Save(courses); err != nil {
				return errors.Wrap(err, "Failed to save courses")
			}

			log.Info("Imported catalog", lf.Path(args[0]))
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d students and %d courses\n", addedStudents, addedCourses)
			return nil
		},
	}
}
