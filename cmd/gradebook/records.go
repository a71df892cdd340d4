package main

import (
	"github.com/spf13/cobra"

	"github.com/bigredeye/gradebook/internal/models"
)

func makeStudentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "students",
		Short: "List or add students",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List students",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return book.listStudents(cmd.OutOrStdout())
		},
	})

	var student models.Student
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a student",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return book.addStudent(student)
		},
	}
	add.Flags().StringVar(&student.Code, "code", "", "Student code")
	add.Flags().StringVar(&student.Name, "name", "", "Student name")
	add.Flags().StringVar(&student.Birthdate, "birthdate", "", "Student birthdate")
	_ = add.MarkFlagRequired("code")
	cmd.AddCommand(add)

	return cmd
}

func makeCoursesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List or add courses",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return book.listCourses(cmd.OutOrStdout())
		},
	})

	var course models.Course
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return book.addCourse(course)
		},
	}
	add.Flags().StringVar(&course.Code, "code", "", "Course code")
	add.Flags().StringVar(&course.Name, "name", "", "Course name")
	add.Flags().StringVar(&course.MaxDegree, "max-degree", "", "Max degree")
	_ = add.MarkFlagRequired("code")
	cmd.AddCommand(add)

	return cmd
}
