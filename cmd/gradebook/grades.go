package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func makeGradesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grades",
		Short: "Supply or list grades",
	}

	var student, course string
	var grade int
	add := &cobra.Command{
		Use:   "add",
		Short: "Append a grade to the course ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return book.supplyGrade(student, course, grade)
		},
	}
	add.Flags().StringVar(&student, "student", "", "Student code")
	add.Flags().StringVar(&course, "course", "", "Course code")
	add.Flags().IntVar(&grade, "grade", 0, "Grade")
	_ = add.MarkFlagRequired("student")
	_ = add.MarkFlagRequired("course")
	_ = add.MarkFlagRequired("grade")
	cmd.AddCommand(add)

	var listCourse string
	list := &cobra.Command{
		Use:   "list",
		Short: "Print the course ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := book.ledger.ReadAll(listCourse)
			if err != nil {
				return err
			}
			for _, entry := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", entry.StudentCode, entry.Grade)
			}
			return nil
		},
	}
	list.Flags().StringVar(&listCourse, "course", "", "Course code")
	_ = list.MarkFlagRequired("course")
	cmd.AddCommand(list)

	return cmd
}
