package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bigredeye/gradebook/internal/models"
)

const menuText = `
1. List/Add Students
2. List/Add Courses
3. Supply Grades
4. Generate HTML Result
5. Generate Bar Chart
6. Generate Pie Chart
7. Exit`

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

var errInputClosed = errors.New("input closed")

func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompter) askAll(questions ...string) ([]string, error) {
	answers := make([]string, len(questions))
	for i, question := range questions {
		answer, err := p.ask(question)
		if err != nil {
			return nil, err
		}
		answers[i] = answer
	}
	return answers, nil
}

func makeMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(book, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runMenu(b *gradebook, in io.Reader, out io.Writer) error {
	p := &prompter{bufio.NewScanner(in), out}

	for {
		fmt.Fprintln(out, menuText)
		choice, err := p.ask("Enter your choice (1-7): ")
		if err != nil {
			if errors.Is(err, errInputClosed) {
				return nil
			}
			return err
		}
		if choice == "7" {
			return nil
		}

		err = runMenuChoice(b, p, choice)
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			// a failed action never ends the session
			fmt.Fprintf(out, "Error: %s\n", err.Error())
		}
	}
}

func runMenuChoice(b *gradebook, p *prompter, choice string) error {
	switch choice {
	case "1":
		if err := b.listStudents(p.out); err != nil {
			return err
		}
		answers, err := p.askAll("Enter student code: ", "Enter student name: ", "Enter student birthdate: ")
		if err != nil {
			return err
		}
		return b.addStudent(models.Student{Code: answers[0], Name: answers[1], Birthdate: answers[2]})

	case "2":
		if err := b.listCourses(p.out); err != nil {
			return err
		}
		answers, err := p.askAll("Enter course code: ", "Enter course name: ", "Enter max degree: ")
		if err != nil {
			return err
		}
		return b.addCourse(models.Course{Code: answers[0], Name: answers[1], MaxDegree: answers[2]})

	case "3":
		answers, err := p.askAll("Enter student code: ", "Enter course code: ", "Enter grade: ")
		if err != nil {
			return err
		}
		grade, err := strconv.Atoi(answers[2])
		if err != nil {
			return errors.Errorf("Invalid grade %q", answers[2])
		}
		return b.supplyGrade(answers[0], answers[1], grade)

	case "4", "5", "6":
		student, err := p.ask("Enter student code: ")
		if err != nil {
			return err
		}
		artifacts, err := b.generateReport(p.out, student)
		if err != nil {
			return err
		}
		switch choice {
		case "5":
			fmt.Fprintf(p.out, "Bar chart: %s\n", artifacts.BarChart)
		case "6":
			fmt.Fprintf(p.out, "Pie chart: %s\n", artifacts.PieChart)
		}
		return nil

	default:
		fmt.Fprintln(p.out, "Invalid choice. Please enter a number between 1 and 7.")
		return nil
	}
}
