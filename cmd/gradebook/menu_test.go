package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"github.com/bigredeye/gradebook/internal/config"
	"github.com/bigredeye/gradebook/internal/models"
)

func makeGradebook(t *testing.T) (*gradebook, string) {
	dir := t.TempDir()

	conf := &config.Config{}
	conf.Storage.Dir = dir
	conf.Storage.StudentsFile = "students.json"
	conf.Storage.CoursesFile = "courses.json"
	conf.Reports.Dir = dir
	conf.Reports.Charts.Width = 320
	conf.Reports.Charts.Height = 240

	return newGradebook(conf, zaptest.NewLogger(t)), dir
}

const session = `1
S1
Ada Lovelace
10-12-1815
2
CS101
Intro CS
100
3
S1
CS101
80
3
S1
CS101
ninety
3
S1
CS101
90
8
4
S1
5
S1
7
`

func TestMenuSession(t *testing.T) {
	b, dir := makeGradebook(t)

	var out bytes.Buffer
	if err := runMenu(b, strings.NewReader(session), &out); err != nil {
		t.Fatal("Menu failed:", err)
	}

	students, err := b.students.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal([]models.Student{{Code: "S1", Name: "Ada Lovelace", Birthdate: "10-12-1815"}}, students) {
		t.Fatalf("Unexpected students: %+v", students)
	}

	ledger, err := os.ReadFile(filepath.Join(dir, "CS101.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if string(ledger) != "S1,80\nS1,90\n" {
		t.Fatalf("Unexpected ledger: %q", ledger)
	}

	transcript := out.String()
	for _, fragment := range []string{
		`Error: Invalid grade "ninety"`,
		"Invalid choice. Please enter a number between 1 and 7.",
		"Report: " + filepath.Join(dir, "S1.html"),
		"Bar chart: " + filepath.Join(dir, "S1_bar_chart.png"),
	} {
		if !strings.Contains(transcript, fragment) {
			t.Fatalf("Transcript does not contain %q:\n%s", fragment, transcript)
		}
	}

	page, err := os.ReadFile(filepath.Join(dir, "S1.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(page), "<td>85.0</td>") {
		t.Fatalf("Unexpected report:\n%s", page)
	}
}

func TestMenuListsRecords(t *testing.T) {
	b, _ := makeGradebook(t)
	if err := b.addCourse(models.Course{Code: "CS101", Name: "Intro CS", MaxDegree: "100"}); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	// the add prompt hits end of input, which ends the session
	if err := runMenu(b, strings.NewReader("2\n"), &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Code: CS101, Name: Intro CS, Max Degree: 100") {
		t.Fatalf("Courses were not listed:\n%s", out.String())
	}
}
