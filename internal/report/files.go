package report

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/bigredeye/gradebook/internal/charts"
)

var ErrInvalidStudent = errors.New("Invalid student code")

func File(student string) string {
	return student + ".html"
}

// CheckStudent rejects codes that cannot be used as a file name inside the
// report directory.
func CheckStudent(code string) error {
	if code == "" || strings.HasPrefix(code, ".") ||
		strings.ContainsAny(code, `/\`) || filepath.Base(code) != code {
		return errors.Wrapf(ErrInvalidStudent, "Student %q", code)
	}
	return nil
}

// IsArtifact reports whether name is a page or chart file the generator writes.
func IsArtifact(name string) bool {
	for _, suffix := range []string{File(""), charts.BarChartFile(""), charts.PieChartFile("")} {
		stem := strings.TrimSuffix(name, suffix)
		if stem != name && CheckStudent(stem) == nil {
			return true
		}
	}
	return false
}
