package ledger

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	lf "github.com/bigredeye/gradebook/internal/logfield"
	"github.com/bigredeye/gradebook/internal/models"
)

// Ledger keeps one headerless CSV file per course with rows of
// student_code,grade. Rows are only ever appended.
type Ledger struct {
	dir    string
	logger *zap.Logger
}

func NewLedger(dir string, logger *zap.Logger) *Ledger {
	return &Ledger{dir, logger.With(lf.Module("ledger"))}
}

func (l *Ledger) Path(course string) string {
	return filepath.Join(l.dir, course+".csv")
}

func (l *Ledger) Exists(course string) (bool, error) {
	_, err := os.Stat(l.Path(course))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, errors.Wrapf(err, "Failed to stat ledger of %s", course)
}

// EnsureCreated creates an empty ledger unless one already exists.
func (l *Ledger) EnsureCreated(course string) (bool, error) {
	file, err := os.OpenFile(l.Path(course), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, errors.Wrapf(err, "Failed to create ledger of %s", course)
	}
	if err := file.Close(); err != nil {
		return false, errors.Wrapf(err, "Failed to create ledger of %s", course)
	}

	l.logger.Info("Ledger doesn't exist, created an empty one",
		lf.CourseCode(course),
		lf.Path(l.Path(course)),
	)
	return true, nil
}

func (l *Ledger) Append(course, student string, grade int) error {
	file, err := os.OpenFile(l.Path(course), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrapf(err, "Failed to open ledger of %s", course)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{student, strconv.Itoa(grade)}); err != nil {
		return errors.Wrap(err, "Failed to write grade")
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "Failed to write grade")
	}

	l.logger.Debug("Appended grade", lf.CourseCode(course), lf.StudentCode(student), lf.Grade(grade))
	return errors.Wrap(file.Close(), "Failed to close ledger")
}

// ReadAll returns every row of the course ledger. A missing ledger is created
// empty (see EnsureCreated), so after the first call the file always exists.
func (l *Ledger) ReadAll(course string) ([]models.GradeEntry, error) {
	if _, err := l.EnsureCreated(course); err != nil {
		return nil, err
	}

	entries := make([]models.GradeEntry, 0)
	err := l.scan(course, func(line int, row []string) error {
		if len(row) < 2 {
			return errors.Errorf("Malformed row %d in ledger of %s", line, course)
		}
		grade, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return errors.Wrapf(err, "Invalid grade in row %d of ledger of %s", line, course)
		}
		entries = append(entries, models.GradeEntry{StudentCode: row[0], Grade: grade})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Registrations counts ledger rows without parsing grades. A missing ledger
// counts as zero and is left uncreated.
func (l *Ledger) Registrations(course string) (int, error) {
	exists, err := l.Exists(course)
	if err != nil || !exists {
		return 0, err
	}

	count := 0
	err = l.scan(course, func(int, []string) error {
		count++
		return nil
	})
	return count, err
}

func (l *Ledger) scan(course string, visit func(line int, row []string) error) error {
	file, err := os.Open(l.Path(course))
	if err != nil {
		return errors.Wrapf(err, "Failed to open ledger of %s", course)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	for line := 1; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "Failed to read ledger of %s", course)
		}
		if err := visit(line, row); err != nil {
			return err
		}
	}
}
