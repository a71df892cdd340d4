package report

import (
	"os"
	"path/filepath"

	units "github.com/docker/go-units"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bigredeye/gradebook/internal/charts"
	lf "github.com/bigredeye/gradebook/internal/logfield"
	"github.com/bigredeye/gradebook/internal/models"
	"github.com/bigredeye/gradebook/internal/scorer"
)

type CourseSource interface {
	LoadOrEmpty() ([]models.Course, error)
}

type RegistrationCounter interface {
	Registrations(course string) (int, error)
}

type Artifacts struct {
	Results  *scorer.StudentResults
	HTML     string
	BarChart string
	PieChart string
}

type Generator struct {
	courses   CourseSource
	ledger    RegistrationCounter
	scorer    *scorer.Scorer
	charts    *charts.Renderer
	outputDir string
	logger    *zap.Logger
}

func NewGenerator(
	courses CourseSource,
	ledger RegistrationCounter,
	scorer *scorer.Scorer,
	charts *charts.Renderer,
	outputDir string,
	logger *zap.Logger,
) *Generator {
	return &Generator{
		courses:   courses,
		ledger:    ledger,
		scorer:    scorer,
		charts:    charts,
		outputDir: outputDir,
		logger:    logger.With(lf.Module("report")),
	}
}

// Results computes per-course averages of the student over the whole catalog.
func (g *Generator) Results(student string) (*scorer.StudentResults, []models.Course, error) {
	courses, err := g.courses.LoadOrEmpty()
	if err != nil {
		return nil, nil, errors.Wrap(err, "Failed to load courses")
	}

	results, err := g.scorer.CalcStudentResults(student, courses)
	if err != nil {
		return nil, nil, errors.Wrap(err, "Failed to calculate results")
	}
	return results, courses, nil
}

func (g *Generator) registrationSlices(courses []models.Course) ([]charts.Slice, error) {
	slices := make([]charts.Slice, len(courses))
	for i, course := range courses {
		count, err := g.ledger.Registrations(course.Code)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to count registrations of %s", course.Code)
		}
		slices[i] = charts.Slice{Label: course.Name, Value: float64(count)}
	}
	return slices, nil
}

func (g *Generator) logArtifact(kind, path string) {
	info, err := os.Stat(path)
	if err != nil {
		g.logger.Warn("Failed to stat artifact", lf.Path(path), zap.Error(err))
		return
	}
	g.logger.Info("Rendered "+kind,
		lf.Path(path),
		zap.String("size", units.HumanSize(float64(info.Size()))),
	)
}

func (g *Generator) Generate(student string) (*Artifacts, error) {
	if err := CheckStudent(student); err != nil {
		return nil, err
	}

	results, courses, err := g.Results(student)
	if err != nil {
		return nil, err
	}

	slices, err := g.registrationSlices(courses)
	if err != nil {
		return nil, err
	}

	artifacts := &Artifacts{
		Results:  results,
		HTML:     filepath.Join(g.outputDir, File(student)),
		BarChart: filepath.Join(g.outputDir, charts.BarChartFile(student)),
		PieChart: filepath.Join(g.outputDir, charts.PieChartFile(student)),
	}

	group := errgroup.Group{}
	group.Go(func() error {
		return g.charts.RenderBarChart(results.Courses, artifacts.BarChart)
	})
	group.Go(func() error {
		return g.charts.RenderPieChart(slices, artifacts.PieChart)
	})
	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "Failed to render charts")
	}
	g.logArtifact("bar chart", artifacts.BarChart)
	g.logArtifact("pie chart", artifacts.PieChart)

	if err := g.writePage(artifacts); err != nil {
		return nil, err
	}
	g.logArtifact("report", artifacts.HTML)

	g.logger.Info("Generated student report",
		lf.StudentCode(student),
		lf.Count(len(results.Courses)),
	)
	return artifacts, nil
}

func (g *Generator) writePage(artifacts *Artifacts) error {
	file, err := os.Create(artifacts.HTML)
	if err != nil {
		return errors.Wrap(err, "Failed to create report page")
	}

	err = RenderHTML(file, &Page{
		StudentCode: artifacts.Results.Student,
		Results:     artifacts.Results.Courses,
		BarChart:    filepath.Base(artifacts.BarChart),
		PieChart:    filepath.Base(artifacts.PieChart),
	})
	if err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "Failed to write report page")
}
