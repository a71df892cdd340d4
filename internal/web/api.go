package web

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bigredeye/gradebook/api"
	lf "github.com/bigredeye/gradebook/internal/logfield"
	"github.com/bigredeye/gradebook/internal/report"
)

type apiService struct {
	webService
}

func setupApiService(server *Server, r *gin.Engine) {
	s := apiService{webService{server, server.logger}}

	r.GET("/api/students", s.students)
	r.GET("/api/courses", s.courses)
	r.GET("/api/results", s.results)
	r.POST("/api/report", s.report)
}

func (s apiService) fail(c *gin.Context, code int, err error, response interface{}, status *api.Status) {
	s.log.Warn("Failed to process request", zap.String("path", c.FullPath()), zap.Error(err))
	status.Ok = false
	status.Error = err.Error()
	c.JSON(code, response)
}

func (s apiService) students(c *gin.Context) {
	res := &api.StudentsResponse{}

	s.server.mu.Lock()
	students, err := s.server.students.LoadOrEmpty()
	s.server.mu.Unlock()
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err, res, &res.Status)
		return
	}

	res.Ok = true
	res.Students = students
	c.JSON(http.StatusOK, res)
}

func (s apiService) courses(c *gin.Context) {
	res := &api.CoursesResponse{}

	s.server.mu.Lock()
	courses, err := s.server.courses.LoadOrEmpty()
	s.server.mu.Unlock()
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err, res, &res.Status)
		return
	}

	res.Ok = true
	res.Courses = courses
	c.JSON(http.StatusOK, res)
}

func (s apiService) results(c *gin.Context) {
	res := &api.ResultsResponse{}

	req := api.ResultsRequest{}
	if err := c.ShouldBindQuery(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err, res, &res.Status)
		return
	}
	if req.Student == "" {
		s.fail(c, http.StatusBadRequest, errors.New("Student code is required"), res, &res.Status)
		return
	}
	if err := report.CheckStudent(req.Student); err != nil {
		s.fail(c, http.StatusBadRequest, err, res, &res.Status)
		return
	}

	s.server.mu.Lock()
	results, _, err := s.server.generator.Results(req.Student)
	s.server.mu.Unlock()
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err, res, &res.Status)
		return
	}

	res.Ok = true
	res.Results = results
	c.JSON(http.StatusOK, res)
}

func (s apiService) report(c *gin.Context) {
	res := &api.ReportResponse{}

	req := api.ReportRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err, res, &res.Status)
		return
	}
	if req.Student == "" {
		s.fail(c, http.StatusBadRequest, errors.New("Student code is required"), res, &res.Status)
		return
	}
	if err := report.CheckStudent(req.Student); err != nil {
		s.fail(c, http.StatusBadRequest, err, res, &res.Status)
		return
	}

	s.log.Info("Generating report", lf.StudentCode(req.Student))

	s.server.mu.Lock()
	artifacts, err := s.server.generator.Generate(req.Student)
	s.server.mu.Unlock()
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err, res, &res.Status)
		return
	}

	res.Ok = true
	res.Results = artifacts.Results
	res.HTML = "/reports/" + filepath.Base(artifacts.HTML)
	res.BarChart = "/reports/" + filepath.Base(artifacts.BarChart)
	res.PieChart = "/reports/" + filepath.Base(artifacts.PieChart)
	c.JSON(http.StatusOK, res)
}
