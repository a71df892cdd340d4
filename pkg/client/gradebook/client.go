package gradebook

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/bigredeye/gradebook/api"
	"github.com/bigredeye/gradebook/internal/models"
	"github.com/bigredeye/gradebook/internal/scorer"
)

type Client struct {
	client *resty.Client
}

func NewClient(endpoint string) (*Client, error) {
	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(time.Second * 10).
		SetRetryCount(3)

	return &Client{client}, nil
}

func (c *Client) LoadResults(student string) (*scorer.StudentResults, error) {
	res := &api.ResultsResponse{}
	_, err := c.client.R().
		SetResult(res).
		SetError(res).
		SetQueryParam("student", student).
		Get("/api/results")
	if err != nil {
		return nil, err
	}

	if !res.Ok {
		return nil, fmt.Errorf("failed to fetch results: %s", res.Error)
	}

	return res.Results, nil
}

func (c *Client) GenerateReport(student string) (*api.ReportResponse, error) {
	res := &api.ReportResponse{}
	_, err := c.client.R().
		SetResult(res).
		SetError(res).
		SetBody(api.ReportRequest{Student: student}).
		Post("/api/report")
	if err != nil {
		return nil, err
	}

	if !res.Ok {
		return nil, fmt.Errorf("failed to generate report: %s", res.Error)
	}

	return res, nil
}

func (c *Client) ListStudents() ([]models.Student, error) {
	res := &api.StudentsResponse{}
	_, err := c.client.R().
		SetResult(res).
		SetError(res).
		Get("/api/students")
	if err != nil {
		return nil, err
	}

	if !res.Ok {
		return nil, fmt.Errorf("failed to list students: %s", res.Error)
	}

	return res.Students, nil
}

func (c *Client) ListCourses() ([]models.Course, error) {
	res := &api.CoursesResponse{}
	_, err := c.client.R().
		SetResult(res).
		SetError(res).
		Get("/api/courses")
	if err != nil {
		return nil, err
	}

	if !res.Ok {
		return nil, fmt.Errorf("failed to list courses: %s", res.Error)
	}

	return res.Courses, nil
}
