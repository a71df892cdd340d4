package api

import "github.com/bigredeye/gradebook/internal/scorer"

type ReportRequest struct {
	Student string `json:"student" form:"student"`
}

// Artifact paths are relative to the server's /reports route.
type ReportResponse struct {
	Status

	Results  *scorer.StudentResults `json:"results,omitempty"`
	HTML     string                 `json:"html,omitempty"`
	BarChart string                 `json:"bar_chart,omitempty"`
	PieChart string                 `json:"pie_chart,omitempty"`
}
