package api

import "github.com/bigredeye/gradebook/internal/scorer"

type ResultsRequest struct {
	Student string `json:"student" form:"student"`
}

type ResultsResponse struct {
	Status

	Results *scorer.StudentResults `json:"results,omitempty"`
}
