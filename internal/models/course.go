package models

type Course struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
	// Upper bound of the grade scale, stored as entered.
	MaxDegree string `json:"max_degree" yaml:"max_degree"`
}
