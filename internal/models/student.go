package models

type Student struct {
	Code      string `json:"code" yaml:"code"`
	Name      string `json:"name" yaml:"name"`
	Birthdate string `json:"birthdate" yaml:"birthdate"`
}
