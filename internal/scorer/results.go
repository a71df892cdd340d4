package scorer

type CourseResult struct {
	Course  string  `json:"course"`
	Average float64 `json:"average"`
}

// StudentResults lists averages in course catalog order. Courses without a
// single grade of the student are absent.
type StudentResults struct {
	Student string         `json:"student"`
	Courses []CourseResult `json:"courses"`
}

func (r *StudentResults) Averages() map[string]float64 {
	averages := make(map[string]float64, len(r.Courses))
	for _, result := range r.Courses {
		averages[result.Course] = result.Average
	}
	return averages
}

func (r *StudentResults) Empty() bool {
	return len(r.Courses) == 0
}
