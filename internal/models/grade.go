package models

// GradeEntry is a single row of a course ledger. A student may have several
// rows per course; each one is a separate observation.
type GradeEntry struct {
	StudentCode string
	Grade       int
}
