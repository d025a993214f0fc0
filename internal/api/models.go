package api

import (
	"github.com/phrazzld/semester/internal/domain/semester"
)

// SemesterResponse is the JSON form of a semester.
type SemesterResponse struct {
	Code   string `json:"code"`
	String string `json:"string"`
	Term   string `json:"term"`
	Year   int    `json:"year"`
}

// ShiftRequest defines the payload for the shift endpoint. A year counts as
// three semesters and both fields are combined into a single shift.
type ShiftRequest struct {
	Semesters int `json:"semesters" validate:"gte=-30000,lte=30000"`
	Years     int `json:"years"     validate:"gte=-10000,lte=10000"`
}

// ValidationResponse reports whether a code or string is well formed.
type ValidationResponse struct {
	Valid bool `json:"valid"`
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status string `json:"status"`
}

// NewSemesterResponse converts a semester to its JSON form.
func NewSemesterResponse(s semester.Semester) SemesterResponse {
	return SemesterResponse{
		Code:   s.Code(),
		String: s.String(),
		Term:   s.Term().String(),
		Year:   s.Year(),
	}
}
