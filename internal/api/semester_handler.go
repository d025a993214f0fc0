package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/phrazzld/semester/internal/api/shared"
	"github.com/phrazzld/semester/internal/domain/semester"
	"github.com/phrazzld/semester/internal/platform/logger"
)

// SemesterHandler handles semester-related HTTP requests
type SemesterHandler struct {
	calendar semester.Calendar
	logger   *slog.Logger
}

// NewSemesterHandler creates a new SemesterHandler
func NewSemesterHandler(calendar semester.Calendar, logger *slog.Logger) *SemesterHandler {
	if calendar == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("calendar cannot be nil for SemesterHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SemesterHandler")
	}

	return &SemesterHandler{
		calendar: calendar,
		logger:   logger.With(slog.String("component", "semester_handler")),
	}
}

// Current handles GET /semesters/current requests.
func (h *SemesterHandler) Current(w http.ResponseWriter, r *http.Request) {
	h.respondDerived(w, r, "current", h.calendar.Now)
}

// Next handles GET /semesters/next requests.
func (h *SemesterHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.respondDerived(w, r, "next", h.calendar.Next)
}

// Previous handles GET /semesters/previous requests.
func (h *SemesterHandler) Previous(w http.ResponseWriter, r *http.Request) {
	h.respondDerived(w, r, "previous", h.calendar.Previous)
}

func (h *SemesterHandler) respondDerived(
	w http.ResponseWriter,
	r *http.Request,
	which string,
	derive func() (semester.Semester, error),
) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	s, err := derive()
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	log.Debug("derived semester from clock",
		slog.String("which", which),
		slog.String("semester", s.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, NewSemesterResponse(s))
}

// Random handles GET /semesters/random requests.
// Query parameters min_year and max_year default to the configured range;
// exclude may be repeated.
func (h *SemesterHandler) Random(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	q := r.URL.Query()

	defMin, defMax := h.calendar.RandomYears()
	minYear, err := getQueryInt(q, "min_year", defMin)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	maxYear, err := getQueryInt(q, "max_year", defMax)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	exclude := getQueryTerms(q, "exclude")

	s, err := h.calendar.Random(minYear, maxYear, exclude...)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	log.Debug("generated random semester",
		slog.Int("min_year", minYear),
		slog.Int("max_year", maxYear),
		slog.Int("excluded", len(exclude)),
		slog.String("semester", s.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, NewSemesterResponse(s))
}

// Get handles GET /semesters/{value} requests, converting a code to its
// string form or a string to its code.
func (h *SemesterHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := getPathSemester(r, h.calendar.Codec(), "value")
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewSemesterResponse(s))
}

// Shift handles POST /semesters/{value}/shift requests.
func (h *SemesterHandler) Shift(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	s, err := getPathSemester(r, h.calendar.Codec(), "value")
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	var req ShiftRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.respondWithError(w, r, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	shifted, err := s.Shift(req.Years, req.Semesters)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	log.Debug("shifted semester",
		slog.String("from", s.String()),
		slog.Int("semesters", req.Semesters),
		slog.Int("years", req.Years),
		slog.String("to", shifted.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, NewSemesterResponse(shifted))
}

// Validate handles GET /validate requests. Exactly one of the code and
// string query parameters must be given.
func (h *SemesterHandler) Validate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	hasCode, hasString := q.Has("code"), q.Has("string")

	if hasCode == hasString {
		h.respondWithError(w, r, fmt.Errorf("%w: exactly one of code and string is required", ErrInvalidRequest))
		return
	}

	codec := h.calendar.Codec()
	var valid bool
	if hasCode {
		code, err := strconv.Atoi(q.Get("code"))
		valid = err == nil && codec.IsValidCode(code)
	} else {
		valid = codec.IsValidString(q.Get("string"))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ValidationResponse{Valid: valid})
}

// Health handles GET /health requests.
func (h *SemesterHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *SemesterHandler) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
