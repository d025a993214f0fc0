package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/semester/internal/domain/semester"
)

// getPathSemester builds a semester from a URL path parameter holding either
// a numeric code or a "Term Year" string.
func getPathSemester(r *http.Request, codec *semester.Codec, paramName string) (semester.Semester, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return semester.Semester{}, fmt.Errorf("%w: %s is required", ErrInvalidRequest, paramName)
	}

	value, err := url.PathUnescape(raw)
	if err != nil {
		return semester.Semester{}, fmt.Errorf("%w: %s has invalid escaping", ErrInvalidRequest, paramName)
	}

	return codec.New(value)
}

// getQueryInt reads an optional integer query parameter, returning def when
// it is absent.
func getQueryInt(q url.Values, name string, def int) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidRequest, name)
	}
	return v, nil
}

// getQueryTerms reads every value of a repeated query parameter as a term.
func getQueryTerms(q url.Values, name string) []semester.Term {
	values := q[name]
	terms := make([]semester.Term, 0, len(values))
	for _, v := range values {
		if v != "" {
			terms = append(terms, semester.Term(v))
		}
	}
	return terms
}
