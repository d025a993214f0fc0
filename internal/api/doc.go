// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It is a thin adapter over the semester package:
// handlers convert path and query values to semesters and map the package's
// errors to status codes in one place.
package api
