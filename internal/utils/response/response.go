// Package response provides helpers for writing consistent JSON HTTP
// responses.
//
// Every handler sends JSON back to the client, so the set-header /
// set-status / encode dance lives here once instead of in each handler.
// Error responses always share one envelope shape, which keeps API
// consumers from guessing.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response is the standard envelope for error cases:
//
//	{ "status": "error", "error": "field Name is required" }
//
// Success responses may be any JSON shape (a record, a list, an id…).
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// Status constants — a typo in a raw literal would silently ship
// "eroor"; a typo here fails to compile.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes data JSON-encoded with the given HTTP status code.
//
// Order matters: Header() → WriteHeader() → body. Once WriteHeader is
// called the headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encoder streams straight into w; Encode appends a trailing
	// newline, which is handy when curling the API.
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into the standard envelope. Use it
// for unexpected failures: DB errors, decode errors, and the like.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError converts go-playground/validator field errors into a
// single human-readable envelope, one sentence per failing field:
//
//	{ "status": "error", "error": "field Name is required, field CreditsTaken must be 0 or greater" }
func ValidationError(errs validator.ValidationErrors) Response {
	var msgs []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", e.Field()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("field %s must be %s or greater", e.Field(), e.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("field %s must be one of [%s]", e.Field(), e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(msgs, ", "),
	}
}
