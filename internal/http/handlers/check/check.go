// Package check contains the HTTP handler that runs one eligibility
// rule against one stored student record.
//
// The handler is the seam between the HTTP world and the eligibility
// engine: it loads the record, turns the request body into a typed
// Requirement, resolves the named rule from the registry, and runs a
// single coordinator pass. One rule per request — there is no batching
// and no AND/OR composition.
package check

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dwikurnia/eligibility-api/internal/eligibility"
	"github.com/dwikurnia/eligibility-api/internal/storage"
	"github.com/dwikurnia/eligibility-api/internal/types"
	"github.com/dwikurnia/eligibility-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// Run handles POST /api/students/{id}/checks.
//
// Request body (one of):
//
//	{ "rule": "credit_limit", "limit": 22 }      limit optional, falls
//	                                             back to defaultLimit
//	{ "rule": "prerequisite", "course": "Algoritma" }
//	{ "rule": "payment",      "status": "lunas" }
//
// Success response (200 OK):
//
//	{ "student": "Budi", "rule": "prerequisite", "eligible": true }
//
// An ineligible record is still a 200 — "rule not satisfied" is a
// normal outcome, not an error. 400 covers bad ids, bad bodies, unknown
// rules, and missing requirement fields; 500 covers storage failures.
func Run(
	storage storage.Storage,
	registry *eligibility.Registry,
	results eligibility.ResultLogger,
	defaultLimit int,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("running eligibility check", slog.String("id", id))

		intID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("invalid id: must be an integer")))
			return
		}

		var req types.CheckRequest
		err = json.NewDecoder(r.Body).Decode(&req)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		rule, err := registry.Get(req.Rule)
		if err != nil {
			// Name the kinds that would have worked.
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(fmt.Errorf("%s (known rules: %s)",
					err.Error(), strings.Join(registry.Kinds(), ", "))))
			return
		}

		requirement, err := buildRequirement(req, defaultLimit)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		rec, err := storage.GetStudentByID(intID)
		if err != nil {
			slog.Error("error loading record for check",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		// A fresh coordinator per request: it is two pointers, and each
		// check is independent anyway.
		service := eligibility.NewService(rule, results)

		eligible, err := service.Process(rec, requirement)
		if err != nil {
			// A registered rule rejected the requirement kind we built
			// for it — a custom rule with unexpected expectations.
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, types.CheckResponse{
			Student:  rec.Name,
			Rule:     rule.Name(),
			Eligible: eligible,
		})
	}
}

// buildRequirement maps the request body onto the typed requirement the
// named rule expects. Built-in rules have a known shape; any custom
// rule registered later takes the string path via its own field.
func buildRequirement(req types.CheckRequest, defaultLimit int) (eligibility.Requirement, error) {
	switch req.Rule {
	case eligibility.RuleCreditLimit:
		limit := defaultLimit
		if req.Limit != nil {
			limit = *req.Limit
		}
		return eligibility.IntRequirement(limit), nil

	case eligibility.RulePrerequisite:
		if req.Course == "" {
			return eligibility.Requirement{}, errors.New("field course is required for rule prerequisite")
		}
		return eligibility.StringRequirement(req.Course), nil

	case eligibility.RulePayment:
		if req.Status == "" {
			return eligibility.Requirement{}, errors.New("field status is required for rule payment")
		}
		return eligibility.StringRequirement(req.Status), nil

	default:
		// Custom rules: accept whichever single requirement field the
		// client set. Limit wins if both are present.
		if req.Limit != nil {
			return eligibility.IntRequirement(*req.Limit), nil
		}
		if req.Course != "" {
			return eligibility.StringRequirement(req.Course), nil
		}
		if req.Status != "" {
			return eligibility.StringRequirement(req.Status), nil
		}
		return eligibility.Requirement{}, fmt.Errorf("rule %q needs one of limit, course, or status", req.Rule)
	}
}
