package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fhuszti/portfolio-ms-go/internal/api_context"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/admin"
	"github.com/fhuszti/portfolio-ms-go/internal/validation"
)

const maxJSONBody = 64 * 1024

func LoginHandler(svc port.AdminAuthenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req port.LoginInput
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}
		if !respondValidation(w, r, req) {
			return
		}

		out, err := svc.Login(r.Context(), req)
		if errors.Is(err, admin.ErrInvalidCredentials) {
			WriteError(w, http.StatusUnauthorized, "Invalid credentials", nil)
			return
		}
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Login failed", err)
			return
		}

		w.Header().Set("Cache-Control", "no-store")
		RespondJSON(w, http.StatusOK, out)
	}
}

type VerifyResponse struct {
	Valid   bool   `json:"valid"`
	Subject string `json:"subject"`
	Role    string `json:"role"`
}

// VerifyHandler echoes the identity the auth middleware stored in the context.
func VerifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := api_context.AuthSubjectFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "Invalid token", nil)
			return
		}
		role, _ := api_context.AuthRoleFromContext(r.Context())
		RespondJSON(w, http.StatusOK, VerifyResponse{Valid: true, Subject: sub, Role: role})
	}
}

// respondValidation writes the validation errors of v, if any, and reports
// whether the request may proceed.
func respondValidation(w http.ResponseWriter, r *http.Request, v any) bool {
	errs := validation.ValidateStruct(v)
	if errs == nil {
		return true
	}
	errsJSON, err := validation.ErrorsToJson(errs)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", fmt.Errorf("encoding validation errors: %w", err))
		return false
	}

	// return the validation errors payload directly
	RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
	logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
	return false
}
