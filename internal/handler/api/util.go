package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/project"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// HintResponse is returned for pipeline failures the client can act upon.
type HintResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Hint  string `json:"hint"`
}

type hinter interface {
	Hint() string
}

func WriteError(w http.ResponseWriter, status int, msg string, err error) {
	ctx := context.Background()
	if err != nil {
		logger.Errorf(ctx, "❌  %s: %v", msg, err)
	} else {
		logger.Error(ctx, "❌  "+msg)
	}
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

// WriteProjectError maps a project use case failure to its HTTP answer.
// Unknown errors produce a 500 with msg.
func WriteProjectError(w http.ResponseWriter, msg string, err error) {
	var (
		vErr   *project.ValidationError
		tlErr  *project.TooLargeError
		upErr  *project.UploadError
		toErr  *project.TimeoutError
		tcErr  *project.TranscodeError
		status int
		hint   hinter
	)
	switch {
	case errors.As(err, &vErr):
		WriteError(w, http.StatusBadRequest, vErr.Msg, nil)
		return
	case errors.Is(err, project.ErrProjectNotFound):
		WriteError(w, http.StatusNotFound, "Project not found", nil)
		return
	case errors.As(err, &tlErr):
		status, hint = http.StatusBadRequest, tlErr
	case errors.As(err, &upErr):
		status, hint = http.StatusInternalServerError, upErr
	case errors.As(err, &toErr):
		status, hint = http.StatusInternalServerError, toErr
	case errors.As(err, &tcErr):
		status, hint = http.StatusInternalServerError, tcErr
	default:
		WriteError(w, http.StatusInternalServerError, msg, err)
		return
	}

	logger.Errorf(context.Background(), "❌  %s: %v", msg, err)
	resp := HintResponse{Error: msg, Hint: hint.Hint()}
	if upErr != nil {
		resp.Kind = string(upErr.Kind)
	}
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, status, resp)
}

func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to encode JSON response: %v", err)
	}
}

func RespondRawJSON(w http.ResponseWriter, status int, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(raw); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to write JSON payload: %v", err)
	}
}
