package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/contact"
)

func ContactHandler(svc port.ContactSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req port.ContactInput
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}
		if !respondValidation(w, r, req) {
			return
		}

		err := svc.SubmitContact(r.Context(), req)
		if errors.Is(err, contact.ErrInvalidContact) {
			WriteError(w, http.StatusBadRequest, "Name, email and message are required", err)
			return
		}
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not send message", err)
			return
		}

		RespondJSON(w, http.StatusAccepted, MessageResponse{Message: "Message received. Thank you!"})
	}
}
