package api

import (
	"net/http"

	"github.com/fhuszti/portfolio-ms-go/internal/api_context"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

type MessageResponse struct {
	Message string `json:"message"`
}

// DeleteProjectHandler deletes a project by ID. Its assets stay on the media host.
func DeleteProjectHandler(svc port.ProjectDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := svc.DeleteProject(r.Context(), id); err != nil {
			WriteProjectError(w, "Failed to delete project", err)
			return
		}

		RespondJSON(w, http.StatusOK, MessageResponse{Message: "Project deleted successfully"})
		logger.Infof(r.Context(), "✅  Successfully deleted project #%s", id)
	}
}
