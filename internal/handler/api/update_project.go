package api

import (
	"net/http"

	"github.com/fhuszti/portfolio-ms-go/internal/api_context"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/upload"
)

type UpdateProjectResponse struct {
	Message string            `json:"message"`
	Project model.ProjectView `json:"project"`
}

func UpdateProjectHandler(svc port.ProjectUpdater, maxFileBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		form, err := upload.Parse(r, maxFileBytes)
		if err != nil {
			WriteProjectError(w, "Invalid upload", err)
			return
		}

		p, err := svc.UpdateProject(r.Context(), port.UpdateProjectInput{
			ID:          id,
			Title:       form.Value("title"),
			Description: form.Value("description"),
			Category:    form.Value("category"),
			Files:       form.Files,
		})
		if err != nil {
			WriteProjectError(w, "Failed to update project", err)
			return
		}

		RespondJSON(w, http.StatusOK, UpdateProjectResponse{Message: "Project updated successfully", Project: p.View()})
		logger.Infof(r.Context(), "✅  Successfully updated project #%s", id)
	}
}
