package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/upload"
)

type CreateProjectResponse struct {
	Message    string            `json:"message"`
	UploadTime string            `json:"uploadTime"`
	Project    model.ProjectView `json:"project"`
}

func CreateProjectHandler(svc port.ProjectCreator, maxFileBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		form, err := upload.Parse(r, maxFileBytes)
		if err != nil {
			WriteProjectError(w, "Invalid upload", err)
			return
		}

		in := port.CreateProjectInput{
			Title:       form.Fields["title"],
			Description: form.Fields["description"],
			Category:    form.Fields["category"],
			Files:       form.Files,
		}
		p, err := svc.CreateProject(r.Context(), in)
		if err != nil {
			WriteProjectError(w, "Failed to create project", err)
			return
		}

		RespondJSON(w, http.StatusCreated, CreateProjectResponse{
			Message:    "Project created successfully",
			UploadTime: fmt.Sprintf("%dms", time.Since(start).Milliseconds()),
			Project:    p.View(),
		})
		logger.Infof(r.Context(), "✅  Successfully created project #%s", p.ID)
	}
}
