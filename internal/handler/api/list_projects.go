package api

import (
	"net/http"
	"strings"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

type ListProjectsResponse struct {
	Count    int                 `json:"count"`
	Projects []model.ProjectView `json:"projects"`
}

func ListProjectsHandler(svc port.ProjectLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := strings.TrimSpace(r.URL.Query().Get("category"))

		projects, err := svc.ListProjects(r.Context(), category)
		if err != nil {
			WriteProjectError(w, "Failed to fetch projects", err)
			return
		}
		if projects == nil {
			projects = []model.ProjectView{}
		}

		RespondJSON(w, http.StatusOK, ListProjectsResponse{Count: len(projects), Projects: projects})
		logger.Debugf(r.Context(), "listed %d projects (category %q)", len(projects), category)
	}
}
