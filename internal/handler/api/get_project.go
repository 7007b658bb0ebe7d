package api

import (
	"net/http"

	"github.com/fhuszti/portfolio-ms-go/internal/api_context"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

func GetProjectHandler(renderer port.HTTPRenderer, svc port.ProjectGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		raw, etag, err := renderer.RenderGetProject(r.Context(), svc, id)
		if err != nil {
			WriteProjectError(w, "Failed to fetch project", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=300")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			logger.Debugf(r.Context(), "returning cached project #%s", id)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		logger.Debugf(r.Context(), "returned details for project #%s", id)
	}
}
