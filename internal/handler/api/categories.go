package api

import (
	"net/http"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
)

func CategoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		RespondJSON(w, http.StatusOK, map[string]any{"categories": model.Categories})
	}
}
