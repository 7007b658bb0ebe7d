package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fhuszti/portfolio-ms-go/internal/api_context"
	"github.com/fhuszti/portfolio-ms-go/internal/mock"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/project"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

func withID(r *http.Request, id uuid.UUID) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), api_context.IDKey, id))
}

func TestUpdateProjectHandler(t *testing.T) {
	id := uuid.NewUUID()
	p := storedProject()
	p.ID = id

	t.Run("only submitted fields are forwarded", func(t *testing.T) {
		svc := &mock.MockProjectUpdater{Out: p}
		req := withID(multipartRequest(t, http.MethodPut, "/api/projects/"+id.String(), map[string]string{"description": "new"}), id)
		rec := httptest.NewRecorder()
		UpdateProjectHandler(svc, 0)(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
		}
		if svc.In.ID != id || svc.In.Title != nil || svc.In.Category != nil {
			t.Errorf("unexpected input %+v", svc.In)
		}
		if svc.In.Description == nil || *svc.In.Description != "new" {
			t.Errorf("description = %v", svc.In.Description)
		}
		if _, ok := svc.In.Files.Get(model.RoleCover); ok {
			t.Error("no cover was submitted")
		}
		if !strings.Contains(rec.Body.String(), "Project updated successfully") {
			t.Errorf("body = %s", rec.Body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		svc := &mock.MockProjectUpdater{Err: project.ErrProjectNotFound}
		req := withID(multipartRequest(t, http.MethodPut, "/api/projects/x", map[string]string{"title": "t"}), id)
		rec := httptest.NewRecorder()
		UpdateProjectHandler(svc, 0)(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d", rec.Code)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		svc := &mock.MockProjectUpdater{}
		rec := httptest.NewRecorder()
		UpdateProjectHandler(svc, 0)(rec, multipartRequest(t, http.MethodPut, "/api/projects/x", nil))
		if rec.Code != http.StatusBadRequest || svc.Called {
			t.Errorf("status = %d, called = %v", rec.Code, svc.Called)
		}
	})
}

func TestListProjectsHandler(t *testing.T) {
	p := storedProject()
	tests := []struct {
		name       string
		url        string
		out        []model.ProjectView
		err        error
		wantStatus int
		wantCount  int
		wantCat    string
	}{
		{"all", "/api/projects", []model.ProjectView{p.View()}, nil, http.StatusOK, 1, ""},
		{"filtered", "/api/projects?category=photography", nil, nil, http.StatusOK, 0, "photography"},
		{"invalid category", "/api/projects?category=cooking", nil, project.NewValidationError("Invalid category"), http.StatusBadRequest, 0, "cooking"},
		{"store down", "/api/projects", nil, errors.New("db"), http.StatusInternalServerError, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mock.MockProjectLister{Out: tt.out, Err: tt.err}
			rec := httptest.NewRecorder()
			ListProjectsHandler(svc)(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if svc.GotCategory != tt.wantCat {
				t.Errorf("category = %q, want %q", svc.GotCategory, tt.wantCat)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var body struct {
				Count    int               `json:"count"`
				Projects []json.RawMessage `json:"projects"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Count != tt.wantCount || len(body.Projects) != tt.wantCount || body.Projects == nil {
				t.Errorf("unexpected body %+v", body)
			}
		})
	}
}

func TestGetProjectHandler(t *testing.T) {
	id := uuid.NewUUID()
	raw := []byte(`{"_id":"` + id.String() + `"}`)

	tests := []struct {
		name        string
		renderErr   error
		ifNoneMatch string
		wantStatus  int
		wantBody    bool
	}{
		{"ok", nil, "", http.StatusOK, true},
		{"not modified", nil, `"etag1"`, http.StatusNotModified, false},
		{"stale etag", nil, `"other"`, http.StatusOK, true},
		{"not found", project.ErrProjectNotFound, "", http.StatusNotFound, false},
		{"failure", errors.New("boom"), "", http.StatusInternalServerError, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer := &mock.MockHTTPRenderer{Data: raw, Etag: `"etag1"`, Err: tt.renderErr}
			req := withID(httptest.NewRequest(http.MethodGet, "/api/projects/"+id.String(), nil), id)
			if tt.ifNoneMatch != "" {
				req.Header.Set("If-None-Match", tt.ifNoneMatch)
			}
			rec := httptest.NewRecorder()
			GetProjectHandler(renderer, &mock.MockProjectGetter{})(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.renderErr == nil && rec.Header().Get("ETag") != `"etag1"` {
				t.Errorf("ETag = %q", rec.Header().Get("ETag"))
			}
			if tt.wantBody && rec.Body.String() != string(raw) {
				t.Errorf("body = %s", rec.Body)
			}
			if renderer.ID != id {
				t.Errorf("rendered id %s, want %s", renderer.ID, id)
			}
		})
	}
}

func TestDeleteProjectHandler(t *testing.T) {
	id := uuid.NewUUID()
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"deleted", nil, http.StatusOK},
		{"unknown id", project.ErrProjectNotFound, http.StatusNotFound},
		{"store down", errors.New("db"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mock.MockProjectDeleter{Err: tt.err}
			rec := httptest.NewRecorder()
			DeleteProjectHandler(svc)(rec, withID(httptest.NewRequest(http.MethodDelete, "/api/projects/x", nil), id))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if svc.ID != id {
				t.Errorf("deleted %s, want %s", svc.ID, id)
			}
		})
	}
}
