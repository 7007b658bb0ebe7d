package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
	"github.com/fhuszti/portfolio-ms-go/test/testutil"
)

func TestProjectRepository_Lifecycle(t *testing.T) {
	testDB, err := testutil.SetupTestDB()
	if err != nil {
		t.Fatalf("setup DB: %v", err)
	}
	defer func() { _ = testDB.Cleanup() }()

	ctx := context.Background()
	repo := mariadb.NewProjectRepository(testDB.DB)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	dur := 42.5
	projects := []*model.Project{
		{ID: uuid.NewUUID(), Title: "oldest", Category: model.CategoryPhotography, CoverImage: "c1", Images: model.Images{"a"}, CreatedAt: base, UpdatedAt: base},
		{ID: uuid.NewUUID(), Title: "middle", Category: model.CategoryVideoEdits, CoverImage: "c2", Images: model.Images{},
			Media: &model.Media{URL: "v", Type: model.MediaTypeVideo, Duration: &dur, Format: "mp4"}, CreatedAt: base.Add(time.Hour), UpdatedAt: base.Add(time.Hour)},
		{ID: uuid.NewUUID(), Title: "newest", Category: model.CategoryPhotography, CoverImage: "c3", Images: model.Images{"x", "y"}, Likes: 7, CreatedAt: base.Add(2 * time.Hour), UpdatedAt: base.Add(2 * time.Hour)},
	}
	for _, p := range projects {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create(%s): %v", p.Title, err)
		}
	}

	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 || all[0].Title != "newest" || all[2].Title != "oldest" {
		t.Fatalf("expected newest first, got %v", titles(all))
	}

	photos, err := repo.List(ctx, model.CategoryPhotography)
	if err != nil {
		t.Fatalf("List(photography): %v", err)
	}
	if len(photos) != 2 || photos[0].Title != "newest" || photos[1].Title != "oldest" {
		t.Errorf("unexpected photography list %v", titles(photos))
	}

	got, err := repo.GetByID(ctx, projects[1].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Media == nil || got.Media.URL != "v" || got.Media.Duration == nil || *got.Media.Duration != dur {
		t.Errorf("media not round-tripped: %+v", got.Media)
	}
	if got.Images == nil || len(got.Images) != 0 {
		t.Errorf("expected empty images, got %#v", got.Images)
	}

	got.Description = "updated"
	got.Media = nil
	got.UpdatedAt = base.Add(3 * time.Hour)
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	after, err := repo.GetByID(ctx, got.ID)
	if err != nil {
		t.Fatalf("GetByID after update: %v", err)
	}
	if after.Description != "updated" || after.Media != nil || !after.UpdatedAt.Equal(got.UpdatedAt) {
		t.Errorf("update not persisted: %+v", after)
	}

	if err := repo.Delete(ctx, got.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, got.ID); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, got.ID); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func titles(ps []*model.Project) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Title)
	}
	return out
}
