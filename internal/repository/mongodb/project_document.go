package mongodb

import (
	"fmt"
	"time"

	guuid "github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// projectDocument mirrors the field names of the original projects collection.
type projectDocument struct {
	ID          string         `bson:"_id"`
	Title       string         `bson:"title"`
	Description string         `bson:"description"`
	Category    string         `bson:"category"`
	CoverImage  string         `bson:"coverImage"`
	Images      []string       `bson:"images"`
	Media       *mediaDocument `bson:"media,omitempty"`
	Likes       int            `bson:"likes"`
	Views       int            `bson:"views"`
	Comments    int            `bson:"comments"`
	CreatedAt   time.Time      `bson:"createdAt"`
	UpdatedAt   time.Time      `bson:"updatedAt"`
}

type mediaDocument struct {
	URL      string   `bson:"url"`
	Type     string   `bson:"type"`
	Duration *float64 `bson:"duration,omitempty"`
	Format   string   `bson:"format,omitempty"`
}

func toDocument(p *model.Project) projectDocument {
	images := []string(p.Images)
	if images == nil {
		images = []string{}
	}
	doc := projectDocument{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		Category:    string(p.Category),
		CoverImage:  p.CoverImage,
		Images:      images,
		Likes:       p.Likes,
		Views:       p.Views,
		Comments:    p.Comments,
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.UTC(),
	}
	if p.Media != nil {
		doc.Media = &mediaDocument{
			URL:      p.Media.URL,
			Type:     string(p.Media.Type),
			Duration: p.Media.Duration,
			Format:   p.Media.Format,
		}
	}
	return doc
}

func (d projectDocument) toModel() (*model.Project, error) {
	id, err := guuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid project id %q: %w", d.ID, err)
	}
	images := model.Images(d.Images)
	if images == nil {
		images = model.Images{}
	}
	p := &model.Project{
		ID:          uuid.UUID(id),
		Title:       d.Title,
		Description: d.Description,
		Category:    model.Category(d.Category),
		CoverImage:  d.CoverImage,
		Images:      images,
		Likes:       d.Likes,
		Views:       d.Views,
		Comments:    d.Comments,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.Media != nil {
		p.Media = &model.Media{
			URL:      d.Media.URL,
			Type:     model.MediaType(d.Media.Type),
			Duration: d.Media.Duration,
			Format:   d.Media.Format,
		}
	}
	return p, nil
}

// updateDocument lists the fields a project update may change.
func updateDocument(p *model.Project) bson.M {
	doc := toDocument(p)
	set := bson.M{
		"title":       doc.Title,
		"description": doc.Description,
		"category":    doc.Category,
		"coverImage":  doc.CoverImage,
		"images":      doc.Images,
		"updatedAt":   doc.UpdatedAt,
	}
	update := bson.M{"$set": set}
	if doc.Media != nil {
		set["media"] = doc.Media
	} else {
		update["$unset"] = bson.M{"media": ""}
	}
	return update
}

func categoryFilter(category model.Category) bson.M {
	if category == "" {
		return bson.M{}
	}
	return bson.M{"category": string(category)}
}
