package model

import (
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type Category string

const (
	CategoryGraphicDesign Category = "graphic-design"
	CategoryVideoEdits    Category = "video-edits"
	CategoryPhotography   Category = "photography"
)

type CategoryOption struct {
	Value Category `json:"value"`
	Label string   `json:"label"`
}

// Categories lists the accepted project categories in display order.
var Categories = []CategoryOption{
	{Value: CategoryGraphicDesign, Label: "Graphic Design"},
	{Value: CategoryVideoEdits, Label: "Video Edits"},
	{Value: CategoryPhotography, Label: "Photography"},
}

func IsCategory(s string) bool {
	for _, c := range Categories {
		if string(c.Value) == s {
			return true
		}
	}
	return false
}

type Project struct {
	ID          uuid.UUID `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	CoverImage  string    `json:"coverImage"`
	Images      Images    `json:"images"`
	Media       *Media    `json:"media"`
	Likes       int       `json:"likes"`
	Views       int       `json:"views"`
	Comments    int       `json:"comments"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProjectView is the API representation of a project. It carries the
// stored fields plus the URL aliases read by the portfolio frontend.
type ProjectView struct {
	Project
	IDAlias       uuid.UUID `json:"id"`
	CoverImageURL string    `json:"coverImageUrl"`
	ImagesURLs    Images    `json:"imagesUrls"`
	MediaURL      *string   `json:"mediaUrl"`
}

func (p Project) View() ProjectView {
	images := p.Images
	if images == nil {
		images = Images{}
	}
	p.Images = images

	v := ProjectView{
		Project:       p,
		IDAlias:       p.ID,
		CoverImageURL: p.CoverImage,
		ImagesURLs:    images,
	}
	if p.Media != nil {
		url := p.Media.URL
		v.MediaURL = &url
	}
	return v
}
