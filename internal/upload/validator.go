// Package upload reads multipart project forms, enforcing the content type
// allow-list and size ceilings while the body is streamed.
package upload

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/project"
)

const (
	DefaultMaxFileBytes = 100 * 1024 * 1024 // 100 MB
	MaxTextBytes        = 1 << 20           // 1 MB over all text fields
)

var allowedTypes = map[string]bool{
	"image/jpeg":       true,
	"image/jpg":        true,
	"image/png":        true,
	"image/gif":        true,
	"image/webp":       true,
	"image/svg+xml":    true,
	"video/mp4":        true,
	"video/quicktime":  true,
	"video/x-msvideo":  true,
	"video/x-matroska": true,
}

type fileField struct {
	role      model.Role
	max       int
	imageOnly bool
}

var fileFields = map[string]fileField{
	"coverImage": {role: model.RoleCover, max: 1, imageOnly: true},
	"images":     {role: model.RoleGallery, max: 15, imageOnly: true},
	"media":      {role: model.RoleMedia, max: 1},
}

func IsAllowed(contentType string) bool {
	return allowedTypes[contentType]
}

// Validate checks a single file against the allow-list and the size ceiling.
func Validate(contentType string, size, maxBytes int64) error {
	if !IsAllowed(contentType) {
		return project.NewValidationError("File type not allowed: %s", contentType)
	}
	if size > maxBytes {
		return project.NewValidationError("File size too large. Maximum %dMB allowed.", maxBytes/(1024*1024))
	}
	return nil
}

// Form is a parsed project form. Text fields absent from the request are
// absent from Fields.
type Form struct {
	Fields map[string]string
	Files  model.FileGroups
}

// Value returns the submitted value of a text field, or nil when the field
// was not part of the request.
func (f *Form) Value(name string) *string {
	v, ok := f.Fields[name]
	if !ok {
		return nil
	}
	return &v
}

func baseType(header string) string {
	if header == "" {
		return "application/octet-stream"
	}
	mt, _, err := mime.ParseMediaType(header)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(header))
	}
	return mt
}

// Parse streams the multipart body of r. Every part is checked against the
// allow-list before it is read, and read through a limit of maxFileBytes+1:
// the first offending part stops parsing, the remainder of the body is never read.
func Parse(r *http.Request, maxFileBytes int64) (*Form, error) {
	if maxFileBytes <= 0 {
		maxFileBytes = DefaultMaxFileBytes
	}
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, project.NewValidationError("Request must be multipart/form-data")
	}

	form := &Form{Fields: map[string]string{}, Files: model.FileGroups{}}
	textLeft := int64(MaxTextBytes)

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, project.NewValidationError("Malformed multipart body")
		}

		name := part.FormName()
		spec, isFile := fileFields[name]
		switch {
		case name == "":
			continue
		case !isFile && part.FileName() != "":
			return nil, project.NewValidationError("Unexpected file field: %s", name)
		case !isFile:
			b, err := io.ReadAll(io.LimitReader(part, textLeft+1))
			if err != nil {
				return nil, project.NewValidationError("Malformed multipart body")
			}
			textLeft -= int64(len(b))
			if textLeft < 0 {
				return nil, project.NewValidationError("Form fields too large")
			}
			form.Fields[name] = string(b)
			continue
		}

		if grp, _ := form.Files.Get(spec.role); len(grp.Files) >= spec.max {
			return nil, project.NewValidationError("Too many files for %s. Maximum %d allowed.", name, spec.max)
		}

		ct := baseType(part.Header.Get("Content-Type"))
		if err := Validate(ct, 0, maxFileBytes); err != nil {
			return nil, err
		}
		if spec.imageOnly && !strings.HasPrefix(ct, "image/") {
			return nil, project.NewValidationError("File type not allowed for %s: %s", name, ct)
		}

		data, err := io.ReadAll(io.LimitReader(part, maxFileBytes+1))
		if err != nil {
			return nil, project.NewValidationError("Malformed multipart body")
		}
		if err := Validate(ct, int64(len(data)), maxFileBytes); err != nil {
			return nil, err
		}

		form.Files.Add(model.UploadCandidate{
			Filename:    part.FileName(),
			ContentType: ct,
			Size:        int64(len(data)),
			Role:        spec.role,
			Data:        data,
		})
	}
	return form, nil
}
