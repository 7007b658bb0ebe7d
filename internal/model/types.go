package model

import "strings"

// Role is the slot an uploaded file occupies in a project.
type Role string

const (
	RoleCover   Role = "cover"
	RoleGallery Role = "gallery"
	RoleMedia   Role = "media"
)

// ResourceKind guides host-side processing of an upload.
type ResourceKind string

const (
	ResourceImage ResourceKind = "image"
	ResourceVideo ResourceKind = "video"
	ResourceAuto  ResourceKind = "auto"
)

// UploadCandidate is one submitted file before any processing.
type UploadCandidate struct {
	Filename    string
	ContentType string
	Size        int64
	Role        Role
	Data        []byte
}

func (c UploadCandidate) IsVideo() bool {
	return strings.HasPrefix(c.ContentType, "video/")
}

type FileGroup struct {
	Role  Role
	Files []UploadCandidate
}

// FileGroups holds the submitted files keyed by role. A role with no entry
// was not part of the request.
type FileGroups map[Role]FileGroup

// Get returns the group for role and whether it was submitted with at least
// one file.
func (g FileGroups) Get(role Role) (FileGroup, bool) {
	grp, ok := g[role]
	if !ok || len(grp.Files) == 0 {
		return FileGroup{Role: role}, false
	}
	return grp, true
}

func (g FileGroups) Add(c UploadCandidate) {
	grp := g[c.Role]
	grp.Role = c.Role
	grp.Files = append(grp.Files, c)
	g[c.Role] = grp
}

// ProcessedAsset is a file after compression or transcoding, ready for upload.
type ProcessedAsset struct {
	Data        []byte
	ContentType string
	Size        int64
}

// RemoteAsset is the normalized result of a media host upload.
type RemoteAsset struct {
	URL      string
	Duration *float64
	Format   string
}
