package port

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
)

// UploadOptions describes where and how an asset is stored on the media host.
type UploadOptions struct {
	Folder       string
	PublicID     string
	ResourceKind model.ResourceKind
	ContentType  string
	// Eager lists host-side derivative transformations requested at upload time.
	// Only honoured by the signed direct API.
	Eager string
}

// MediaHost uploads binary assets and returns their public location.
type MediaHost interface {
	// UploadStream sends the whole payload in a single streamed request.
	UploadStream(ctx context.Context, data []byte, opts UploadOptions) (model.RemoteAsset, error)
	// UploadSigned posts the payload to the signed direct-upload API.
	UploadSigned(ctx context.Context, data []byte, opts UploadOptions) (model.RemoteAsset, error)
	// UploadChunked sends the payload as fixed-size parts of one multipart upload.
	UploadChunked(ctx context.Context, data []byte, opts UploadOptions) (model.RemoteAsset, error)
}
