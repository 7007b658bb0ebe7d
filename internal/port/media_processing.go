package port

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
)

// ImageCompressor re-encodes images to a bounded size. It never fails: on any
// error the original bytes are returned.
type ImageCompressor interface {
	Compress(data []byte, contentType string, isCover bool) model.ProcessedAsset
}

// VideoTranscoder re-encodes videos with a fixed low-bitrate profile.
type VideoTranscoder interface {
	Transcode(ctx context.Context, data []byte) ([]byte, error)
}
