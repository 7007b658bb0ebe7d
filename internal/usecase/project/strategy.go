package project

import (
	"context"
	"errors"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

type Strategy string

const (
	StrategyStream  Strategy = "stream"
	StrategySigned  Strategy = "signed"
	StrategyChunked Strategy = "chunked"
)

// SelectStrategy picks the upload path for an asset of the given final size:
//
//	image (any role)            -> stream
//	video <= chunkSize          -> signed when enabled, stream otherwise
//	video  > chunkSize          -> chunked
func SelectStrategy(isVideo bool, size, chunkSize int64, signedEnabled bool) Strategy {
	if !isVideo {
		return StrategyStream
	}
	if size > chunkSize {
		return StrategyChunked
	}
	if signedEnabled {
		return StrategySigned
	}
	return StrategyStream
}

// upload sends data through the selected strategy. A signed upload that reports
// ErrStrategyUnavailable falls back to a streamed upload.
func upload(ctx context.Context, host port.MediaHost, s Strategy, data []byte, opts port.UploadOptions) (model.RemoteAsset, error) {
	switch s {
	case StrategyChunked:
		return host.UploadChunked(ctx, data, opts)
	case StrategySigned:
		asset, err := host.UploadSigned(ctx, data, opts)
		if errors.Is(err, ErrStrategyUnavailable) {
			logger.Warnf(ctx, "signed upload unavailable for %q, falling back to stream", opts.PublicID)
			return host.UploadStream(ctx, data, opts)
		}
		return asset, err
	default:
		return host.UploadStream(ctx, data, opts)
	}
}
