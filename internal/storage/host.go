package storage

import (
	"context"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/project"
)

const DefaultHostTimeout = 10 * time.Minute

// Host serves every upload strategy: streamed and chunked uploads go to
// MinIO, signed uploads to the direct API when one is configured.
type Host struct {
	minio   *MinioStorage
	signed  *SignedClient
	timeout time.Duration
}

// compile-time check: *Host must satisfy port.MediaHost
var _ port.MediaHost = (*Host)(nil)

// NewHost builds the media host. signed may be nil.
func NewHost(m *MinioStorage, signed *SignedClient, timeout time.Duration) *Host {
	if timeout <= 0 {
		timeout = DefaultHostTimeout
	}
	return &Host{minio: m, signed: signed, timeout: timeout}
}

func (h *Host) UploadStream(ctx context.Context, data []byte, opts port.UploadOptions) (model.RemoteAsset, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	return h.minio.UploadStream(ctx, data, opts)
}

func (h *Host) UploadSigned(ctx context.Context, data []byte, opts port.UploadOptions) (model.RemoteAsset, error) {
	if h.signed == nil {
		return model.RemoteAsset{}, project.ErrStrategyUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	return h.signed.Upload(ctx, data, opts)
}

func (h *Host) UploadChunked(ctx context.Context, data []byte, opts port.UploadOptions) (model.RemoteAsset, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	return h.minio.UploadChunked(ctx, data, opts)
}

func (h *Host) Ping(ctx context.Context) error {
	return h.minio.Ping(ctx)
}
