package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

// HostCall records one upload received by MediaHost.
type HostCall struct {
	Strategy string
	Size     int
	Opts     port.UploadOptions
}

// MediaHost implements port.MediaHost for tests. It is safe for concurrent use.
// By default every upload succeeds with the URL https://host.test/<folder>/<public id>.
type MediaHost struct {
	mu sync.Mutex

	// OnUpload, when set, replaces the default behaviour for every strategy.
	OnUpload func(ctx context.Context, strategy string, data []byte, opts port.UploadOptions) (model.RemoteAsset, error)

	StreamErr  error
	SignedErr  error
	ChunkedErr error

	Calls []HostCall
}

func (m *MediaHost) record(strategy string, data []byte, opts port.UploadOptions) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, HostCall{Strategy: strategy, Size: len(data), Opts: opts})
}

func (m *MediaHost) do(ctx context.Context, strategy string, data []byte, opts port.UploadOptions, err error) (model.RemoteAsset, error) {
	m.record(strategy, data, opts)
	if m.OnUpload != nil {
		return m.OnUpload(ctx, strategy, data, opts)
	}
	if err != nil {
		return model.RemoteAsset{}, err
	}
	return model.RemoteAsset{URL: fmt.Sprintf("https://host.test/%s/%s", opts.Folder, opts.PublicID)}, nil
}

func (m *MediaHost) UploadStream(ctx context.Context, data []byte, opts port.UploadOptions) (model.RemoteAsset, error) {
	return m.do(ctx, "stream", data, opts, m.StreamErr)
}

func (m *MediaHost) UploadSigned(ctx context.Context, data []byte, opts port.UploadOptions) (model.RemoteAsset, error) {
	return m.do(ctx, "signed", data, opts, m.SignedErr)
}

func (m *MediaHost) UploadChunked(ctx context.Context, data []byte, opts port.UploadOptions) (model.RemoteAsset, error) {
	return m.do(ctx, "chunked", data, opts, m.ChunkedErr)
}

// Strategies returns the strategy of every recorded call in call order.
func (m *MediaHost) Strategies() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		out[i] = c.Strategy
	}
	return out
}

func (m *MediaHost) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
