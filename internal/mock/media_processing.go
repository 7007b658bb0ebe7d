package mock

import (
	"context"
	"sync"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
)

// MockCompressor implements port.ImageCompressor for tests. With no Out set it
// returns the input unchanged.
type MockCompressor struct {
	mu sync.Mutex

	Out     []byte
	MimeOut string

	Calls       int
	CoverCalls  int
	GotMimeType []string
}

func (m *MockCompressor) Compress(data []byte, contentType string, isCover bool) model.ProcessedAsset {
	m.mu.Lock()
	m.Calls++
	if isCover {
		m.CoverCalls++
	}
	m.GotMimeType = append(m.GotMimeType, contentType)
	m.mu.Unlock()

	out, ct := data, contentType
	if m.Out != nil {
		out = m.Out
	}
	if m.MimeOut != "" {
		ct = m.MimeOut
	}
	return model.ProcessedAsset{Data: out, ContentType: ct, Size: int64(len(out))}
}

// MockTranscoder implements port.VideoTranscoder for tests.
type MockTranscoder struct {
	Out []byte
	Err error

	Called bool
	GotLen int
}

func (m *MockTranscoder) Transcode(ctx context.Context, data []byte) ([]byte, error) {
	m.Called = true
	m.GotLen = len(data)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Out, nil
}
