package storage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/project"
)

func TestSign(t *testing.T) {
	params := map[string]string{
		"timestamp": "1315060510",
		"public_id": "sample_image",
		"eager":     "w_400,h_300,c_pad|w_260,h_200,c_crop",
		"empty":     "",
	}
	sum := sha1.Sum([]byte("eager=w_400,h_300,c_pad|w_260,h_200,c_crop&public_id=sample_image&timestamp=1315060510abcd"))
	want := hex.EncodeToString(sum[:])

	if got := Sign(params, "abcd"); got != want {
		t.Errorf("Sign = %q, want %q", got, want)
	}
	if Sign(params, "abcd") != Sign(params, "abcd") {
		t.Error("Sign must be deterministic")
	}
}

func newSignedClient(url string) *SignedClient {
	c := NewSignedClient(SignedConfig{BaseURL: url + "/", Cloud: "demo", APIKey: "key", APISecret: "secret"}, nil)
	c.now = func() time.Time { return time.Unix(1700000000, 0) }
	return c
}

func TestSignedUpload_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/demo/video/upload" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse form: %v", err)
			return
		}
		want := Sign(map[string]string{
			"folder": "behance-portfolio", "public_id": "media-1", "timestamp": "1700000000",
			"eager": "sp_auto", "eager_async": "true",
		}, "secret")
		if got := r.FormValue("signature"); got != want {
			t.Errorf("signature = %q, want %q", got, want)
		}
		if r.FormValue("api_key") != "key" || r.FormValue("eager_async") != "true" {
			t.Errorf("unexpected form %v", r.MultipartForm.Value)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("missing file part: %v", err)
		}
		_, _ = w.Write([]byte(`{"secure_url":"https://res.example.com/v1/media-1.mp4","duration":12.5,"format":"mp4"}`))
	}))
	defer srv.Close()

	asset, err := newSignedClient(srv.URL).Upload(context.Background(), []byte("video"), port.UploadOptions{
		Folder: "behance-portfolio", PublicID: "media-1", ResourceKind: model.ResourceVideo, Eager: "sp_auto",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asset.URL != "https://res.example.com/v1/media-1.mp4" || asset.Format != "mp4" {
		t.Errorf("unexpected asset %+v", asset)
	}
	if asset.Duration == nil || *asset.Duration != 12.5 {
		t.Errorf("duration = %v", asset.Duration)
	}
}

func TestSignedUpload_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind project.UploadErrorKind
	}{
		{"gateway timeout", http.StatusGatewayTimeout, "<html>timeout</html>", project.UploadGatewayTimeout},
		{"api error", http.StatusBadRequest, `{"error":{"message":"Invalid Signature"}}`, project.UploadFailed},
		{"no url", http.StatusOK, `{"format":"mp4"}`, project.UploadFailed},
		{"bad json", http.StatusOK, `not json`, project.UploadFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newSignedClient(srv.URL).Upload(context.Background(), []byte("v"), port.UploadOptions{PublicID: "m"})
			var upErr *project.UploadError
			if !errors.As(err, &upErr) {
				t.Fatalf("expected UploadError, got %v", err)
			}
			if upErr.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", upErr.Kind, tt.wantKind)
			}
		})
	}
}

func TestHost_SignedUnavailable(t *testing.T) {
	h := NewHost(makeStorage(&mockMinio{}, 0), nil, 0)
	_, err := h.UploadSigned(context.Background(), []byte("v"), port.UploadOptions{})
	if !errors.Is(err, project.ErrStrategyUnavailable) {
		t.Fatalf("expected ErrStrategyUnavailable, got %v", err)
	}
}

func TestHost_CallTimeout(t *testing.T) {
	var deadline time.Time
	mock := &mockMinio{
		putObjectFn: func(ctx context.Context, _, _ string, _ io.Reader, _ int64, _ minio.PutObjectOptions) (minio.UploadInfo, error) {
			deadline, _ = ctx.Deadline()
			return minio.UploadInfo{}, nil
		},
	}
	h := NewHost(makeStorage(mock, 0), nil, time.Minute)
	if _, err := h.UploadStream(context.Background(), []byte("x"), port.UploadOptions{PublicID: "a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d := time.Until(deadline); d <= 0 || d > time.Minute {
		t.Errorf("per call deadline not applied: %v", d)
	}
}
