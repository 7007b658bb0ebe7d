package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/project"
)

type mockMinio struct {
	bucketExistsFn    func(ctx context.Context, bucketName string) (bool, error)
	makeBucketFn      func(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	setBucketPolicyFn func(ctx context.Context, bucketName, policy string) error
	putObjectFn       func(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	newMultipartFn    func(ctx context.Context, bucket, object string, opts minio.PutObjectOptions) (string, error)
	putPartFn         func(ctx context.Context, bucket, object, uploadID string, partID int, data io.Reader, size int64, opts minio.PutObjectPartOptions) (minio.ObjectPart, error)
	completeFn        func(ctx context.Context, bucket, object, uploadID string, parts []minio.CompletePart, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	abortFn           func(ctx context.Context, bucket, object, uploadID string) error
}

func (m *mockMinio) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return m.bucketExistsFn(ctx, bucketName)
}
func (m *mockMinio) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return m.makeBucketFn(ctx, bucketName, opts)
}
func (m *mockMinio) SetBucketPolicy(ctx context.Context, bucketName, policy string) error {
	if m.setBucketPolicyFn == nil {
		return nil
	}
	return m.setBucketPolicyFn(ctx, bucketName, policy)
}
func (m *mockMinio) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return m.putObjectFn(ctx, bucketName, objectName, reader, objectSize, opts)
}
func (m *mockMinio) NewMultipartUpload(ctx context.Context, bucket, object string, opts minio.PutObjectOptions) (string, error) {
	return m.newMultipartFn(ctx, bucket, object, opts)
}
func (m *mockMinio) PutObjectPart(ctx context.Context, bucket, object, uploadID string, partID int, data io.Reader, size int64, opts minio.PutObjectPartOptions) (minio.ObjectPart, error) {
	return m.putPartFn(ctx, bucket, object, uploadID, partID, data, size, opts)
}
func (m *mockMinio) CompleteMultipartUpload(ctx context.Context, bucket, object, uploadID string, parts []minio.CompletePart, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return m.completeFn(ctx, bucket, object, uploadID, parts, opts)
}
func (m *mockMinio) AbortMultipartUpload(ctx context.Context, bucket, object, uploadID string) error {
	return m.abortFn(ctx, bucket, object, uploadID)
}

func makeStorage(mock *mockMinio, chunk int64) *MinioStorage {
	return newMinioStorage(mock, MinioConfig{
		Endpoint:  "minio:9000",
		Bucket:    "portfolio",
		PublicURL: "https://cdn.example.com/",
		ChunkSize: chunk,
	})
}

func TestInitBucket(t *testing.T) {
	tests := []struct {
		name           string
		exists         bool
		existsErr      error
		makeErr        error
		policyErr      error
		wantMakeCalled bool
		wantErr        error
	}{
		{
			name:   "bucket exists, no create",
			exists: true,
		},
		{
			name:           "bucket does not exist, create succeeds",
			exists:         false,
			wantMakeCalled: true,
		},
		{
			name:      "BucketExists error bubbles up",
			existsErr: errors.New("exist fail"),
			wantErr:   ErrInternal,
		},
		{
			name:           "MakeBucket error bubbles up",
			makeErr:        minio.ErrorResponse{Code: "AccessDenied"},
			wantMakeCalled: true,
			wantErr:        ErrUnauthorized,
		},
		{
			name:      "policy error bubbles up",
			exists:    true,
			policyErr: minio.ErrorResponse{Code: "NoSuchBucket"},
			wantErr:   ErrBucketNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			makeCalled := false
			var gotPolicy string

			mock := &mockMinio{
				bucketExistsFn: func(ctx context.Context, bucketName string) (bool, error) {
					return tc.exists, tc.existsErr
				},
				makeBucketFn: func(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
					makeCalled = true
					return tc.makeErr
				},
				setBucketPolicyFn: func(ctx context.Context, bucketName, policy string) error {
					gotPolicy = policy
					return tc.policyErr
				},
			}

			err := makeStorage(mock, 0).InitBucket(context.Background())

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected error %v, got %v", tc.wantErr, err)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !strings.Contains(gotPolicy, "arn:aws:s3:::portfolio/*") {
					t.Errorf("unexpected policy %q", gotPolicy)
				}
			}
			if makeCalled != tc.wantMakeCalled {
				t.Errorf("MakeBucket called = %v; want %v", makeCalled, tc.wantMakeCalled)
			}
		})
	}
}

func TestUploadStream(t *testing.T) {
	var gotKey, gotCT string
	var gotData []byte
	mock := &mockMinio{
		putObjectFn: func(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
			gotKey, gotCT = objectName, opts.ContentType
			gotData, _ = io.ReadAll(reader)
			if objectSize != int64(len(gotData)) {
				t.Errorf("size = %d, read %d", objectSize, len(gotData))
			}
			return minio.UploadInfo{}, nil
		},
	}

	asset, err := makeStorage(mock, 0).UploadStream(context.Background(), []byte("webp!"), port.UploadOptions{
		Folder: "behance-portfolio", PublicID: "cover-1", ContentType: "image/webp", ResourceKind: model.ResourceImage,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "behance-portfolio/cover-1.webp" || gotCT != "image/webp" || string(gotData) != "webp!" {
		t.Errorf("unexpected put: key=%q ct=%q data=%q", gotKey, gotCT, gotData)
	}
	if asset.URL != "https://cdn.example.com/portfolio/behance-portfolio/cover-1.webp" {
		t.Errorf("URL = %q", asset.URL)
	}
	if asset.Format != "webp" || asset.Duration != nil {
		t.Errorf("unexpected asset %+v", asset)
	}
}

func TestUploadStream_ErrorClassified(t *testing.T) {
	mock := &mockMinio{
		putObjectFn: func(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
			return minio.UploadInfo{}, errors.New("write tcp: connection reset by peer")
		},
	}
	_, err := makeStorage(mock, 0).UploadStream(context.Background(), []byte("x"), port.UploadOptions{PublicID: "a"})
	var upErr *project.UploadError
	if !errors.As(err, &upErr) || upErr.Kind != project.UploadConnectionReset {
		t.Fatalf("expected connection-reset UploadError, got %v", err)
	}
}

func TestUploadChunked(t *testing.T) {
	const chunk = minPartSize
	data := make([]byte, 2*chunk+10)

	var sizes []int64
	var completed []minio.CompletePart
	aborted := false
	mock := &mockMinio{
		newMultipartFn: func(ctx context.Context, bucket, object string, opts minio.PutObjectOptions) (string, error) {
			if object != "f/media-1.mp4" {
				t.Errorf("object = %q", object)
			}
			return "up-1", nil
		},
		putPartFn: func(ctx context.Context, bucket, object, uploadID string, partID int, r io.Reader, size int64, opts minio.PutObjectPartOptions) (minio.ObjectPart, error) {
			if partID != len(sizes)+1 {
				t.Errorf("part %d sent out of order", partID)
			}
			sizes = append(sizes, size)
			return minio.ObjectPart{PartNumber: partID, ETag: "etag"}, nil
		},
		completeFn: func(ctx context.Context, bucket, object, uploadID string, parts []minio.CompletePart, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
			completed = parts
			return minio.UploadInfo{}, nil
		},
		abortFn: func(ctx context.Context, bucket, object, uploadID string) error {
			aborted = true
			return nil
		},
	}

	asset, err := makeStorage(mock, chunk).UploadChunked(context.Background(), data, port.UploadOptions{
		Folder: "f", PublicID: "media-1", ContentType: "video/mp4",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sizes) != 3 || sizes[0] != chunk || sizes[1] != chunk || sizes[2] != 10 {
		t.Errorf("part sizes = %v", sizes)
	}
	if len(completed) != 3 || completed[2].PartNumber != 3 {
		t.Errorf("completed parts = %+v", completed)
	}
	if aborted {
		t.Error("abort must not be called on success")
	}
	if asset.Format != "mp4" {
		t.Errorf("format = %q", asset.Format)
	}
}

func TestUploadChunked_PartFailureAborts(t *testing.T) {
	aborted := ""
	completeCalled := false
	mock := &mockMinio{
		newMultipartFn: func(ctx context.Context, bucket, object string, opts minio.PutObjectOptions) (string, error) {
			return "up-2", nil
		},
		putPartFn: func(ctx context.Context, bucket, object, uploadID string, partID int, r io.Reader, size int64, opts minio.PutObjectPartOptions) (minio.ObjectPart, error) {
			if partID == 2 {
				return minio.ObjectPart{}, context.DeadlineExceeded
			}
			return minio.ObjectPart{PartNumber: partID, ETag: "e"}, nil
		},
		completeFn: func(ctx context.Context, bucket, object, uploadID string, parts []minio.CompletePart, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
			completeCalled = true
			return minio.UploadInfo{}, nil
		},
		abortFn: func(ctx context.Context, bucket, object, uploadID string) error {
			aborted = uploadID
			return nil
		},
	}

	_, err := makeStorage(mock, minPartSize).UploadChunked(context.Background(), make([]byte, 3*minPartSize), port.UploadOptions{PublicID: "m"})
	var upErr *project.UploadError
	if !errors.As(err, &upErr) || upErr.Kind != project.UploadGatewayTimeout {
		t.Fatalf("expected gateway-timeout UploadError, got %v", err)
	}
	if aborted != "up-2" {
		t.Errorf("expected upload up-2 aborted, got %q", aborted)
	}
	if completeCalled {
		t.Error("complete must not be called after a failed part")
	}
}

func TestNewMinioStorage_Defaults(t *testing.T) {
	s := newMinioStorage(&mockMinio{}, MinioConfig{Endpoint: "minio:9000", Bucket: "b", UseSSL: true, ChunkSize: 1})
	if s.publicURL != "https://minio:9000" {
		t.Errorf("publicURL = %q", s.publicURL)
	}
	if s.chunkSize != DefaultChunkSize {
		t.Errorf("chunkSize = %d", s.chunkSize)
	}
}

func TestObjectKey(t *testing.T) {
	tests := []struct {
		opts port.UploadOptions
		want string
	}{
		{port.UploadOptions{Folder: "f", PublicID: "cover-1", ContentType: "image/webp"}, "f/cover-1.webp"},
		{port.UploadOptions{Folder: "f", PublicID: "media-1", ContentType: "video/quicktime"}, "f/media-1.mov"},
		{port.UploadOptions{PublicID: "x", ContentType: "application/octet-stream"}, "x"},
	}
	for _, tt := range tests {
		if got := objectKey(tt.opts); got != tt.want {
			t.Errorf("objectKey(%+v) = %q, want %q", tt.opts, got, tt.want)
		}
	}
}
