package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/fhuszti/portfolio-ms-go/internal/storage"
)

// SetupTestBucket creates a fresh public bucket and returns a storage bound to
// it. Every object and the bucket itself are removed when the test ends.
func SetupTestBucket(t *testing.T, mi *MinIOContainerInfo, chunkSize int64) *storage.MinioStorage {
	t.Helper()
	ctx := context.Background()

	bucket := fmt.Sprintf("test-%d", time.Now().UnixNano())

	strg, err := storage.NewMinioStorage(storage.MinioConfig{
		Endpoint:  mi.Endpoint,
		AccessKey: mi.AccessKey,
		SecretKey: mi.SecretKey,
		Bucket:    bucket,
		ChunkSize: chunkSize,
	})
	if err != nil {
		t.Fatalf("could not create storage: %v", err)
	}
	if err := strg.InitBucket(ctx); err != nil {
		t.Fatalf("could not create bucket %q: %v", bucket, err)
	}

	t.Cleanup(func() {
		for obj := range mi.Client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
			if obj.Err != nil {
				continue
			}
			_ = mi.Client.RemoveObject(ctx, bucket, obj.Key, minio.RemoveObjectOptions{})
		}
		if err := mi.Client.RemoveBucket(ctx, bucket); err != nil {
			t.Logf("could not remove bucket %q: %v", bucket, err)
		}
	})
	return strg
}
