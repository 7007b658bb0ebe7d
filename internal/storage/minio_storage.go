package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

const DefaultChunkSize int64 = 20 * 1024 * 1024

// minio refuses multipart parts below 5 MiB, except for the last one.
const minPartSize int64 = 5 * 1024 * 1024

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	// PublicURL is the base of the URLs handed to clients. Defaults to the endpoint.
	PublicURL string
	ChunkSize int64
}

type MinioStorage struct {
	client    minioClient
	bucket    string
	publicURL string
	chunkSize int64
}

// minioBackend joins the high level client with the low level multipart calls
// of minio.Core, whose PutObject has a different signature.
type minioBackend struct {
	*minio.Client
	core *minio.Core
}

func (b minioBackend) NewMultipartUpload(ctx context.Context, bucket, object string, opts minio.PutObjectOptions) (string, error) {
	return b.core.NewMultipartUpload(ctx, bucket, object, opts)
}

func (b minioBackend) PutObjectPart(ctx context.Context, bucket, object, uploadID string, partID int, data io.Reader, size int64, opts minio.PutObjectPartOptions) (minio.ObjectPart, error) {
	return b.core.PutObjectPart(ctx, bucket, object, uploadID, partID, data, size, opts)
}

func (b minioBackend) CompleteMultipartUpload(ctx context.Context, bucket, object, uploadID string, parts []minio.CompletePart, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return b.core.CompleteMultipartUpload(ctx, bucket, object, uploadID, parts, opts)
}

func (b minioBackend) AbortMultipartUpload(ctx context.Context, bucket, object, uploadID string) error {
	return b.core.AbortMultipartUpload(ctx, bucket, object, uploadID)
}

func NewMinioStorage(cfg MinioConfig) (*MinioStorage, error) {
	log.Println("initialising minio client...")
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return newMinioStorage(minioBackend{Client: client, core: &minio.Core{Client: client}}, cfg), nil
}

func newMinioStorage(client minioClient, cfg MinioConfig) *MinioStorage {
	public := strings.TrimRight(cfg.PublicURL, "/")
	if public == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		public = scheme + "://" + cfg.Endpoint
	}
	chunk := cfg.ChunkSize
	if chunk < minPartSize {
		chunk = DefaultChunkSize
	}
	return &MinioStorage{client: client, bucket: cfg.Bucket, publicURL: public, chunkSize: chunk}
}

// InitBucket creates the bucket when missing and makes its objects publicly readable.
func (s *MinioStorage) InitBucket(ctx context.Context) error {
	ok, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return mapMinioErr(err)
	}
	if !ok {
		log.Printf("bucket %q does not exist, creating it...", s.bucket)
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return mapMinioErr(err)
		}
	}
	if err := s.client.SetBucketPolicy(ctx, s.bucket, publicReadPolicy(s.bucket)); err != nil {
		return mapMinioErr(err)
	}
	return nil
}

func (s *MinioStorage) Ping(ctx context.Context) error {
	_, err := s.client.BucketExists(ctx, s.bucket)
	return mapMinioErr(err)
}

func (s *MinioStorage) UploadStream(ctx context.Context, data []byte, opts port.UploadOptions) (model.RemoteAsset, error) {
	key := objectKey(opts)
	log.Printf("saving file %q into bucket %q...", key, s.bucket)

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: opts.ContentType,
	})
	if err != nil {
		return model.RemoteAsset{}, mapUploadErr(err)
	}
	return s.asset(key, opts), nil
}

// UploadChunked sends data as parts of chunkSize bytes. Any failing part aborts
// the whole multipart upload.
func (s *MinioStorage) UploadChunked(ctx context.Context, data []byte, opts port.UploadOptions) (model.RemoteAsset, error) {
	key := objectKey(opts)
	log.Printf("saving file %q into bucket %q in %d byte parts...", key, s.bucket, s.chunkSize)

	uploadID, err := s.client.NewMultipartUpload(ctx, s.bucket, key, minio.PutObjectOptions{ContentType: opts.ContentType})
	if err != nil {
		return model.RemoteAsset{}, mapUploadErr(err)
	}

	var parts []minio.CompletePart
	for i, off := 1, int64(0); off < int64(len(data)) || i == 1; i++ {
		end := min(off+s.chunkSize, int64(len(data)))
		chunk := data[off:end]
		part, err := s.client.PutObjectPart(ctx, s.bucket, key, uploadID, i, bytes.NewReader(chunk), int64(len(chunk)), minio.PutObjectPartOptions{})
		if err != nil {
			s.abort(ctx, key, uploadID)
			return model.RemoteAsset{}, mapUploadErr(fmt.Errorf("part %d: %w", i, err))
		}
		parts = append(parts, minio.CompletePart{PartNumber: i, ETag: part.ETag})
		off = end
	}

	if _, err := s.client.CompleteMultipartUpload(ctx, s.bucket, key, uploadID, parts, minio.PutObjectOptions{ContentType: opts.ContentType}); err != nil {
		s.abort(ctx, key, uploadID)
		return model.RemoteAsset{}, mapUploadErr(err)
	}
	return s.asset(key, opts), nil
}

func (s *MinioStorage) abort(ctx context.Context, key, uploadID string) {
	if err := s.client.AbortMultipartUpload(context.WithoutCancel(ctx), s.bucket, key, uploadID); err != nil {
		log.Printf("failed to abort multipart upload %q of %q: %v", uploadID, key, err)
	}
}

func (s *MinioStorage) asset(key string, opts port.UploadOptions) model.RemoteAsset {
	return model.RemoteAsset{
		URL:    s.publicURL + "/" + s.bucket + "/" + key,
		Format: formatOf(opts.ContentType),
	}
}

var extensions = map[string]string{
	"image/jpeg":       "jpg",
	"image/jpg":        "jpg",
	"image/png":        "png",
	"image/gif":        "gif",
	"image/webp":       "webp",
	"image/svg+xml":    "svg",
	"video/mp4":        "mp4",
	"video/quicktime":  "mov",
	"video/x-msvideo":  "avi",
	"video/x-matroska": "mkv",
}

func formatOf(contentType string) string {
	return extensions[contentType]
}

func objectKey(opts port.UploadOptions) string {
	name := opts.PublicID
	if ext := formatOf(opts.ContentType); ext != "" {
		name += "." + ext
	}
	return path.Join(opts.Folder, name)
}

func publicReadPolicy(bucket string) string {
	return fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, bucket)
}
