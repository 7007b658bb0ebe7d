package storage

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"syscall"

	"github.com/fhuszti/portfolio-ms-go/internal/usecase/project"
	"github.com/minio/minio-go/v7"
)

var (
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")
)

// statusError is a non-2xx answer of the signed upload API.
type statusError struct {
	Status int
	Body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("media host answered %d: %s", e.Status, e.Body)
}

func mapMinioErr(err error) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchBucket":
		return ErrBucketNotFound
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return ErrUnauthorized
	default:
		// catch everything else
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// mapUploadErr classifies a failed upload into the media host error taxonomy.
func mapUploadErr(err error) error {
	if err == nil {
		return nil
	}
	var upErr *project.UploadError
	if errors.As(err, &upErr) {
		return err
	}
	return &project.UploadError{Kind: classify(err), Err: err}
}

func classify(err error) project.UploadErrorKind {
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EPIPE) {
		return project.UploadConnectionReset
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "connection reset") || strings.Contains(msg, "broken pipe") {
		return project.UploadConnectionReset
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return project.UploadGatewayTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return project.UploadGatewayTimeout
	}
	var stErr *statusError
	if errors.As(err, &stErr) && stErr.Status == http.StatusGatewayTimeout {
		return project.UploadGatewayTimeout
	}
	resp := minio.ToErrorResponse(err)
	if resp.StatusCode == http.StatusGatewayTimeout || resp.Code == "RequestTimeout" {
		return project.UploadGatewayTimeout
	}
	return project.UploadFailed
}
