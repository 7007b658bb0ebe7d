package project

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrProjectNotFound = errors.New("Project not found")
	// ErrStrategyUnavailable is returned by an upload strategy that is not
	// configured on this deployment.
	ErrStrategyUnavailable = errors.New("upload strategy unavailable")
)

// ValidationError reports input the client must fix.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(format string, a ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, a...)}
}

// TooLargeError reports an asset still above the upload ceiling after processing.
type TooLargeError struct {
	Size int64
	Max  int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("processed media is %d bytes, above the %d bytes limit", e.Size, e.Max)
}

func (e *TooLargeError) Hint() string {
	return fmt.Sprintf("The video is still %.1fMB after compression, above the %dMB limit. Try a shorter or lower-resolution video.",
		float64(e.Size)/(1024*1024), e.Max/(1024*1024))
}

// TimeoutError reports a transcode that exceeded its wall-clock budget.
type TimeoutError struct {
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("video processing timed out after %s", e.After)
}

func (e *TimeoutError) Hint() string {
	return "Video processing took too long. Try a shorter video."
}

// TranscodeError wraps a failure of the external encoder.
type TranscodeError struct {
	Err error
}

func (e *TranscodeError) Error() string { return fmt.Sprintf("video processing failed: %v", e.Err) }
func (e *TranscodeError) Unwrap() error { return e.Err }
func (e *TranscodeError) Hint() string {
	return "The video could not be processed. Check the file and try again."
}

type UploadErrorKind string

const (
	UploadConnectionReset UploadErrorKind = "connection-reset"
	UploadGatewayTimeout  UploadErrorKind = "gateway-timeout"
	UploadFailed          UploadErrorKind = "upload-failed"
)

// UploadError is a classified media host failure.
type UploadError struct {
	Kind UploadErrorKind
	Err  error
}

func (e *UploadError) Error() string { return fmt.Sprintf("upload %s: %v", e.Kind, e.Err) }
func (e *UploadError) Unwrap() error { return e.Err }

func (e *UploadError) Hint() string {
	switch e.Kind {
	case UploadConnectionReset:
		return "The connection dropped during upload. The file may be too large; try a smaller or shorter video."
	case UploadGatewayTimeout:
		return "The media host took too long to process the file. Try again later or upload a shorter video."
	default:
		return "Upload failed. Check the file and try again."
	}
}
