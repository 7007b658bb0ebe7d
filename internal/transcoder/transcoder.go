package transcoder

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/project"
)

const DefaultTimeout = 5 * time.Minute

type Transcoder struct {
	enc     Encoder
	profile Profile
	timeout time.Duration
	tmpDir  string
}

// compile-time check: *Transcoder must satisfy port.VideoTranscoder
var _ port.VideoTranscoder = (*Transcoder)(nil)

// NewTranscoder wraps enc with the default profile. An empty tmpDir uses the
// system temp directory.
func NewTranscoder(enc Encoder, timeout time.Duration, tmpDir string) *Transcoder {
	log.Println("initialising video transcoder...")
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Transcoder{enc: enc, profile: DefaultProfile, timeout: timeout, tmpDir: tmpDir}
}

// WithoutAudio strips the audio track from every encoded video.
func (t *Transcoder) WithoutAudio() *Transcoder {
	t.profile.DropAudio = true
	return t
}

// Transcode writes data to a temp file, runs the encoder and returns the
// encoded bytes. Temp files are removed on every path. The encoder gets its
// own deadline, detached from the caller's cancellation.
func (t *Transcoder) Transcode(ctx context.Context, data []byte) ([]byte, error) {
	stamp := time.Now().UnixNano()

	inFile, err := os.CreateTemp(t.tmpDir, fmt.Sprintf("video_in_%d_*.bin", stamp))
	if err != nil {
		return nil, &project.TranscodeError{Err: fmt.Errorf("could not create temp input: %w", err)}
	}
	defer removeTemp(inFile.Name())

	if _, err := inFile.Write(data); err != nil {
		_ = inFile.Close()
		return nil, &project.TranscodeError{Err: fmt.Errorf("failed to write temp input: %w", err)}
	}
	_ = inFile.Close()

	outFile, err := os.CreateTemp(t.tmpDir, fmt.Sprintf("video_out_%d_*.mp4", stamp))
	if err != nil {
		return nil, &project.TranscodeError{Err: fmt.Errorf("could not create temp output: %w", err)}
	}
	_ = outFile.Close()
	defer removeTemp(outFile.Name())

	encCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), t.timeout)
	defer cancel()

	if err := t.enc.Encode(encCtx, inFile.Name(), outFile.Name(), t.profile); err != nil {
		if errors.Is(encCtx.Err(), context.DeadlineExceeded) {
			return nil, &project.TimeoutError{After: t.timeout}
		}
		return nil, &project.TranscodeError{Err: err}
	}

	out, err := os.ReadFile(outFile.Name())
	if err != nil {
		return nil, &project.TranscodeError{Err: fmt.Errorf("failed to read encoded video: %w", err)}
	}
	if len(out) == 0 {
		return nil, &project.TranscodeError{Err: errors.New("encoder produced an empty file")}
	}
	return out, nil
}

func removeTemp(name string) {
	if err := os.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("failed to remove temp file %q: %v", name, err)
	}
}
