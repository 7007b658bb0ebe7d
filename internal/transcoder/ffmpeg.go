package transcoder

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Profile is the encoding profile applied to uploaded videos.
type Profile struct {
	MaxWidth  int
	MaxFPS    int
	Preset    string
	CRF       int
	MaxRate   string
	BufSize   string
	AudioRate string
	DropAudio bool
}

// DefaultProfile trades quality for size so that long clips fit the upload ceiling.
var DefaultProfile = Profile{
	MaxWidth:  1280,
	MaxFPS:    30,
	Preset:    "veryfast",
	CRF:       28,
	MaxRate:   "2M",
	BufSize:   "4M",
	AudioRate: "96k",
}

// Encoder converts the video at inPath into outPath.
type Encoder interface {
	Encode(ctx context.Context, inPath, outPath string, p Profile) error
}

// FFmpeg runs the ffmpeg binary found at Path (or on $PATH when empty).
type FFmpeg struct {
	Path string
}

func (f FFmpeg) bin() string {
	if f.Path == "" {
		return "ffmpeg"
	}
	return f.Path
}

// Args returns the ffmpeg command line for p.
func Args(inPath, outPath string, p Profile) []string {
	args := []string{
		"-y", "-hide_banner", "-loglevel", "error",
		"-i", inPath,
		"-vf", fmt.Sprintf("scale='min(%d,iw)':-2", p.MaxWidth),
		"-fpsmax", fmt.Sprint(p.MaxFPS),
		"-c:v", "libx264",
		"-preset", p.Preset,
		"-crf", fmt.Sprint(p.CRF),
		"-maxrate", p.MaxRate,
		"-bufsize", p.BufSize,
	}
	if p.DropAudio {
		args = append(args, "-an")
	} else {
		args = append(args, "-c:a", "aac", "-b:a", p.AudioRate)
	}
	return append(args, "-movflags", "+faststart", "-f", "mp4", outPath)
}

func (f FFmpeg) Encode(ctx context.Context, inPath, outPath string, p Profile) error {
	cmd := exec.CommandContext(ctx, f.bin(), Args(inPath, outPath, p)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("ffmpeg: %w: %s", err, msg)
		}
		return fmt.Errorf("ffmpeg: %w", err)
	}
	return nil
}
