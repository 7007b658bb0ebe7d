package project

import "time"

const (
	DefaultFolder                 = "behance-portfolio"
	DefaultVideoCompressThreshold = 20 * 1024 * 1024 // 20 MB
	DefaultVideoMaxOutput         = 40 * 1024 * 1024 // 40 MB
	DefaultChunkSize              = 20 * 1024 * 1024 // 20 MB
	DefaultConcurrency            = 4
	DefaultCacheTTL               = 10 * time.Minute
	DefaultEager                  = "sp_auto"
)

// Config holds the ingestion thresholds. Zero values fall back to the defaults.
type Config struct {
	Folder                 string
	VideoCompressThreshold int64
	VideoMaxOutput         int64
	ChunkSize              int64
	Concurrency            int
	// SignedEnabled reports whether the signed direct-upload API is configured.
	SignedEnabled bool
	Eager         string
	CacheTTL      time.Duration
}

func (c Config) withDefaults() Config {
	if c.Folder == "" {
		c.Folder = DefaultFolder
	}
	if c.VideoCompressThreshold <= 0 {
		c.VideoCompressThreshold = DefaultVideoCompressThreshold
	}
	if c.VideoMaxOutput <= 0 {
		c.VideoMaxOutput = DefaultVideoMaxOutput
	}
	if c.ChunkSize <= 0 {
		c.ChunkSize = DefaultChunkSize
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	if c.Eager == "" {
		c.Eager = DefaultEager
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = DefaultCacheTTL
	}
	return c
}
