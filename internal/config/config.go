package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreMariaDB = "mariadb"
	StoreMongoDB = "mongodb"
)

type Settings struct {
	ServerPort int

	StoreDriver     string
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MongoURI        string
	MongoDatabase   string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
	MinioPublicURL string

	SignedUploadURL    string
	SignedUploadCloud  string
	SignedUploadKey    string
	SignedUploadSecret string

	UploadFolder       string
	UploadMaxFileBytes int64
	UploadChunkBytes   int64
	UploadConcurrency  int
	MediaHostTimeout   time.Duration

	VideoCompressThreshold int64
	VideoMaxOutputBytes    int64
	VideoTranscodeTimeout  time.Duration
	VideoDropAudio         bool
	FFmpegPath             string

	CacheTTL time.Duration

	JWTSecret         string
	JWTTTL            time.Duration
	AdminEmail        string
	AdminPasswordHash string

	RedisAddr     string
	RedisPassword string

	ResendAPIKey string
	MailFrom     string
	MailTo       []string
	MailDevMode  bool

	RateLimitPerMinute int
	CORSAllowedOrigins []string
}

// SignedUploadEnabled reports whether every credential of the signed direct
// upload API is set.
func (s *Settings) SignedUploadEnabled() bool {
	return s.SignedUploadURL != "" && s.SignedUploadCloud != "" && s.SignedUploadKey != "" && s.SignedUploadSecret != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("STORE_DRIVER", StoreMariaDB)
	v.SetDefault("MARIADB_MAX_OPEN_CONN", 10)
	v.SetDefault("MARIADB_MAX_IDLE_CONNS", 5)
	v.SetDefault("MARIADB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("MONGO_DATABASE", "portfolio")
	v.SetDefault("MINIO_USE_SSL", false)
	v.SetDefault("SIGNED_UPLOAD_URL", "https://api.cloudinary.com/v1_1")
	v.SetDefault("UPLOAD_FOLDER", "behance-portfolio")
	v.SetDefault("UPLOAD_MAX_FILE_BYTES", 100*1024*1024)
	v.SetDefault("UPLOAD_CHUNK_BYTES", 20*1024*1024)
	v.SetDefault("UPLOAD_CONCURRENCY", 4)
	v.SetDefault("MEDIA_HOST_TIMEOUT", "10m")
	v.SetDefault("VIDEO_COMPRESS_THRESHOLD_BYTES", 20*1024*1024)
	v.SetDefault("VIDEO_MAX_OUTPUT_BYTES", 40*1024*1024)
	v.SetDefault("VIDEO_TRANSCODE_TIMEOUT", "5m")
	v.SetDefault("VIDEO_DROP_AUDIO", false)
	v.SetDefault("FFMPEG_PATH", "ffmpeg")
	v.SetDefault("CACHE_TTL", "10m")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("MAIL_FROM", "Portfolio <onboarding@resend.dev>")
	v.SetDefault("MAIL_DEV_MODE", false)
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 10)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetConfigFile(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}
	setDefaults(v)

	required := []string{
		"SERVER_PORT",
		"MINIO_ENDPOINT",
		"MINIO_ACCESS_KEY",
		"MINIO_SECRET_KEY",
		"MINIO_BUCKET",
		"JWT_SECRET",
		"ADMIN_EMAIL",
		"ADMIN_PASSWORD_HASH",
	}
	driver := strings.ToLower(v.GetString("STORE_DRIVER"))
	switch driver {
	case StoreMariaDB:
		required = append([]string{"MARIADB_DSN"}, required...)
	case StoreMongoDB:
		required = append([]string{"MONGO_URI"}, required...)
	default:
		return nil, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreMariaDB, StoreMongoDB, driver)
	}
	for _, key := range required {
		if !v.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	s := &Settings{
		ServerPort: v.GetInt("SERVER_PORT"),

		StoreDriver:     driver,
		MariaDBDSN:      v.GetString("MARIADB_DSN"),
		MaxOpenConns:    v.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    v.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(v.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		MongoURI:        v.GetString("MONGO_URI"),
		MongoDatabase:   v.GetString("MONGO_DATABASE"),

		MinioEndpoint:  v.GetString("MINIO_ENDPOINT"),
		MinioAccessKey: v.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey: v.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:    v.GetBool("MINIO_USE_SSL"),
		MinioBucket:    v.GetString("MINIO_BUCKET"),
		MinioPublicURL: v.GetString("MINIO_PUBLIC_URL"),

		SignedUploadURL:    v.GetString("SIGNED_UPLOAD_URL"),
		SignedUploadCloud:  v.GetString("SIGNED_UPLOAD_CLOUD"),
		SignedUploadKey:    v.GetString("SIGNED_UPLOAD_KEY"),
		SignedUploadSecret: v.GetString("SIGNED_UPLOAD_SECRET"),

		UploadFolder:       v.GetString("UPLOAD_FOLDER"),
		UploadMaxFileBytes: v.GetInt64("UPLOAD_MAX_FILE_BYTES"),
		UploadChunkBytes:   v.GetInt64("UPLOAD_CHUNK_BYTES"),
		UploadConcurrency:  v.GetInt("UPLOAD_CONCURRENCY"),
		MediaHostTimeout:   v.GetDuration("MEDIA_HOST_TIMEOUT"),

		VideoCompressThreshold: v.GetInt64("VIDEO_COMPRESS_THRESHOLD_BYTES"),
		VideoMaxOutputBytes:    v.GetInt64("VIDEO_MAX_OUTPUT_BYTES"),
		VideoTranscodeTimeout:  v.GetDuration("VIDEO_TRANSCODE_TIMEOUT"),
		VideoDropAudio:         v.GetBool("VIDEO_DROP_AUDIO"),
		FFmpegPath:             v.GetString("FFMPEG_PATH"),

		CacheTTL: v.GetDuration("CACHE_TTL"),

		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTTTL:            v.GetDuration("JWT_TTL"),
		AdminEmail:        v.GetString("ADMIN_EMAIL"),
		AdminPasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),

		ResendAPIKey: v.GetString("RESEND_API_KEY"),
		MailFrom:     v.GetString("MAIL_FROM"),
		MailTo:       splitList(v.GetString("MAIL_TO")),
		MailDevMode:  v.GetBool("MAIL_DEV_MODE"),

		RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}
	if len(s.MailTo) == 0 {
		s.MailTo = []string{s.AdminEmail}
	}
	if s.UploadConcurrency < 1 {
		return nil, fmt.Errorf("UPLOAD_CONCURRENCY must be at least 1")
	}

	return s, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
