package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/fhuszti/portfolio-ms-go/internal/cache"
	"github.com/fhuszti/portfolio-ms-go/internal/config"
	"github.com/fhuszti/portfolio-ms-go/internal/db"
	"github.com/fhuszti/portfolio-ms-go/internal/handler/api"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/mailer"
	cMiddleware "github.com/fhuszti/portfolio-ms-go/internal/middleware"
	"github.com/fhuszti/portfolio-ms-go/internal/optimiser"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/renderer"
	"github.com/fhuszti/portfolio-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/portfolio-ms-go/internal/repository/mongodb"
	"github.com/fhuszti/portfolio-ms-go/internal/storage"
	"github.com/fhuszti/portfolio-ms-go/internal/task"
	"github.com/fhuszti/portfolio-ms-go/internal/token"
	"github.com/fhuszti/portfolio-ms-go/internal/transcoder"
	adminSvc "github.com/fhuszti/portfolio-ms-go/internal/usecase/admin"
	contactSvc "github.com/fhuszti/portfolio-ms-go/internal/usecase/contact"
	projectSvc "github.com/fhuszti/portfolio-ms-go/internal/usecase/project"
	msuuid "github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// store is a project repository that can also report its health.
type store interface {
	port.ProjectRepository
	port.Pinger
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()
	defer logger.Flush()

	repo, closeStore := initStore(ctx, cfg)

	minioStrg := initStorage(ctx, cfg)
	host := storage.NewHost(minioStrg, initSignedClient(ctx, cfg), cfg.MediaHostTimeout)

	var (
		ca          port.Cache
		cachePinger port.Pinger
		dispatcher  port.TaskDispatcher
		limiter     port.RateLimiter
		redisClient *redis.Client
	)
	deliverer := contactSvc.NewContactDeliverer(
		mailer.NewResendMailer(cfg.ResendAPIKey, cfg.MailDevMode), cfg.MailFrom, cfg.MailTo,
	)
	if cfg.RedisAddr != "" {
		redisClient = cache.NewClient(cfg.RedisAddr, cfg.RedisPassword)
		redisCache := cache.NewCache(redisClient)
		ca, cachePinger = redisCache, redisCache
		limiter = cache.NewRateLimiter(redisClient, "public", cfg.RateLimitPerMinute, time.Minute)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache, rate limiting and background mail enabled")
	} else {
		ca = cache.NewNoop()
		limiter = cache.NoopRateLimiter{}
		dispatcher = task.NewInlineDispatcher(deliverer)
		logger.Warn(ctx, "⚠️  Redis not configured: caching and rate limiting are disabled, mail is sent inline")
	}

	jwt, err := token.NewJWT(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialise token issuer: %v", err)
		os.Exit(1)
	}

	pipeline := projectSvc.NewPipeline(
		projectSvc.Config{
			Folder:                 cfg.UploadFolder,
			VideoCompressThreshold: cfg.VideoCompressThreshold,
			VideoMaxOutput:         cfg.VideoMaxOutputBytes,
			ChunkSize:              cfg.UploadChunkBytes,
			Concurrency:            cfg.UploadConcurrency,
			SignedEnabled:          cfg.SignedUploadEnabled(),
			CacheTTL:               cfg.CacheTTL,
		},
		optimiser.NewCompressor(optimiser.NewWebPEncoder()),
		initTranscoder(cfg),
		host,
	)

	r := initRouter(ctx, cfg)
	requireAdmin := cMiddleware.WithAuth(jwt, adminSvc.RoleAdmin)
	rateLimited := cMiddleware.WithRateLimit(limiter)

	r.Route("/api/projects", func(r chi.Router) {
		r.Get("/", api.ListProjectsHandler(projectSvc.NewProjectLister(repo)))
		r.With(requireAdmin).
			Post("/", api.CreateProjectHandler(projectSvc.NewProjectCreator(repo, pipeline, msuuid.NewUUID), cfg.UploadMaxFileBytes))

		r.Route("/{id}", func(r chi.Router) {
			r.Use(cMiddleware.WithProjectID())

			getter := projectSvc.NewProjectGetter(repo, cfg.CacheTTL)
			r.Get("/", api.GetProjectHandler(renderer.NewHTTPRenderer(ca), getter))
			r.With(requireAdmin).
				Put("/", api.UpdateProjectHandler(projectSvc.NewProjectUpdater(repo, pipeline, ca), cfg.UploadMaxFileBytes))
			r.With(requireAdmin).
				Delete("/", api.DeleteProjectHandler(projectSvc.NewProjectDeleter(repo, ca)))
		})
	})

	authenticator := adminSvc.NewAuthenticator(cfg.AdminEmail, cfg.AdminPasswordHash, jwt)
	r.With(rateLimited).Post("/api/admin/login", api.LoginHandler(authenticator))
	r.With(cMiddleware.WithAuth(jwt, "")).Get("/api/admin/verify", api.VerifyHandler())

	r.With(rateLimited).Post("/api/contact", api.ContactHandler(contactSvc.NewContactSender(dispatcher)))
	r.Get("/api/categories", api.CategoriesHandler())
	r.Get("/health", api.HealthHandler(repo, host, cachePinger))

	listenRouter(ctx, r, cfg, func() {
		if c, ok := dispatcher.(*task.Dispatcher); ok {
			if err := c.Close(); err != nil {
				logger.Warnf(ctx, "task dispatcher close error: %v", err)
			}
		}
		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				logger.Warnf(ctx, "redis close error: %v", err)
			}
		}
		closeStore()
	})
}

func initStore(ctx context.Context, cfg *config.Settings) (store, func()) {
	logger.Infof(ctx, "initialising %s project store...", cfg.StoreDriver)

	if cfg.StoreDriver == config.StoreMongoDB {
		repo, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			logger.Errorf(ctx, "❌  Failed to connect to mongodb: %v", err)
			os.Exit(1)
		}
		if err := repo.EnsureIndexes(ctx); err != nil {
			logger.Warnf(ctx, "could not create mongodb indexes: %v", err)
		}
		return repo, func() {
			if err := repo.Close(context.Background()); err != nil {
				logger.Errorf(ctx, "mongodb disconnect error: %v", err)
			}
		}
	}

	database, err := db.New(db.MariaDbConfig{
		DSN:             cfg.MariaDBDSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	return mariadbStore{mariadb.NewProjectRepository(database.DB), database}, func() {
		if err := database.Close(); err != nil {
			logger.Errorf(ctx, "DB close error: %v", err)
		}
	}
}

type mariadbStore struct {
	*mariadb.ProjectRepository
	*db.Database
}

func (s mariadbStore) Ping(ctx context.Context) error {
	return s.Database.Ping(ctx)
}

func initStorage(ctx context.Context, cfg *config.Settings) *storage.MinioStorage {
	strg, err := storage.NewMinioStorage(storage.MinioConfig{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		UseSSL:    cfg.MinioUseSSL,
		Bucket:    cfg.MinioBucket,
		PublicURL: cfg.MinioPublicURL,
		ChunkSize: cfg.UploadChunkBytes,
	})
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}
	if err := strg.InitBucket(ctx); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.MinioBucket, err)
		os.Exit(1)
	}
	return strg
}

func initSignedClient(ctx context.Context, cfg *config.Settings) *storage.SignedClient {
	if !cfg.SignedUploadEnabled() {
		logger.Info(ctx, "signed direct upload not configured, small videos are streamed")
		return nil
	}
	return storage.NewSignedClient(storage.SignedConfig{
		BaseURL:   cfg.SignedUploadURL,
		Cloud:     cfg.SignedUploadCloud,
		APIKey:    cfg.SignedUploadKey,
		APISecret: cfg.SignedUploadSecret,
	}, &http.Client{Timeout: cfg.MediaHostTimeout})
}

func initTranscoder(cfg *config.Settings) *transcoder.Transcoder {
	t := transcoder.NewTranscoder(transcoder.FFmpeg{Path: cfg.FFmpegPath}, cfg.VideoTranscodeTimeout, "")
	if cfg.VideoDropAudio {
		t = t.WithoutAudio()
	}
	return t
}

func initRouter(ctx context.Context, cfg *config.Settings) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cMiddleware.WithCORS(cfg.CORSAllowedOrigins))

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, cleanup func()) {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Minute,
		WriteTimeout:      30 * time.Minute,
	}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
	}
	cleanup()
	logger.Info(ctx, "✅  Server gracefully stopped")
}
