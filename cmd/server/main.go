package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/devillabs/cms-api/configs"
	"github.com/devillabs/cms-api/internal/application/services"
	"github.com/devillabs/cms-api/internal/core/domain/media"
	"github.com/devillabs/cms-api/internal/core/ports"
	"github.com/devillabs/cms-api/internal/infrastructure/db"
	"github.com/devillabs/cms-api/internal/infrastructure/email"
	"github.com/devillabs/cms-api/internal/infrastructure/gemini"
	"github.com/devillabs/cms-api/internal/infrastructure/health"
	"github.com/devillabs/cms-api/internal/infrastructure/httpserver"
	"github.com/devillabs/cms-api/internal/infrastructure/redis"
	"github.com/devillabs/cms-api/internal/infrastructure/repositories"
	"github.com/devillabs/cms-api/internal/infrastructure/storage"
	"github.com/devillabs/cms-api/internal/utils"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger := logrus.New()
	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting Devil Labs CMS API...")

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	database, err := db.NewDatabaseWithConfig(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()
	logger.Info("Connected to database successfully")

	if err := database.Migrate(cfg.Database.MigrationsPath); err != nil {
		logger.Warn("Failed to run migrations:", err)
	}

	hcSlice := []ports.HealthChecker{health.NewDBHealthChecker(database)}

	// Redis backs the taxonomy cache, the logout blacklist and optionally the rate limiter.
	var (
		cache     ports.Cache
		blacklist ports.TokenBlacklist
		windows   ports.RateWindowRepository
	)
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewRedisClient(&cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis:", err)
		}
		defer redisClient.Close()
		logger.Info("Connected to Redis successfully")

		cache = redis.NewRedisCache(redisClient, "cmscache")
		blacklist = repositories.NewTokenBlacklistRedisRepository(redisClient)
		if cfg.RateLimit.Backend == "redis" {
			windows = repositories.NewRateLimitRedisRepository(redisClient, cfg.RateLimit.KeyPrefix)
		}
		hcSlice = append(hcSlice, health.NewRedisHealthChecker(redisClient))
	} else {
		logger.Warn("Redis disabled: taxonomy cache and token revocation are off")
	}
	if windows == nil {
		mem := repositories.NewRateWindowMemoryRepository(logger)
		mem.StartJanitor(rootCtx, cfg.RateLimit.SweepInterval, services.RateWindow)
		windows = mem
	}

	store, err := storage.NewObjectStore(&cfg.Storage, logger)
	if err != nil {
		logger.Fatal("Failed to initialize object storage:", err)
	}
	hcSlice = append(hcSlice, health.NewStorageHealthChecker(store))

	contentService := services.NewContentService(services.ContentRepositories{
		Blogs:    repositories.NewBlogRepository(database, logger),
		Projects: repositories.NewProjectRepository(database, logger),
		Services: repositories.NewServiceRepository(database, logger),
		Tools:    repositories.NewToolRepository(database, logger),
		Taxonomy: repositories.NewCachingTaxonomyRepository(repositories.NewTaxonomyRepository(database, logger), cache, 30*time.Minute),
		Stats:    repositories.NewStatsRepository(database),
	}, logger)

	mediaService := services.NewMediaService(store, &services.MediaServiceConfig{
		StorageTimeout:       cfg.Storage.Timeout,
		MaxConcurrentResizes: cfg.Storage.MaxConcurrentResizes,
		VariantFailures:      httpserver.VariantFailures(),
	}, logger)
	assetService := services.NewAssetService(mediaService, repositories.NewAssetRepository(database, logger), logger)

	authService := services.NewAuthService(&cfg.Admin, &cfg.JWT, blacklist, logger)

	sanitizer := utils.NewSanitizer()
	emailService := email.NewEmailService(&email.EmailConfig{
		SendGridAPIKey:   cfg.Email.SendGridAPIKey,
		FromEmail:        cfg.Email.FromEmail,
		FromName:         cfg.Email.FromName,
		ContactRecipient: cfg.Email.ContactRecipient,
		CompanyName:      cfg.Email.CompanyName,
	}, logger)
	if cfg.Email.SendGridAPIKey == "" {
		logger.Warn("SENDGRID_API_KEY not set: contact form submissions will fail")
	}
	contactService := services.NewContactService(emailService, sanitizer, logger)

	geminiClient := gemini.NewClient(gemini.Config{
		APIKey:            cfg.Chat.GeminiAPIKey,
		Model:             cfg.Chat.Model,
		BaseURL:           cfg.Chat.BaseURL,
		Timeout:           cfg.Chat.RequestTimeout,
		RequestsPerSecond: cfg.Chat.RequestsPerSecond,
		Burst:             cfg.Chat.Burst,
	}, logger)
	if !geminiClient.Configured() {
		logger.Warn("GEMINI_API_KEY not set: chat endpoint will answer with errors")
	}
	chatService := services.NewChatService(geminiClient, sanitizer, cfg.Chat.MaxHistoryLength, geminiClient.Configured(), logger)

	rateLimiterService := services.NewRateLimiterService(windows, nil, logger)

	serverConfig := &httpserver.ServerConfig{
		Host:               cfg.Server.Host,
		Port:               cfg.Server.Port,
		ReadTimeout:        cfg.Server.ReadTimeout,
		WriteTimeout:       cfg.Server.WriteTimeout,
		IdleTimeout:        cfg.Server.IdleTimeout,
		TLSCertFile:        cfg.Server.TLSCertFile,
		TLSKeyFile:         cfg.Server.TLSKeyFile,
		AllowedOrigins:     cfg.Server.AllowedOrigins,
		Environment:        cfg.Server.Environment,
		MaxUploadBytes:     cfg.Server.MaxUploadBytes,
		RateLimitPerWindow: cfg.RateLimit.RequestsPerMinute,
		TrustedProxies:     cfg.Server.TrustedProxies,
	}
	if store.Backend() == media.BackendLocal {
		serverConfig.UploadsDir = cfg.Storage.LocalDir
		serverConfig.UploadsURLPrefix = cfg.Storage.LocalURLPrefix
	}

	deps := httpserver.ServerDeps{
		ContentService:      contentService,
		ContentAdminService: contentService,
		AuthService:         authService,
		AssetService:        assetService,
		ContactService:      contactService,
		ChatService:         chatService,
		RateLimiterService:  rateLimiterService,
		HealthCheckers:      hcSlice,
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
