package main

// @title ClipTokk API
// @version 1.0
// @description Marketplace API connecting content creators funding clipping missions with TikTok clippers paid per 1000 views.
// @termsOfService https://cliptokk.com/terms

// @contact.name API Support
// @contact.url https://cliptokk.com/support
// @contact.email support@cliptokk.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/cliptokk/api/config"
	_ "github.com/cliptokk/api/docs" // Swagger docs (generated)
	"github.com/cliptokk/api/ent/user"
	"github.com/cliptokk/api/pkg/analytics"
	"github.com/cliptokk/api/pkg/api/handlers"
	custommw "github.com/cliptokk/api/pkg/api/middleware"
	"github.com/cliptokk/api/pkg/audit"
	"github.com/cliptokk/api/pkg/auth"
	"github.com/cliptokk/api/pkg/backup"
	"github.com/cliptokk/api/pkg/cache"
	"github.com/cliptokk/api/pkg/database"
	"github.com/cliptokk/api/pkg/email"
	"github.com/cliptokk/api/pkg/export"
	"github.com/cliptokk/api/pkg/jobs"
	"github.com/cliptokk/api/pkg/metrics"
	custommiddleware "github.com/cliptokk/api/pkg/middleware"
	"github.com/cliptokk/api/pkg/milestones"
	"github.com/cliptokk/api/pkg/missions"
	"github.com/cliptokk/api/pkg/payments"
	"github.com/cliptokk/api/pkg/secrets"
	"github.com/cliptokk/api/pkg/slack"
	"github.com/cliptokk/api/pkg/storage"
	"github.com/cliptokk/api/pkg/submissions"
	"github.com/cliptokk/api/pkg/wallet"
)

func main() {
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Overlay credentials from AWS Secrets Manager when running on AWS
	if secretsCfg := secrets.AutoDetectConfig(); secretsCfg.Backend != "env" {
		applySecrets(cfg, secretsCfg)
	}

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️ Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️ Sentry disabled (no DSN configured)")
	}

	// Database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Object storage (avatars, admin exports)
	store, err := storage.New(storage.Config{
		Type:               cfg.StorageType,
		AWSAccessKeyID:     cfg.AWSAccessKeyID,
		AWSSecretAccessKey: cfg.AWSSecretKey,
		AWSRegion:          cfg.AWSRegion,
		S3Bucket:           cfg.S3Bucket,
		LocalDir:           cfg.StorageLocalPath,
		PublicBaseURL:      cfg.FrontendURL + "/uploads",
	})
	if err != nil {
		log.Fatalf("❌ Failed to initialize storage: %v", err)
	}
	log.Printf("✅ Storage initialized (type: %s)", cfg.StorageType)

	// Echo
	e := echo.New()
	e.HideBanner = true

	// Rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2)       // login brute-force guard
	registerRateLimiter := custommiddleware.NewRateLimiter(3, 1)   // registrations
	webhookRateLimiter := custommiddleware.NewRateLimiter(100, 20) // Stripe webhooks

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(prometheusMetrics.Middleware())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{
			"http://localhost:3000",
			cfg.FrontendURL,
			"https://cliptokk.com",
			"https://www.cliptokk.com",
		},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
	}))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "ClipTokk API",
			"version":     "1.0.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}
		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Services
	tokenBlacklist := auth.NewTokenBlacklist(redisClient)
	auditLogger := audit.NewService(db.Ent)
	log.Printf("✅ Audit logging initialized")

	emailService := email.NewService(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.FrontendURL,
		cfg.SendGridAPIKey,
	)

	var slackService *slack.Service
	if cfg.SlackWebhookURL != "" {
		slackService = slack.NewService(slack.NewWebhookClient(cfg.SlackWebhookURL))
		log.Printf("✅ Slack notifications enabled")
	} else {
		slackService = slack.NewService(nil)
	}

	paymentsService := payments.NewService(db.Ent, &payments.StripeConfig{
		SecretKey:     cfg.StripeSecretKey,
		WebhookSecret: cfg.StripeWebhookSecret,
		SuccessURL:    cfg.FrontendURL + "/wallet?recharge=success",
		CancelURL:     cfg.FrontendURL + "/wallet?recharge=canceled",
	})

	missionService := missions.NewService(db.Ent, redisClient)
	submissionService := submissions.NewService(db.Ent, redisClient)
	milestoneService := milestones.NewService(db.Ent, redisClient)
	analyticsService := analytics.NewService(db.Ent, redisClient)
	walletService := wallet.NewService(db.Ent, redisClient, paymentsService, wallet.Limits{
		MinPayout:   cfg.MinPayoutAmount,
		MaxRecharge: cfg.MaxRechargeAmount,
	})
	exportService := export.NewService(db.Ent, store)

	// Scheduled jobs: hourly budget sweep, leaderboard warm-up
	cronManager := jobs.NewCronManager(db.Ent, redisClient, analyticsService, slackService, log.Default())
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	if cfg.APIEnvironment == "production" {
		backupService, err := backup.NewService(store, backup.Config{
			DatabaseURL:    cfg.DatabaseURL,
			LocalBackupDir: "./data/backups",
			RetentionDays:  7,
		})
		if err != nil {
			log.Printf("⚠️ Backups disabled: %v", err)
		} else if err := cronManager.ScheduleBackups(backupService); err != nil {
			log.Printf("⚠️ Failed to schedule backups: %v", err)
		}
	}
	cronManager.Start()

	// Handlers
	authHandler := handlers.NewAuthHandler(db.Ent, cfg, tokenBlacklist, auditLogger, emailService, prometheusMetrics)
	missionHandler := handlers.NewMissionHandler(missionService, auditLogger, prometheusMetrics)
	submissionHandler := handlers.NewSubmissionHandler(submissionService, auditLogger, prometheusMetrics)
	milestoneHandler := handlers.NewMilestoneHandler(db.Ent, milestoneService, auditLogger, emailService, prometheusMetrics)
	walletHandler := handlers.NewWalletHandler(walletService, auditLogger, prometheusMetrics)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	adminHandler := handlers.NewAdminHandler(db.Ent, analyticsService, auditLogger, exportService)
	profileHandler := handlers.NewProfileHandler(db.Ent, store)
	stripeWebhookHandler := handlers.NewStripeWebhookHandler(paymentsService)

	v1 := e.Group("/api/v1")

	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "pong"})
	})

	requireAuth := custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist, db.Ent)

	// Authentication (public except me/logout/resend)
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register, registerRateLimiter.RateLimitMiddleware())
		authRoutes.POST("/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())
		authRoutes.GET("/me", authHandler.Me, requireAuth)
		authRoutes.POST("/logout", authHandler.Logout, requireAuth)
		authRoutes.GET("/verify-email/:token", authHandler.VerifyEmail)
		authRoutes.POST("/resend-verification", authHandler.ResendVerificationEmail, requireAuth)
	}

	// Public browsing
	v1.GET("/missions", missionHandler.List)
	v1.GET("/missions/:id", missionHandler.Get)
	v1.GET("/leaderboard", analyticsHandler.Leaderboard)

	// Stripe webhook (public, signature-verified)
	v1.POST("/webhooks/stripe", stripeWebhookHandler.Handle, webhookRateLimiter.RateLimitMiddleware())

	// Authenticated routes
	protected := v1.Group("")
	protected.Use(requireAuth)
	{
		// Missions (creators publish, admins moderate)
		missionGroup := protected.Group("/missions")
		{
			missionGroup.POST("", missionHandler.Create, custommiddleware.RequireRole(db.Ent, user.RoleCreator))
			missionGroup.PATCH("/:id", missionHandler.Update)
			missionGroup.GET("/mine/list", missionHandler.ListMine)
			missionGroup.GET("/:id/submissions", submissionHandler.ListByMission)
			missionGroup.GET("/:id/stats", analyticsHandler.MissionStats)
		}

		// Submissions (clippers only)
		submissionGroup := protected.Group("/submissions")
		{
			submissionGroup.POST("", submissionHandler.Create, custommiddleware.RequireRole(db.Ent, user.RoleClipper))
			submissionGroup.GET("/mine", submissionHandler.ListMine)
			submissionGroup.GET("/:id", submissionHandler.Get)
		}

		// Milestone declarations (clippers only)
		milestoneGroup := protected.Group("/milestones")
		{
			milestoneGroup.POST("", milestoneHandler.Declare, custommiddleware.RequireRole(db.Ent, user.RoleClipper))
			milestoneGroup.GET("/mine", milestoneHandler.ListMine)
		}

		// Wallet: payouts and recharges move money, so verified email required
		walletGroup := protected.Group("/wallet")
		{
			walletGroup.GET("/balance", walletHandler.Balance)
			walletGroup.GET("/history", walletHandler.History)
			walletGroup.POST("/recharge", walletHandler.Recharge, custommiddleware.RequireEmailVerified(db.Ent))
			walletGroup.POST("/payout", walletHandler.Payout, custommiddleware.RequireEmailVerified(db.Ent))
		}

		// Analytics
		analyticsGroup := protected.Group("/analytics")
		{
			analyticsGroup.GET("/clipper", analyticsHandler.ClipperStats)
			analyticsGroup.GET("/creator", analyticsHandler.CreatorDashboard)
		}

		// Profile
		profileGroup := protected.Group("/profile")
		{
			profileGroup.PATCH("", profileHandler.Update)
			profileGroup.POST("/avatar", profileHandler.UploadAvatar)
		}

		// Admin back-office
		adminGroup := protected.Group("/admin")
		adminGroup.Use(custommiddleware.RequireAdmin(db.Ent))
		{
			adminGroup.GET("/overview", adminHandler.Overview)
			adminGroup.GET("/users", adminHandler.ListUsers)
			adminGroup.GET("/audit-logs", adminHandler.AuditLogs)
			adminGroup.GET("/milestones/pending", milestoneHandler.ListPending)
			adminGroup.POST("/milestones/:id/approve", milestoneHandler.Approve)
			adminGroup.POST("/milestones/:id/reject", milestoneHandler.Reject)
			adminGroup.POST("/exports/submissions", adminHandler.ExportSubmissions)
		}
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 ClipTokk API starting on %s", address)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️ Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("💶 Payouts: min %.2f EUR, recharges capped at %.2f EUR", cfg.MinPayoutAmount, cfg.MaxRechargeAmount)

	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	cronManager.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}

// applySecrets overlays credentials from the secrets backend onto the config.
// Failures are logged and the environment-provided values stay in place.
func applySecrets(cfg *config.Config, secretsCfg secrets.Config) {
	manager, err := secrets.NewManager(secretsCfg)
	if err != nil {
		log.Printf("⚠️ Failed to initialize secrets manager: %v", err)
		return
	}
	defer manager.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	common, err := secrets.LoadCommonSecrets(ctx, manager)
	if err != nil {
		log.Printf("⚠️ Failed to load secrets: %v", err)
		return
	}

	cfg.JWTSecret = common.JWTSecret
	cfg.DatabaseURL = common.DatabaseURL
	cfg.RedisURL = common.RedisURL
	if common.StripeSecretKey != "" {
		cfg.StripeSecretKey = common.StripeSecretKey
	}
	if common.StripeWebhookSecret != "" {
		cfg.StripeWebhookSecret = common.StripeWebhookSecret
	}
	if common.SendGridAPIKey != "" {
		cfg.SendGridAPIKey = common.SendGridAPIKey
	}
	if common.SlackWebhookURL != "" {
		cfg.SlackWebhookURL = common.SlackWebhookURL
	}

	log.Printf("✅ Secrets loaded from %s", secretsCfg.Backend)
}
