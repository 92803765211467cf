package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/mandymoney/quote-craft/internal/client/address"
	awsclient "github.com/mandymoney/quote-craft/internal/client/aws"
	"github.com/mandymoney/quote-craft/internal/client/queue"
	"github.com/mandymoney/quote-craft/internal/client/storage"
	"github.com/mandymoney/quote-craft/internal/db"
	"github.com/mandymoney/quote-craft/internal/handlers"
	"github.com/mandymoney/quote-craft/internal/helpers"
	"github.com/mandymoney/quote-craft/internal/interfaces"
	"github.com/mandymoney/quote-craft/internal/logger"
	"github.com/mandymoney/quote-craft/internal/mail"
	"github.com/mandymoney/quote-craft/internal/middleware"
	"github.com/mandymoney/quote-craft/internal/pdfgen"
	"github.com/mandymoney/quote-craft/internal/services"
)

// Handler Definitions
var (
	healthHandler  *handlers.HealthHandler
	catalogHandler *handlers.CatalogHandler
	sessionHandler *handlers.SessionHandler
	actionHandler  *handlers.ActionHandler
	attemptHandler *handlers.AttemptHandler
	addressHandler *handlers.AddressHandler

	// Database
	dbQueries *db.Queries
)

func InitializeHandlers() {
	var dsn string // Database Source Name (connection string)

	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err) // Use basic log before logger init
	}

	// --- Determine and Validate Stage ---
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	// --- Initialize Logger (AFTER stage validation) ---
	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	// --- Initialize AWS Secrets Manager Client ---
	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	// --- Database Connection Setup ---
	if stage == helpers.StageProd || stage == helpers.StageDev {
		logger.Info("Running in deployed stage, fetching DB credentials from Secrets Manager", zap.String("stage", stage))

		dbEndpoint := os.Getenv("DB_HOST")
		dbName := os.Getenv("DB_NAME")
		dbSSLMode := os.Getenv("DB_SSLMODE")

		if dbEndpoint == "" || dbName == "" {
			logger.Fatal("Missing required DB environment variables for deployed stage (DB_HOST, DB_NAME)")
		}
		if dbSSLMode == "" {
			dbSSLMode = "require"
			logger.Warn("DB_SSLMODE not set, defaulting to 'require'")
		}

		type RdsSecret struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		var secretData RdsSecret

		err = secretsClient.GetSecretJSON(ctx, "RDS_SECRET_ARN", "", &secretData)
		if err != nil {
			logger.Fatal("Failed to retrieve or parse RDS secret", zap.Error(err), zap.String("secretArnEnvVar", "RDS_SECRET_ARN"))
		}

		if secretData.Username == "" || secretData.Password == "" {
			logger.Fatal("Username or password not found in RDS secret data", zap.String("secretArnEnvVar", "RDS_SECRET_ARN"))
		}

		dsn = fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
			url.QueryEscape(secretData.Username),
			url.QueryEscape(secretData.Password),
			dbEndpoint, dbName, dbSSLMode)
		logger.Info("Constructed DSN from Secrets Manager credentials")

	} else {
		logger.Info("Running in local stage, using DATABASE_URL from env/secrets")
		dsn, err = secretsClient.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
		if err != nil {
			logger.Fatal("Failed to get DATABASE_URL", zap.Error(err))
		}
		if dsn == "" {
			logger.Fatal("DATABASE_URL is required for local development")
		}
	}

	// --- Database Pool Initialization ---
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}

	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Minute * 30
	poolConfig.MaxConnIdleTime = time.Minute * 15

	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool with config", zap.Error(err))
	}

	dbQueries = db.New(dbpool)

	// --- Resend API Key ---
	resendAPIKey, err := secretsClient.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
	if err != nil || resendAPIKey == "" {
		logger.Warn("Failed to get Resend API Key. Operator alerts will be disabled.", zap.Error(err))
		resendAPIKey = ""
	} else {
		logger.Info("Successfully retrieved Resend API Key")
	}

	// --- Document Storage ---
	var uploader interfaces.StorageUploader
	documentsBucket := os.Getenv("DOCUMENTS_BUCKET")
	if documentsBucket == "" {
		logger.Warn("DOCUMENTS_BUCKET not set, documents will be download-only")
	} else {
		s3Uploader, err := storage.NewS3Uploader(ctx, documentsBucket)
		if err != nil {
			logger.Warn("Failed to initialize S3 uploader, documents will be download-only", zap.Error(err))
		} else {
			uploader = s3Uploader
		}
	}

	// --- Attempt Replay Queue ---
	var attemptQueue interfaces.AttemptQueuePublisher
	replayQueueURL := os.Getenv("ATTEMPT_REPLAY_QUEUE_URL")
	if replayQueueURL == "" {
		logger.Warn("ATTEMPT_REPLAY_QUEUE_URL not set, failed audit writes will not be replayed")
	} else {
		publisher, err := queue.NewSQSPublisher(ctx, replayQueueURL)
		if err != nil {
			logger.Warn("Failed to initialize SQS publisher, failed audit writes will not be replayed", zap.Error(err))
		} else {
			attemptQueue = publisher
		}
	}

	// --- Operator Alerts ---
	var notifier interfaces.AlertNotifier
	if resendAPIKey != "" {
		fromEmail := os.Getenv("EMAIL_FROM_ADDRESS")
		if fromEmail == "" {
			fromEmail = "noreply@mandymoney.com.au"
		}
		fromName := os.Getenv("EMAIL_FROM_NAME")
		if fromName == "" {
			fromName = "Mandy Money"
		}
		operatorEmail := os.Getenv("OPERATOR_ALERT_EMAIL")
		if operatorEmail == "" {
			operatorEmail = mail.DefaultOperatorInbox
		}
		notifier = services.NewEmailService(resendAPIKey, fromEmail, fromName, operatorEmail)
	}

	// --- Address Lookup ---
	var addressLookup interfaces.AddressLookup
	addressLookupURL := os.Getenv("ADDRESS_LOOKUP_URL")
	if addressLookupURL == "" {
		logger.Warn("ADDRESS_LOOKUP_URL not set, address suggestions disabled")
	} else {
		addressLookup = address.NewClient(addressLookupURL, os.Getenv("ADDRESS_LOOKUP_API_KEY"))
	}

	// --- Services ---
	validationService := services.NewValidationService()
	pricingService := services.NewPricingService()
	sessionService := services.NewSessionService(dbQueries, pricingService, validationService)
	composer := mail.NewComposer(os.Getenv("OPERATOR_ORDERS_INBOX"))
	dispatchService := services.NewDispatchService(
		validationService,
		pdfgen.NewRenderer(),
		uploader,
		notifier,
		attemptQueue,
		dbQueries,
		composer,
	)

	// --- Handlers ---
	healthHandler = handlers.NewHealthHandler()
	catalogHandler = handlers.NewCatalogHandler()
	sessionHandler = handlers.NewSessionHandler(sessionService, validationService)
	actionHandler = handlers.NewActionHandler(sessionService, dispatchService)
	attemptHandler = handlers.NewAttemptHandler(dbQueries)
	addressHandler = handlers.NewAddressHandler(addressLookup)
}

func InitializeRoutes(router *gin.Engine) {
	// Configure and apply CORS middleware
	router.Use(configureCORS())

	// Add correlation ID middleware for request tracing
	router.Use(middleware.CorrelationIDMiddleware())

	// Apply rate limiting middleware globally
	router.Use(middleware.DefaultRateLimiter.Middleware())

	// Request logging
	router.Use(middleware.RequestLoggingMiddleware())

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health for raw lambda url check
	router.GET("/:stage/health", healthHandler.Health)
	router.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)

		// Catalog
		v1.GET("/catalog/tiers", catalogHandler.GetCatalog)
		v1.GET("/catalog/tiers/:id", catalogHandler.GetTier)
		v1.GET("/catalog/unlimited", catalogHandler.GetUnlimited)

		// Quote sessions
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", sessionHandler.CreateSession)
			sessions.GET("/:session_id", sessionHandler.GetSession)
			sessions.PUT("/:session_id/school-info", sessionHandler.UpdateSchoolInfo)
			sessions.PUT("/:session_id/selection", sessionHandler.UpdateSelection)
			sessions.GET("/:session_id/quote", sessionHandler.GetQuote)

			// Document-generating actions get the strict limiter on top
			// of the per-session busy guard.
			sessions.POST("/:session_id/actions/:action_type",
				middleware.StrictRateLimiter.Middleware(), actionHandler.DispatchAction)
		}

		// Address autocomplete
		v1.GET("/address/lookup", addressHandler.LookupAddress)

		// Audit log
		v1.GET("/quote-attempts", attemptHandler.ListAttempts)
	}

	// Graceful shutdown hook, mirrors the health endpoint's plain shape.
	router.GET("/shutdown", func(c *gin.Context) {
		go func() {
			time.Sleep(1 * time.Second)
			logger.Info("Server is shutting down...")
			os.Exit(0)
		}()
		c.JSON(http.StatusOK, gin.H{"message": "Server is shutting down..."})
	})
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	// Get allowed methods from environment variable
	methodsEnv := os.Getenv("CORS_ALLOWED_METHODS")
	if methodsEnv == "" {
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	} else {
		methods := strings.Split(methodsEnv, ",")
		for i, method := range methods {
			methods[i] = strings.TrimSpace(method)
		}
		corsConfig.AllowMethods = methods
	}

	// Get allowed headers from environment variable
	headersEnv := os.Getenv("CORS_ALLOWED_HEADERS")
	if headersEnv == "" {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Correlation-ID"}
	} else {
		headers := strings.Split(headersEnv, ",")
		for i, header := range headers {
			headers[i] = strings.TrimSpace(header)
		}
		corsConfig.AllowHeaders = headers
	}

	// Get exposed headers from environment variable
	exposedHeadersEnv := os.Getenv("CORS_EXPOSED_HEADERS")
	if exposedHeadersEnv != "" {
		exposedHeaders := strings.Split(exposedHeadersEnv, ",")
		for i, header := range exposedHeaders {
			exposedHeaders[i] = strings.TrimSpace(header)
		}
		corsConfig.ExposeHeaders = exposedHeaders
	} else {
		corsConfig.ExposeHeaders = []string{
			"Retry-After",
			"X-Correlation-ID",
		}
	}

	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
