package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	awsclient "github.com/mandymoney/quote-craft/internal/client/aws"
	"github.com/mandymoney/quote-craft/internal/db"
	"github.com/mandymoney/quote-craft/internal/helpers"
	"github.com/mandymoney/quote-craft/internal/logger"
	"github.com/mandymoney/quote-craft/internal/types"
)

// Application holds the application dependencies
type Application struct {
	db     *db.Queries
	logger *zap.Logger
}

// ReplayResult records the outcome of one replayed attempt record.
type ReplayResult struct {
	MessageID             string `json:"message_id"`
	Reference             string `json:"reference"`
	ProcessedSuccessfully bool   `json:"processed_successfully"`
	Error                 string `json:"error,omitempty"`
	ProcessedAt           int64  `json:"processed_at"`
}

// HandleSQSEvent drains replayed quote-attempt records back into the
// audit log. Records that fail again are returned as an error so SQS
// redelivers them.
func (app *Application) HandleSQSEvent(ctx context.Context, event events.SQSEvent) error {
	logger.Info("Replay processor handling SQS event",
		zap.Int("record_count", len(event.Records)))

	results := make([]ReplayResult, 0, len(event.Records))
	failed := 0

	for _, record := range event.Records {
		result := app.processRecord(ctx, record)
		results = append(results, result)
		if !result.ProcessedSuccessfully {
			failed++
		}
	}

	logger.Info("Replay processing completed",
		zap.Int("total", len(results)),
		zap.Int("success", len(results)-failed),
		zap.Int("failed", failed))

	if failed > 0 {
		return fmt.Errorf("failed to replay %d of %d attempts", failed, len(results))
	}
	return nil
}

// processRecord writes one replayed attempt into the audit log.
func (app *Application) processRecord(ctx context.Context, record events.SQSMessage) ReplayResult {
	result := ReplayResult{
		MessageID:   record.MessageId,
		ProcessedAt: time.Now().Unix(),
	}

	var attempt types.QuoteAttempt
	if err := json.Unmarshal([]byte(record.Body), &attempt); err != nil {
		logger.Error("Failed to unmarshal replayed attempt",
			zap.String("message_id", record.MessageId),
			zap.Error(err))
		result.Error = fmt.Sprintf("unmarshal error: %v", err)
		return result
	}
	result.Reference = attempt.Reference

	itemsJSON, err := json.Marshal(attempt.Items)
	if err != nil {
		itemsJSON = []byte("[]")
	}
	pricingJSON, err := json.Marshal(attempt.Pricing)
	if err != nil {
		pricingJSON = []byte("{}")
	}

	var pdfURL pgtype.Text
	if attempt.PDFURL != nil {
		pdfURL = pgtype.Text{String: *attempt.PDFURL, Valid: true}
	}

	_, err = app.db.CreateQuoteAttempt(ctx, db.CreateQuoteAttemptParams{
		Reference:          attempt.Reference,
		AttemptType:        string(attempt.AttemptType),
		SchoolName:         textOrNull(attempt.SchoolName),
		SchoolAbn:          textOrNull(attempt.SchoolABN),
		CoordinatorName:    textOrNull(attempt.CoordinatorName),
		CoordinatorEmail:   textOrNull(attempt.CoordinatorEmail),
		ContactPhone:       textOrNull(attempt.ContactPhone),
		TeacherCount:       int32(attempt.TeacherCount),
		StudentCount:       int32(attempt.StudentCount),
		AccessPeriodMonths: int32(attempt.AccessPeriodMonths),
		ProgramStartDate:   attempt.ProgramStartDate,
		QuoteItems:         itemsJSON,
		Pricing:            pricingJSON,
		TotalPriceCents:    attempt.TotalPriceCents,
		PdfUrl:             pdfURL,
	})
	if err != nil {
		logger.Error("Failed to replay attempt into audit log",
			zap.String("message_id", record.MessageId),
			zap.String("reference", attempt.Reference),
			zap.Error(err))
		result.Error = fmt.Sprintf("insert error: %v", err)
		return result
	}

	logger.Info("Replayed attempt into audit log",
		zap.String("message_id", record.MessageId),
		zap.String("reference", attempt.Reference))
	result.ProcessedSuccessfully = true
	return result
}

func textOrNull(s string) pgtype.Text {
	if strings.TrimSpace(s) == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

func main() {
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
	}
	if !helpers.IsValidStage(stage) {
		panic(fmt.Sprintf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal))
	}

	// Initialize logger
	logger.InitLogger(stage)
	logger.Info("Lambda Cold Start: Initializing replay processor for stage", zap.String("stage", stage))
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()

	// Initialize AWS Secrets Manager Client
	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	// Database Connection Setup
	var dsn string
	if stage == helpers.StageProd || stage == helpers.StageDev {
		logger.Info("Running in deployed stage, fetching DB credentials from Secrets Manager", zap.String("stage", stage))
		dbEndpoint := os.Getenv("DB_HOST")
		dbName := os.Getenv("DB_NAME")
		dbSecretArn := os.Getenv("RDS_SECRET_ARN")
		dbSSLMode := os.Getenv("DB_SSLMODE")

		if dbEndpoint == "" || dbName == "" || dbSecretArn == "" {
			logger.Fatal("Missing required DB environment variables for deployed environment")
		}
		if dbSSLMode == "" {
			dbSSLMode = "require"
		}

		type RdsSecret struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		var secretData RdsSecret
		err = secretsClient.GetSecretJSON(ctx, "RDS_SECRET_ARN", "", &secretData)
		if err != nil {
			logger.Fatal("Failed to retrieve or parse RDS secret", zap.Error(err))
		}

		dsn = fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
			url.QueryEscape(secretData.Username), url.QueryEscape(secretData.Password),
			dbEndpoint, dbName, dbSSLMode)
	} else {
		// Local
		dsn, err = secretsClient.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
		if err != nil {
			logger.Fatal("Failed to get DATABASE_URL", zap.Error(err))
		}
	}

	// Database Pool Initialization
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 15
	connPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	app := &Application{
		db:     db.New(connPool),
		logger: logger.Log,
	}

	lambda.Start(app.HandleSQSEvent)
}
