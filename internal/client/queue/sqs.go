// Package queue publishes quote-attempt records to the replay queue
// used when the synchronous audit write fails. The dlq-processor
// drains it back into Postgres.
package queue

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mandymoney/quote-craft/internal/logger"
	"github.com/mandymoney/quote-craft/internal/types"
)

// SQSPublisher sends attempt records to a single queue URL.
type SQSPublisher struct {
	client   *sqs.Client
	queueURL string
	logger   *zap.Logger
}

// NewSQSPublisher creates a publisher using the default AWS config chain.
func NewSQSPublisher(ctx context.Context, queueURL string) (*SQSPublisher, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load AWS SDK config")
	}

	return &SQSPublisher{
		client:   sqs.NewFromConfig(cfg),
		queueURL: queueURL,
		logger:   logger.Log,
	}, nil
}

// PublishQuoteAttempt enqueues one attempt record for later replay.
func (p *SQSPublisher) PublishQuoteAttempt(ctx context.Context, attempt types.QuoteAttempt) error {
	body, err := json.Marshal(attempt)
	if err != nil {
		return errors.Wrap(err, "failed to marshal attempt")
	}

	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return errors.Wrap(err, "failed to enqueue attempt")
	}

	p.logger.Info("Attempt enqueued for replay", zap.String("reference", attempt.Reference))
	return nil
}
