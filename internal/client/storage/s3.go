// Package storage uploads rendered documents to S3 and hands back a
// durable public URL.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mandymoney/quote-craft/internal/logger"
)

// S3Uploader stores documents in a single public bucket under the
// documents/ prefix.
type S3Uploader struct {
	client *s3.Client
	bucket string
	region string
	logger *zap.Logger
}

// NewS3Uploader creates an uploader using the default AWS config chain.
// When S3_ENDPOINT_URL is set the uploader targets that endpoint with
// static credentials instead, for local minio/localstack development.
func NewS3Uploader(ctx context.Context, bucket string) (*S3Uploader, error) {
	var opts []func(*config.LoadOptions) error
	endpoint := os.Getenv("S3_ENDPOINT_URL")
	if endpoint != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				os.Getenv("S3_ACCESS_KEY_ID"),
				os.Getenv("S3_SECRET_ACCESS_KEY"),
				"")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load AWS SDK config")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Uploader{
		client: client,
		bucket: bucket,
		region: cfg.Region,
		logger: logger.Log,
	}, nil
}

// Upload puts the document and returns its public URL.
func (u *S3Uploader) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	key := "documents/" + filename

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to upload %s", filename)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
	u.logger.Info("Document uploaded",
		zap.String("bucket", u.bucket),
		zap.String("key", key),
		zap.Int("bytes", len(data)))
	return url, nil
}
