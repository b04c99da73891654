// Package s3 stores profile images in an S3-compatible object store.
package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "github.com/devlinks/api/pkg/config"
)

type Client struct {
	uploader *manager.Uploader
	bucket   string
	baseURL  string
}

// NewClient builds an S3 client from app config. Endpoint override supports
// MinIO and other S3-compatible stores.
func NewClient(ctx context.Context, cfg *appconfig.Config) (*Client, error) {
	if cfg.S3AccessKeyID == "" || cfg.S3SecretAccessKey == "" || cfg.S3Bucket == "" || cfg.S3Endpoint == "" {
		return nil, fmt.Errorf("S3 credentials (S3_ACCESS_KEY_ID, S3_SECRET_ACCESS_KEY, S3_BUCKET, S3_ENDPOINT) must be set")
	}

	scheme := "http"
	if cfg.S3UseSSL {
		scheme = "https"
	}
	endpointURL := fmt.Sprintf("%s://%s", scheme, cfg.S3Endpoint)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpointURL)
		o.UsePathStyle = true
	})

	return &Client{
		uploader: manager.NewUploader(s3Client),
		bucket:   cfg.S3Bucket,
		baseURL:  endpointURL,
	}, nil
}

// Upload streams body to the bucket under key and returns the object's
// public URL.
func (c *Client) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	_, err := c.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", key, c.bucket, err)
	}
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.bucket, key), nil
}
