// Package storage holds object-store adapters behind the file service's
// ObjectStorage interface.
package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	internal "github.com/frahmantamala/employee-management/internal"
)

type S3Storage struct {
	client *s3.Client
	bucket string
	// baseURI is prepended to object keys when building the public URI.
	baseURI string
}

// NewS3Storage builds an uploader for the configured bucket. A non-empty
// endpoint (minio, localstack) switches the client to path-style addressing.
func NewS3Storage(ctx context.Context, cfg internal.StorageConfig) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	var client *s3.Client
	baseURI := fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	if cfg.Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
		baseURI = fmt.Sprintf("%s/%s", cfg.Endpoint, cfg.Bucket)
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	return &S3Storage{client: client, bucket: cfg.Bucket, baseURI: baseURI}, nil
}

func (s *S3Storage) Put(ctx context.Context, key string, contentType string, body []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return fmt.Sprintf("%s/%s", s.baseURI, key), nil
}
