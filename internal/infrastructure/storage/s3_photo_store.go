// Package storage provides the S3-backed photo store for freight requests.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"freightmarket/internal/infrastructure/database"
	"freightmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3PhotoStore stores freight photos in a single S3 bucket, keyed by the
// caller-supplied object key. Keys are opaque here; naming policy lives in
// the use case layer.
//
// Supported env vars:
//   - PHOTOS_BUCKET (default: freight-photos)
//   - S3_ENDPOINT (optional; e.g. http://minio:9000, enables path style)
type S3PhotoStore struct {
	client *s3.Client
	bucket string
}

var _ interfaces.IPhotoStore = (*S3PhotoStore)(nil)

func NewS3PhotoStore(ctx context.Context) (*S3PhotoStore, error) {
	cfg, err := database.NewAWSConfigFromEnv(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	bucket := os.Getenv("PHOTOS_BUCKET")
	if bucket == "" {
		bucket = "freight-photos"
	}
	return &S3PhotoStore{client: client, bucket: bucket}, nil
}

func (s *S3PhotoStore) Save(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", key, err)
	}
	return key, nil
}

func (s *S3PhotoStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, "", interfaces.ErrPhotoNotFound
		}
		return nil, "", fmt.Errorf("get object %q: %w", key, err)
	}
	return out.Body, aws.ToString(out.ContentType), nil
}

func (s *S3PhotoStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %q: %w", key, err)
	}
	return nil
}
