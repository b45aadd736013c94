// Package storage removes stored product artifacts (images, documents) from
// the external object store. Removal is a compensating action: it runs only
// after the owning database transaction has committed, and its failure is
// reported but never undoes the commit.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sethvargo/go-retry"
)

// Remover deletes a single stored artifact by its opaque key.
type Remover interface {
	Delete(ctx context.Context, key string) error
}

// S3Remover deletes objects from a single S3 bucket.
type S3Remover struct {
	client  *s3.Client
	bucket  string
	retries uint64
}

// Options configure the S3 connection. Endpoint is optional and used for
// S3-compatible stores (MinIO) in development.
type Options struct {
	Bucket   string
	Region   string
	Endpoint string
}

// NewS3Remover builds a remover from the ambient AWS credential chain.
func NewS3Remover(ctx context.Context, opts Options) (*S3Remover, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("storage: bucket is required")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(opts.Region))
	if err != nil {
		return nil, fmt.Errorf("storage: load aws config: %w", err)
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Remover{client: client, bucket: opts.Bucket, retries: 3}, nil
}

// Delete removes one object, retrying transient failures with fibonacci
// backoff. Deleting an absent key is a no-op success in S3, which makes the
// whole cleanup pass safely re-runnable.
func (r *S3Remover) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	backoff := retry.WithMaxRetries(r.retries, retry.NewFibonacci(200*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(r.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete object %q: %w", key, err)
	}
	return nil
}
