package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectSink mirrors exported artifacts to an S3-compatible bucket
// (R2 in production) after a successful local write.
type ObjectSink struct {
	s3Client *s3.Client
	bucket   string
	prefix   string
}

// ObjectSinkConfig holds configuration for the object sink.
type ObjectSinkConfig struct {
	BucketName      string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	KeyPrefix       string // Optional prefix for object keys, e.g. "runs/"
}

// NewObjectSink creates an object sink for the given bucket.
func NewObjectSink(cfg ObjectSinkConfig) (*ObjectSink, error) {
	if cfg.BucketName == "" {
		return nil, errors.New("bucket name is required")
	}
	if cfg.AccessKeyID == "" {
		return nil, errors.New("access key ID is required")
	}
	if cfg.SecretAccessKey == "" {
		return nil, errors.New("secret access key is required")
	}
	if cfg.Endpoint == "" {
		return nil, errors.New("endpoint is required")
	}

	// R2-compatible client configuration
	s3Client := s3.New(s3.Options{
		Region: "auto", // R2 uses auto region
		Credentials: aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"", // No session token for R2
		)),
		BaseEndpoint: aws.String(cfg.Endpoint),
		UsePathStyle: true, // R2 requires path-style addressing
	})

	return &ObjectSink{
		s3Client: s3Client,
		bucket:   cfg.BucketName,
		prefix:   cfg.KeyPrefix,
	}, nil
}

// Upload copies a local artifact into the bucket under the file's base
// name (plus the configured prefix).
func (o *ObjectSink) Upload(ctx context.Context, path, contentType string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read artifact %s: %w", path, err)
	}

	key := o.prefix + filepath.Base(path)
	_, err = o.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(o.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to bucket %s: %w", key, o.bucket, err)
	}
	return nil
}
