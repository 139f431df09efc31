// binary.go - S3-backed binary store for uploaded files
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// errUploadsDisabled is returned when no bucket is configured.
var errUploadsDisabled = errors.New("file uploads are not configured")

// objectPutter is the slice of the S3 client the binary store needs.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// BinaryStore uploads files to an S3 bucket and hands back durable
// public download URLs.
type BinaryStore struct {
	client    objectPutter
	bucket    string
	publicURL string
}

// NewBinaryStore builds a binary store against the configured bucket.
// A non-empty endpoint enables path-style addressing for MinIO and
// similar S3-compatible stores.
func NewBinaryStore(ctx context.Context, cfg Config) (*BinaryStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.S3Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	var s3opts []func(*s3.Options)
	if cfg.S3Endpoint != "" {
		s3opts = append(s3opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		})
	}

	publicURL := cfg.S3PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &BinaryStore{
		client:    s3.NewFromConfig(awsCfg, s3opts...),
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload writes the file to the given path and returns its public URL.
// No retry, no progress: a failed upload fails the enclosing submit.
func (b *BinaryStore) Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(path),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put object: %w", err)
	}
	return b.publicURL + "/" + path, nil
}

// uploadPath builds the destination path for an upload. Uniqueness is
// only millisecond-grained, which is fine for one human admin.
func uploadPath(category, kind string) string {
	return fmt.Sprintf("%s/%s-%d", category, kind, time.Now().UnixMilli())
}
