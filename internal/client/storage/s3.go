// Package storage uploads blog cover images to an S3-compatible object
// store and returns the download URL used as the blog's image field.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/blognest/blognest-cli/internal/client/config"
)

// Seams for tests: the AWS calls are reached through package-level
// function variables so tests can stub them without a live bucket.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}
)

// S3Uploader stores image blobs under the configured bucket. Works
// against AWS S3 or a MinIO endpoint (S3BaseEndpoint set).
type S3Uploader struct {
	cfg *config.Config
}

func NewS3Uploader(cfg *config.Config) *S3Uploader {
	return &S3Uploader{cfg: cfg}
}

// storageKey namespaces uploads by a fresh UUID so identical filenames
// never collide.
func storageKey(filename string) string {
	return fmt.Sprintf("blogs/%s/%s", uuid.NewString(), filepath.Base(filename))
}

func (u *S3Uploader) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(u.cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			u.cfg.S3AccessKey,
			u.cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if u.cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(u.cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})
	return client, nil
}

// Upload stores the blob keyed by filename and returns its download URL.
func (u *S3Uploader) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	client, err := u.getClient(ctx)
	if err != nil {
		return "", fmt.Errorf("s3 client: %w", err)
	}

	key := storageKey(filename)
	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.S3Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	return u.downloadURL(key), nil
}

func (u *S3Uploader) downloadURL(key string) string {
	if u.cfg.S3BaseEndpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(u.cfg.S3BaseEndpoint, "/"), u.cfg.S3Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.cfg.S3Bucket, u.cfg.S3Region, key)
}
