package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blognest/blognest-cli/internal/client/config"
)

func stubS3(t *testing.T, putErr error) *s3.PutObjectInput {
	t.Helper()

	var captured s3.PutObjectInput

	origLoad, origNew, origPut := loadDefaultAWSConfig, newS3ClientFromConfig, putObject
	t.Cleanup(func() {
		loadDefaultAWSConfig, newS3ClientFromConfig, putObject = origLoad, origNew, origPut
	})

	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}
	putObject = func(_ *s3.Client, _ context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		captured = *in
		if putErr != nil {
			return nil, putErr
		}
		return &s3.PutObjectOutput{}, nil
	}

	return &captured
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.S3BaseEndpoint = "http://localhost:9000"
	cfg.S3Bucket = "blognest"
	cfg.S3AccessKey = "minio"
	cfg.S3SecretKey = "minio123"
	return cfg
}

func TestS3Uploader_Upload(t *testing.T) {
	captured := stubS3(t, nil)
	u := NewS3Uploader(testConfig())

	url, err := u.Upload(context.Background(), "cover.png", []byte("png-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "blognest", aws.ToString(captured.Bucket))
	assert.True(t, strings.HasPrefix(aws.ToString(captured.Key), "blogs/"))
	assert.True(t, strings.HasSuffix(aws.ToString(captured.Key), "/cover.png"))
	assert.Equal(t, "image/png", aws.ToString(captured.ContentType))

	body, err := io.ReadAll(captured.Body)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(body))

	assert.True(t, strings.HasPrefix(url, "http://localhost:9000/blognest/blogs/"))
	assert.True(t, strings.HasSuffix(url, "/cover.png"))
}

func TestS3Uploader_UploadUnknownExtension(t *testing.T) {
	captured := stubS3(t, nil)
	u := NewS3Uploader(testConfig())

	_, err := u.Upload(context.Background(), "blob.raw2", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", aws.ToString(captured.ContentType))
}

func TestS3Uploader_UploadError(t *testing.T) {
	stubS3(t, errors.New("bucket gone"))
	u := NewS3Uploader(testConfig())

	_, err := u.Upload(context.Background(), "cover.png", []byte("x"))
	require.Error(t, err)
}

func TestS3Uploader_DownloadURLWithoutEndpointIsVirtualHosted(t *testing.T) {
	cfg := testConfig()
	cfg.S3BaseEndpoint = ""
	u := NewS3Uploader(cfg)

	url := u.downloadURL("blogs/abc/cover.png")
	assert.Equal(t, "https://blognest.s3.us-east-1.amazonaws.com/blogs/abc/cover.png", url)
}

func TestStorageKey_UniquePerCall(t *testing.T) {
	a := storageKey("cover.png")
	b := storageKey("cover.png")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, "/cover.png"))
}
