// Package s3x implements the object-store uploader on the AWS SDK:
// multipart transfers with a bounded worker pool, server-side
// encryption, and per-entry storage classes.
package s3x

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/dmitrijs2005/freezeomatic/internal/config"
	"github.com/dmitrijs2005/freezeomatic/internal/freezer"
	"github.com/dmitrijs2005/freezeomatic/internal/logging"
)

// Client uploads staged artifacts to a single bucket. It satisfies
// freezer.Uploader.
type Client struct {
	uploader *manager.Uploader
	bucket   string
	log      logging.Logger
}

// NewClient builds the S3 client from configuration. Static
// credentials and a base endpoint override keep it usable against
// S3-compatible backends (MinIO and friends); with both left empty the
// SDK's default chain applies.
func NewClient(ctx context.Context, cfg *config.Config, log logging.Logger) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		if cfg.UploadConcurrency > 0 {
			u.Concurrency = cfg.UploadConcurrency
		}
	})

	return &Client{
		uploader: uploader,
		bucket:   cfg.Bucket,
		log:      log,
	}, nil
}

// Upload transfers a local artifact to the bucket under the given key,
// requesting AES-256 server-side encryption and the entry's storage
// class. Cumulative transfer progress is reported through the logger
// at debug level.
func (c *Client) Upload(ctx context.Context, localPath, key string, class freezer.StorageClass) error {
	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("open artifact: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat artifact: %w", err)
	}

	body := NewProgressReader(f, info.Size(), func(transferred, total int64) {
		c.log.Debug(ctx, "transfer progress",
			"key", key, "transferred", transferred, "total", total)
	})

	_, err = c.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:               aws.String(c.bucket),
		Key:                  aws.String(key),
		Body:                 body,
		ServerSideEncryption: types.ServerSideEncryptionAes256,
		StorageClass:         types.StorageClass(class),
	})
	if err != nil {
		return fmt.Errorf("upload %s to s3://%s/%s: %w", localPath, c.bucket, key, err)
	}
	return nil
}
