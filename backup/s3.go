package backup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/accountapp/accountapp/config"
)

// ErrNoBucket is returned when uploads are requested without a bucket
var ErrNoBucket = errors.New("backup.s3_bucket is not set")

// S3Uploader puts backup artifacts into an S3 bucket
type S3Uploader struct {
	client *s3.Client
	bucket string
}

// NewS3Uploader builds a client from the default AWS credential chain
// (environment, shared config, instance role)
func NewS3Uploader(ctx context.Context, cfg config.BackupConfig) (*S3Uploader, error) {
	if cfg.S3Bucket == "" {
		return nil, ErrNoBucket
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.S3Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Uploader{client: client, bucket: cfg.S3Bucket}, nil
}

// Upload streams the file at localPath to key
func (u *S3Uploader) Upload(ctx context.Context, key, localPath string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open artifact: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat artifact: %w", err)
	}

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(info.Size()),
		ContentType:   aws.String(contentType(localPath)),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to s3: %w", err)
	}
	return nil
}

func contentType(p string) string {
	switch filepath.Ext(p) {
	case ".zip":
		return "application/zip"
	case ".db":
		return "application/vnd.sqlite3"
	default:
		return "application/octet-stream"
	}
}
