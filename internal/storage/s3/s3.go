package s3

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "github.com/5w1tchy/nexus-admin/internal/config"
)

// DefaultExpiry is how long presigned URLs stay valid.
const DefaultExpiry = 15 * time.Minute

var ErrDisabled = errors.New("s3: storage not configured")

type S3Client struct {
	Client    *s3.Client
	Presigner *s3.PresignClient
	Bucket    string
	Expiry    time.Duration
}

// NewFromConfig initializes an S3-compatible client (R2, MinIO, AWS).
func NewFromConfig(ctx context.Context, c appconfig.S3Config) (*S3Client, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(c.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return newClient(cfg, c), nil
}

// NewStatic builds a client without touching the shared AWS config files.
func NewStatic(c appconfig.S3Config) *S3Client {
	cfg := aws.Config{
		Region:      c.Region,
		Credentials: credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, ""),
	}
	return newClient(cfg, c)
}

func newClient(cfg aws.Config, c appconfig.S3Config) *S3Client {
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
		o.UsePathStyle = false
	})
	return &S3Client{
		Client:    client,
		Presigner: s3.NewPresignClient(client),
		Bucket:    c.Bucket,
		Expiry:    DefaultExpiry,
	}
}

// PresignUpload creates a presigned PUT URL for direct upload.
func (s *S3Client) PresignUpload(ctx context.Context, objectKey, contentType string) (string, error) {
	req, err := s.Presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(objectKey),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(s.Expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return req.URL, nil
}

// PresignDownload creates a presigned GET URL.
func (s *S3Client) PresignDownload(ctx context.Context, objectKey string) (string, error) {
	req, err := s.Presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(s.Expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign download: %w", err)
	}
	return req.URL, nil
}
