package blob

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/charafmezdari/portfolio/internal/common"
)

// S3Options configures the S3-compatible blob backend. BaseEndpoint allows
// pointing at MinIO or another non-AWS implementation.
type S3Options struct {
	RootUser     string
	RootPassword string
	Bucket       string
	Region       string
	BaseEndpoint string
}

// S3Store keeps blobs as objects in a single bucket, keyed by filename.
type S3Store struct {
	client *s3.Client
	bucket string
}

// NewS3Store builds a client with static credentials and an optional base
// endpoint override (MinIO-style deployments).
func NewS3Store(ctx context.Context, opts S3Options) (*S3Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.RootUser,
			opts.RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("s3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	return &S3Store{client: client, bucket: opts.Bucket}, nil
}

func (s *S3Store) Save(ctx context.Context, name string, r io.Reader) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &name,
		Body:   r,
	})
	if err != nil {
		return fmt.Errorf("s3 put: %w", err)
	}
	return nil
}

func (s *S3Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &name,
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("s3 get: %w", err)
	}
	return out.Body, nil
}
