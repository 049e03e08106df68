package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds S3 client and bucket info for the s3 storage backend
type S3Config struct {
	Client     *s3.Client
	BucketName string
	Prefix     string
}

// NewS3Config initializes the S3 client from the shared AWS configuration
// chain (environment, shared config, instance role).
func NewS3Config(ctx context.Context, cfg *Config) (*S3Config, error) {
	if cfg.S3BucketName == "" {
		return nil, fmt.Errorf("S3 bucket name is not configured")
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.AWSRegion != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.AWSRegion))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &S3Config{
		Client:     s3.NewFromConfig(awsCfg),
		BucketName: cfg.S3BucketName,
		Prefix:     cfg.S3Prefix,
	}, nil
}

// CheckBucket verifies the bucket exists and is reachable with the
// configured credentials.
func (s *S3Config) CheckBucket(ctx context.Context) error {
	_, err := s.Client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.BucketName),
	})
	if err != nil {
		return fmt.Errorf("bucket %s is not reachable: %w", s.BucketName, err)
	}
	return nil
}
