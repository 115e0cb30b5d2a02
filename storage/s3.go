package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/SciSaif/seller-app/pkg/apperr"
)

// S3Resolver issues presigned GET URLs for objects in a single bucket.
type S3Resolver struct {
	presign *s3.PresignClient
	bucket  string
	expiry  time.Duration
}

func NewS3Resolver(ctx context.Context, region, bucket string, expiry time.Duration) (*S3Resolver, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return &S3Resolver{
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
		expiry:  expiry,
	}, nil
}

func (r *S3Resolver) Resolve(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("resolve asset: empty path: %w", apperr.ErrNoRecordFound)
	}
	out, err := r.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(path),
	}, s3.WithPresignExpires(r.expiry))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", path, err)
	}
	return out.URL, nil
}
