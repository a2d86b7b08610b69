package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"restaurant-analytics/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads the same two JSON collections as FileSource from a bucket.
type S3Source struct {
	client ObjectGetter
	bucket string
	prefix string
}

func NewS3Source(client ObjectGetter, bucket, prefix string) *S3Source {
	return &S3Source{client: client, bucket: bucket, prefix: prefix}
}

func (s *S3Source) Load(ctx context.Context) (*domain.Snapshot, error) {
	restaurants, err := s.fetch(ctx, RestaurantsFile)
	if err != nil {
		return nil, &domain.LoadError{Source: "s3", Err: err}
	}
	orders, err := s.fetch(ctx, OrdersFile)
	if err != nil {
		return nil, &domain.LoadError{Source: "s3", Err: err}
	}

	snapshot, err := decodeSnapshot(restaurants, orders)
	if err != nil {
		return nil, &domain.LoadError{Source: "s3", Err: err}
	}
	return snapshot, nil
}

func (s *S3Source) fetch(ctx context.Context, name string) ([]byte, error) {
	key := path.Join(s.prefix, name)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", s.bucket, key, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read s3://%s/%s: %w", s.bucket, key, err)
	}
	return body, nil
}
