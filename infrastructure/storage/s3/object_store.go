package s3

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"muzac-backend/application/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// ObjectStore implements the object-store port on an S3 bucket.
type ObjectStore struct {
	client    *awss3.Client
	presigner *awss3.PresignClient
	bucket    string
	logger    *zap.Logger
}

// NewObjectStore creates a new ObjectStore for the bucket
func NewObjectStore(client *awss3.Client, bucket string, logger *zap.Logger) ports.ObjectStore {
	return &ObjectStore{
		client:    client,
		presigner: awss3.NewPresignClient(client),
		bucket:    bucket,
		logger:    logger,
	}
}

// Put writes an object, overwriting any existing one at the same key.
func (s *ObjectStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.logger.Error("Failed to put object",
			zap.String("bucket", s.bucket),
			zap.String("key", key),
			zap.Error(err),
		)
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}
	return nil
}

// ListKeys returns all object keys under the prefix.
func (s *ObjectStore) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	paginator := awss3.NewListObjectsV2Paginator(s.client, &awss3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			s.logger.Error("Failed to list objects",
				zap.String("bucket", s.bucket),
				zap.String("prefix", prefix),
				zap.Error(err),
			)
			return nil, fmt.Errorf("failed to list objects under %s: %w", prefix, err)
		}
		for _, obj := range page.Contents {
			if obj.Key != nil {
				keys = append(keys, *obj.Key)
			}
		}
	}

	return keys, nil
}

// PresignGet returns a time-limited read URL for the key.
func (s *ObjectStore) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, awss3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}
	return req.URL, nil
}
