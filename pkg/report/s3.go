package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Store persists finished reports.
type Store interface {
	Put(ctx context.Context, r *Report) (key string, err error)
}

// s3API is the slice of the S3 client the store uses.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store stores reports as JSON objects in an S3 bucket.
//
// Example usage:
//
//	client := s3.New(s3.Options{Region: cfg.Report.Region})
//	store := report.NewS3Store(client, cfg.Report.Bucket, cfg.Report.Prefix)
type S3Store struct {
	client s3API
	bucket string
	prefix string
}

// NewS3Store creates a new S3 report store.
func NewS3Store(client s3API, bucket, prefix string) *S3Store {
	return &S3Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Put uploads the report and returns its object key.
func (s *S3Store) Put(ctx context.Context, r *Report) (string, error) {
	if r.ID == "" {
		r.ID = NewID()
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}

	key := s.prefix + r.Time.UTC().Format("2006/01/02/") + r.ID + ".json"

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"source": r.Source,
		},
	})
	if err != nil {
		return "", fmt.Errorf("report upload failed: %w", err)
	}

	return key, nil
}
