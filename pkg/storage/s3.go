package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"trek-booking/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3 stores uploads in an S3-compatible bucket (AWS or MinIO via the
// endpoint override).
type S3 struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3(config utils.StorageConfig) (*S3, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			config.S3User,
			config.S3Password,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if config.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(config.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := strings.TrimRight(config.S3Endpoint, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", config.S3Bucket, config.S3Region)
	} else {
		baseURL = baseURL + "/" + config.S3Bucket
	}

	return &S3{
		client:  client,
		bucket:  config.S3Bucket,
		baseURL: baseURL,
	}, nil
}

func (s *S3) Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	key := ObjectKey(filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return s.baseURL + "/" + key, nil
}
