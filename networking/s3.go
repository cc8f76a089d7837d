package networking

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config contains minimal configuration for creating an S3 client.
// Empty values fall back to the standard AWS config/credential chain.
type S3Config struct {
	Region       string
	Profile      string
	UsePathStyle bool
}

// S3API is the subset of the S3 client used here
type S3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Transport fetches payloads from s3://bucket/key locations
type S3Transport struct {
	client S3API
}

// NewS3Transport creates an S3 transport using the default AWS configuration chain
func NewS3Transport(ctx context.Context, cfg S3Config) (*S3Transport, error) {
	var loadOpts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	c := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
	})
	return &S3Transport{client: c}, nil
}

// NewS3TransportWithClient wraps an existing client
func NewS3TransportWithClient(client S3API) *S3Transport {
	return &S3Transport{client: client}
}

// Fetch implements Transport
func (t *S3Transport) Fetch(ctx context.Context, target *url.URL) ([]byte, error) {
	bucket, key, err := splitS3Location(target)
	if err != nil {
		return nil, err
	}

	out, err := t.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := readPayload(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", bucket, key, err)
	}
	return data, nil
}

// Put uploads a JSON payload to bucket/key
func (t *S3Transport) Put(ctx context.Context, bucket, key string, body io.Reader) error {
	_, err := t.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to put s3://%s/%s: %w", bucket, key, err)
	}
	return nil
}

func splitS3Location(target *url.URL) (bucket, key string, err error) {
	bucket = target.Host
	key = strings.TrimPrefix(target.Path, "/")
	if bucket == "" || key == "" {
		return "", "", errors.New("s3 location needs a bucket and key: " + target.String())
	}
	return bucket, key, nil
}
