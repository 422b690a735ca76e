package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"seminary/pkg/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Client stores lecture materials in an S3 bucket (or MinIO).
type Client struct {
	s3Client *s3.S3
	bucket   string
	baseURL  string
}

func NewClient(cfg *config.Config) (*Client, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.AWSRegion),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}

	// Support MinIO for local development
	if cfg.AWSEndpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.AWSEndpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		if cfg.S3UseSSL == "false" {
			awsConfig.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	client := &Client{
		s3Client: s3.New(sess),
		bucket:   cfg.S3BucketName,
		baseURL:  objectBaseURL(cfg),
	}

	// Ensure bucket exists (for MinIO)
	_, err = client.s3Client.HeadBucket(&s3.HeadBucketInput{
		Bucket: aws.String(cfg.S3BucketName),
	})
	if err != nil {
		_, err = client.s3Client.CreateBucket(&s3.CreateBucketInput{
			Bucket: aws.String(cfg.S3BucketName),
		})
		if err != nil && !isBucketOwned(err) {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.S3BucketName, err)
		}
	}

	return client, nil
}

func (c *Client) Put(ctx context.Context, key string, body io.ReadSeeker, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := c.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return c.baseURL + "/" + key, nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}
	return nil
}

// objectBaseURL is the URL prefix of public objects: path-style for MinIO,
// virtual-hosted style for AWS.
func objectBaseURL(cfg *config.Config) string {
	endpoint := cfg.AWSEndpoint
	if endpoint != "" && !strings.Contains(endpoint, "amazonaws.com") {
		protocol := "https"
		if cfg.S3UseSSL == "false" {
			protocol = "http"
		}
		endpoint = strings.TrimPrefix(endpoint, "http://")
		endpoint = strings.TrimPrefix(endpoint, "https://")
		return fmt.Sprintf("%s://%s/%s", protocol, strings.TrimRight(endpoint, "/"), cfg.S3BucketName)
	}

	region := cfg.AWSRegion
	if region == "" {
		region = "us-east-1"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3BucketName, region)
}

func isBucketOwned(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, s3.ErrCodeBucketAlreadyOwnedByYou) || strings.Contains(msg, s3.ErrCodeBucketAlreadyExists)
}
