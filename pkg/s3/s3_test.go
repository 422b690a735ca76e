package s3

import (
	"errors"
	"testing"

	"seminary/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestObjectBaseURL_MinIO(t *testing.T) {
	cfg := &config.Config{AWSEndpoint: "http://localhost:9000/", S3UseSSL: "false", S3BucketName: "materials"}
	assert.Equal(t, "http://localhost:9000/materials", objectBaseURL(cfg))

	cfg.S3UseSSL = "true"
	assert.Equal(t, "https://localhost:9000/materials", objectBaseURL(cfg))
}

func TestObjectBaseURL_AWS(t *testing.T) {
	cfg := &config.Config{AWSRegion: "ap-northeast-2", S3BucketName: "materials"}
	assert.Equal(t, "https://materials.s3.ap-northeast-2.amazonaws.com", objectBaseURL(cfg))

	cfg.AWSRegion = ""
	assert.Equal(t, "https://materials.s3.us-east-1.amazonaws.com", objectBaseURL(cfg))
}

func TestIsBucketOwned(t *testing.T) {
	assert.True(t, isBucketOwned(errors.New("BucketAlreadyOwnedByYou: yours")))
	assert.False(t, isBucketOwned(errors.New("AccessDenied")))
}
