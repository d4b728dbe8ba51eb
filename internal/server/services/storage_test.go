package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"

	sc "github.com/srstalent/talentconnect/internal/server/config"
)

func testStorageConfig() *sc.Config {
	return &sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "admin",
		S3RootPassword: "secret",
		S3BaseEndpoint: "http://127.0.0.1:9000/",
		PublicBaseURL:  "http://127.0.0.1:9000/",
	}
}

func TestStorageService_Upload(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	origPut := putObject
	defer func() {
		loadDefaultAWSConfig = origLoad
		putObject = origPut
	}()

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}

	var gotBucket, gotKey, gotContentType, gotBody string
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		gotBucket = aws.ToString(in.Bucket)
		gotKey = aws.ToString(in.Key)
		gotContentType = aws.ToString(in.ContentType)
		b, err := io.ReadAll(in.Body)
		require.NoError(t, err)
		gotBody = string(b)
		return &s3.PutObjectOutput{}, nil
	}

	s := NewStorageService(testStorageConfig())
	url, err := s.Upload(context.Background(), "resumes", "u1_1700000000.pdf", "application/pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:9000/resumes/u1_1700000000.pdf", url)
	require.Equal(t, "resumes", gotBucket)
	require.Equal(t, "u1_1700000000.pdf", gotKey)
	require.Equal(t, "application/pdf", gotContentType)
	require.Equal(t, "%PDF-1.4", gotBody)
}

func TestStorageService_UploadPutError(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	origPut := putObject
	defer func() {
		loadDefaultAWSConfig = origLoad
		putObject = origPut
	}()

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return nil, errors.New("boom")
	}

	s := NewStorageService(testStorageConfig())
	_, err := s.Upload(context.Background(), "resumes", "k", "application/pdf", strings.NewReader("x"))
	require.Error(t, err)
}

func TestStorageService_UploadConfigError(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	defer func() { loadDefaultAWSConfig = origLoad }()

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no credentials")
	}

	s := NewStorageService(testStorageConfig())
	_, err := s.Upload(context.Background(), "resumes", "k", "application/pdf", strings.NewReader("x"))
	require.Error(t, err)
}

func TestStorageService_ObjectURLTrimsSlash(t *testing.T) {
	s := NewStorageService(testStorageConfig())
	require.Equal(t, "http://127.0.0.1:9000/profile-pics/a.png", s.ObjectURL("profile-pics", "a.png"))
}
