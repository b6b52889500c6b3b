package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolfdeveloper/wolfdevlovers/internal/common"
	sc "github.com/wolfdeveloper/wolfdevlovers/internal/server/config"
)

func testConfig() *sc.Config {
	c := &sc.Config{}
	c.LoadDefaults()
	return c
}

func stubAWS(t *testing.T) {
	t.Helper()
	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	origPut := putObject
	origGet := getObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
		putObject = origPut
		getObject = origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}
}

func TestS3Store_Put(t *testing.T) {
	stubAWS(t)

	var gotBucket, gotKey, gotContentType, gotBody string
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		gotBucket = aws.ToString(in.Bucket)
		gotKey = aws.ToString(in.Key)
		gotContentType = aws.ToString(in.ContentType)
		b, _ := io.ReadAll(in.Body)
		gotBody = string(b)
		return &s3.PutObjectOutput{}, nil
	}

	s := NewS3Store(testConfig())
	err := s.Put(context.Background(), "profiles/abc123/profile.png", "image/png", []byte("png bytes"))
	require.NoError(t, err)

	assert.Equal(t, "lovers", gotBucket)
	assert.Equal(t, "profiles/abc123/profile.png", gotKey)
	assert.Equal(t, "image/png", gotContentType)
	assert.Equal(t, "png bytes", gotBody)
}

func TestS3Store_Get(t *testing.T) {
	stubAWS(t)

	getObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
		return &s3.GetObjectOutput{
			Body:        io.NopCloser(strings.NewReader("png bytes")),
			ContentType: aws.String("image/png"),
		}, nil
	}

	s := NewS3Store(testConfig())
	data, contentType, err := s.Get(context.Background(), "profiles/abc123/profile.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png bytes"), data)
	assert.Equal(t, "image/png", contentType)
}

func TestS3Store_GetMissingKey(t *testing.T) {
	stubAWS(t)

	getObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
		return nil, &types.NoSuchKey{}
	}

	s := NewS3Store(testConfig())
	_, _, err := s.Get(context.Background(), "profiles/nope/profile.png")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestS3Store_PutConfigError(t *testing.T) {
	stubAWS(t)

	wantErr := errors.New("no credentials")
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, wantErr
	}

	s := NewS3Store(testConfig())
	err := s.Put(context.Background(), "k", "image/png", nil)
	assert.True(t, errors.Is(err, wantErr))
}
