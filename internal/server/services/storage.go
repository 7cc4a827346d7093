package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/instabids/internal/common"
	"github.com/dmitrijs2005/instabids/internal/server/config"
)

const presignExpiry = 15 * time.Minute

var (
	ErrUnknownBucket = errors.New("unknown bucket")
	ErrInvalidPath   = errors.New("invalid object path")
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}

	headObject = func(c *s3.Client, ctx context.Context, in *s3.HeadObjectInput) (*s3.HeadObjectOutput, error) {
		return c.HeadObject(ctx, in)
	}
)

// PresignedUpload is a one-shot PUT target and the URL the object will be
// served from once uploaded.
type PresignedUpload struct {
	UploadURL string
	PublicURL string
	Headers   map[string]string
}

// StorageService hands out presigned S3 uploads into the configured buckets.
// Objects live under "<user id>/" so users only write their own paths.
type StorageService struct {
	config *config.Config
}

func NewStorageService(cfg *config.Config) *StorageService {
	return &StorageService{config: cfg}
}

func (s *StorageService) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// PublicURL is where an object in bucket is served from.
func (s *StorageService) PublicURL(bucket, key string) string {
	return strings.TrimRight(s.config.S3PublicURL, "/") + "/" + bucket + "/" + key
}

func (s *StorageService) validate(userID, bucket, key string) error {
	if !slices.Contains(s.config.S3Buckets, bucket) {
		return fmt.Errorf("%w: %q", ErrUnknownBucket, bucket)
	}
	if key == "" || path.Clean(key) != key || strings.HasPrefix(key, "/") || strings.Contains(key, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidPath, key)
	}
	if !strings.HasPrefix(key, userID+"/") {
		return common.ErrorForbidden
	}
	return nil
}

// PresignUpload returns a presigned PUT for bucket/key. Without upsert an
// existing object is reported as common.ErrorAlreadyExists.
func (s *StorageService) PresignUpload(ctx context.Context, userID, bucket, key, contentType string, upsert bool) (*PresignedUpload, error) {
	if err := s.validate(userID, bucket, key); err != nil {
		return nil, err
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return nil, err
	}

	if !upsert {
		_, err := headObject(client, ctx, &s3.HeadObjectInput{Bucket: &bucket, Key: &key})
		if err == nil {
			return nil, common.ErrorAlreadyExists
		}
		var nf *types.NotFound
		if !errors.As(err, &nf) {
			return nil, fmt.Errorf("head object: %w", err)
		}
	}

	in := &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}
	headers := map[string]string{}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
		headers["Content-Type"] = contentType
	}

	req, err := presignPutObject(newS3PresignClient(client), ctx, in, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, err
	}

	return &PresignedUpload{
		UploadURL: req.URL,
		PublicURL: s.PublicURL(bucket, key),
		Headers:   headers,
	}, nil
}
