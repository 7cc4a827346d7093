package services

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/instabids/internal/client/client"
	"github.com/dmitrijs2005/instabids/internal/logging"
	"github.com/dmitrijs2005/instabids/internal/netx"
)

var ErrInvalidObjectPath = errors.New("bucket and path are required")

// Presigner hands out one-shot upload targets.
type Presigner interface {
	PresignUpload(ctx context.Context, bucket, path, contentType string, upsert bool) (*client.PresignedUpload, error)
}

// UploadOptions mirror the storage API: Upsert overwrites an existing
// object, ContentType is sniffed from the data when empty.
type UploadOptions struct {
	Upsert      bool
	ContentType string
}

// MediaService uploads user images (avatars, auction photos) to object
// storage.
type MediaService interface {
	UploadImage(ctx context.Context, bucket, path string, r io.Reader, opts UploadOptions) (string, error)
}

type mediaService struct {
	presigner Presigner
	http      *http.Client
	logger    logging.Logger
}

func NewMediaService(presigner Presigner, httpClient *http.Client, logger logging.Logger) MediaService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &mediaService{presigner: presigner, http: httpClient, logger: logger}
}

// UploadImage stores r at bucket/path and returns the object's public URL.
func (s *mediaService) UploadImage(ctx context.Context, bucket, path string, r io.Reader, opts UploadOptions) (string, error) {
	path = strings.TrimPrefix(path, "/")
	if bucket == "" || path == "" {
		return "", ErrInvalidObjectPath
	}

	contentType := opts.ContentType
	if contentType == "" {
		br := bufio.NewReader(r)
		head, err := br.Peek(512)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
			return "", fmt.Errorf("failed to read image: %w", err)
		}
		contentType = http.DetectContentType(head)
		r = br
	}

	target, err := s.presigner.PresignUpload(ctx, bucket, path, contentType, opts.Upsert)
	if err != nil {
		s.logger.Error(ctx, "failed to presign upload", "bucket", bucket, "path", path, "error", err)
		return "", err
	}

	if err := netx.PutPresigned(ctx, s.http, target.UploadURL, r, contentType, target.Headers); err != nil {
		s.logger.Error(ctx, "image upload failed", "bucket", bucket, "path", path, "error", err)
		return "", err
	}

	s.logger.Info(ctx, "image uploaded", "bucket", bucket, "path", path, "content_type", contentType)
	return target.PublicURL, nil
}
