package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ListPage is one page of a bucket listing. Callers chain pages by passing
// NextToken back in until IsTruncated is false.
type ListPage struct {
	Keys        []string
	NextToken   string
	IsTruncated bool
}

// Client defines the interface for storage operations.
type Client interface {
	// BucketExists checks if a bucket exists.
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	// MakeBucket creates a new bucket.
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	// PutObject uploads an object. Whether an existing key is overwritten is
	// backend-dependent; key uniqueness is enforced by callers via StatObject.
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	// GetObject downloads an object as a stream.
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	// StatObject returns object metadata, or an error with code NoSuchKey
	// when the key is absent.
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	// ListObjectsV2 returns a single listing page for the given prefix,
	// resuming from continuationToken when non-empty.
	ListObjectsV2(ctx context.Context, bucketName, prefix, continuationToken string, maxKeys int) (ListPage, error)
}

// IsNotFound reports whether err is the backend's missing-key error.
func IsNotFound(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}

// NewClient creates a new Minio client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Custom transport with strict timeouts so a dead backend fails fast
	// instead of hanging the request.
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	// Core exposes the low-level ListObjectsV2 call with explicit
	// continuation tokens; the high-level channel API hides pagination.
	core, err := minio.NewCore(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &minioClientWrapper{core: core}, nil
}

type minioClientWrapper struct {
	core *minio.Core
}

func (c *minioClientWrapper) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return c.core.Client.BucketExists(ctx, bucketName)
}

func (c *minioClientWrapper) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return c.core.Client.MakeBucket(ctx, bucketName, opts)
}

func (c *minioClientWrapper) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return c.core.Client.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
}

func (c *minioClientWrapper) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	return c.core.Client.GetObject(ctx, bucketName, objectName, opts)
}

func (c *minioClientWrapper) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	return c.core.Client.StatObject(ctx, bucketName, objectName, opts)
}

func (c *minioClientWrapper) ListObjectsV2(ctx context.Context, bucketName, prefix, continuationToken string, maxKeys int) (ListPage, error) {
	res, err := c.core.ListObjectsV2(bucketName, prefix, "", continuationToken, "", maxKeys)
	if err != nil {
		return ListPage{}, fmt.Errorf("list objects: %w", err)
	}

	page := ListPage{
		Keys:        make([]string, 0, len(res.Contents)),
		NextToken:   res.NextContinuationToken,
		IsTruncated: res.IsTruncated,
	}
	for _, obj := range res.Contents {
		page.Keys = append(page.Keys, obj.Key)
	}
	return page, nil
}
