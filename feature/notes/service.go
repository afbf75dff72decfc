package notes

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"file-gateway/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const defaultPageSize = 1000

// Upload is one incoming file, decoupled from the HTTP multipart layer so
// the service can be driven from tests and the CLI alike.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// FromMultipart adapts a multipart file header into an Upload.
func FromMultipart(fh *multipart.FileHeader) Upload {
	return Upload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Open:        func() (io.ReadCloser, error) { return fh.Open() },
	}
}

// Service orchestrates uploads, listing and archive building against the
// object store. It holds no state of its own; every operation is
// request-scoped.
type Service struct {
	client   storage.Client
	bucket   string
	logger   *zap.Logger
	pageSize int
}

// NewService creates a new gateway service.
func NewService(client storage.Client, bucket string, logger *zap.Logger, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Service{
		client:   client,
		bucket:   bucket,
		logger:   logger,
		pageSize: pageSize,
	}
}

// UploadFile stores one file and returns the key actually used. A blank
// customName derives the key from the file's own name. Callers must use the
// returned key, not the requested name, since sanitization may alter it.
//
// Uniqueness is check-then-write: StatObject followed by PutObject is not
// atomic, so two concurrent uploads of the same key can both pass the check,
// with the backend's last-write-wins deciding the outcome. Accepted
// limitation; the pre-flight handler check removes the common case.
func (s *Service) UploadFile(ctx context.Context, up Upload, customName string) (string, error) {
	name := strings.TrimSpace(customName)
	if name == "" {
		name = up.Name
	}

	key := SanitizeKey(name)
	if key == "" {
		return "", NewError(KindBadInput, "file name is empty")
	}

	exists, err := s.keyExists(ctx, key)
	if err != nil {
		return "", err
	}
	if exists {
		return "", NewError(KindConflict, fmt.Sprintf("name already taken: %s", key))
	}

	contentType := ResolveContentType(key, up.ContentType)

	body, err := up.Open()
	if err != nil {
		return "", WrapError(KindBadInput, fmt.Sprintf("open upload %s", key), err)
	}
	defer body.Close()

	if _, err := s.client.PutObject(ctx, s.bucket, key, body, up.Size, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return "", WrapError(KindStorage, fmt.Sprintf("store object %s", key), err)
	}

	s.logger.Info("Object stored",
		zap.String("key", key),
		zap.Int64("size", up.Size),
		zap.String("content_type", contentType),
	)
	return key, nil
}

// UploadBatch stores files sequentially, preserving the relative path given
// for each item (falling back to the item's own name when no path is
// supplied). It is not transactional: when item k fails, items 0..k-1 stay
// stored and the returned *BatchError lists their keys alongside the
// failing item and its cause.
func (s *Service) UploadBatch(ctx context.Context, ups []Upload, paths []string) ([]string, error) {
	uploaded := make([]string, 0, len(ups))

	for i, up := range ups {
		name := up.Name
		if i < len(paths) && strings.TrimSpace(paths[i]) != "" {
			name = paths[i]
		}

		key, err := s.UploadFile(ctx, up, name)
		if err != nil {
			return uploaded, &BatchError{
				Uploaded:    uploaded,
				FailedIndex: i,
				FailedName:  name,
				Cause:       err,
			}
		}
		uploaded = append(uploaded, key)
	}
	return uploaded, nil
}

// ObjectExists reports whether the sanitized form of name is already a key
// in the bucket. Used by the single-file pre-flight duplicate check.
func (s *Service) ObjectExists(ctx context.Context, name string) (bool, error) {
	return s.keyExists(ctx, SanitizeKey(name))
}

// AnyWithPrefixExists reports whether any key starts with the sanitized
// root capped by a single trailing slash. Used by the folder pre-flight
// duplicate check. The comparison is case-sensitive, matching key
// uniqueness semantics.
func (s *Service) AnyWithPrefixExists(ctx context.Context, root string) (bool, error) {
	prefix := strings.TrimRight(SanitizeKey(root), "/") + "/"

	page, err := s.client.ListObjectsV2(ctx, s.bucket, prefix, "", 1)
	if err != nil {
		return false, WrapError(KindStorage, fmt.Sprintf("list prefix %s", prefix), err)
	}
	return len(page.Keys) > 0, nil
}

// List enumerates every key in the bucket, chaining listing pages until the
// backend reports the result complete. A non-blank search keeps only keys
// containing it case-insensitively; backend ordering is preserved.
func (s *Service) List(ctx context.Context, search string) ([]string, error) {
	needle := strings.ToLower(strings.TrimSpace(search))
	keys := []string{}

	token := ""
	for {
		page, err := s.client.ListObjectsV2(ctx, s.bucket, "", token, s.pageSize)
		if err != nil {
			return nil, WrapError(KindStorage, "list bucket", err)
		}

		for _, key := range page.Keys {
			if needle == "" || strings.Contains(strings.ToLower(key), needle) {
				keys = append(keys, key)
			}
		}

		if !page.IsTruncated {
			return keys, nil
		}
		token = page.NextToken
	}
}

// Download opens the object stored under the sanitized form of name. The
// caller owns the returned stream and must close it.
func (s *Service) Download(ctx context.Context, name string) (io.ReadCloser, error) {
	key := SanitizeKey(name)
	if key == "" {
		return nil, NewError(KindBadInput, "object key is empty")
	}

	// minio's GetObject is lazy and only fails on first read, so stat first
	// to give callers a usable not-found.
	exists, err := s.keyExists(ctx, key)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, NewError(KindNotFound, fmt.Sprintf("no object with key %s", key))
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, WrapError(KindStorage, fmt.Sprintf("fetch object %s", key), err)
	}
	return obj, nil
}

// DownloadFolderAsZip builds a zip archive of every object under prefix and
// returns it as a single buffer. The prefix must already end with "/"; the
// handler boundary appends it. Entry names are the object keys with the
// prefix stripped; the bare prefix marker and empty relative paths are
// skipped. Objects are fetched strictly one at a time; the archive never
// holds more than one backend stream open.
//
// Any per-object failure aborts the build; no partial archive is returned.
func (s *Service) DownloadFolderAsZip(ctx context.Context, prefix string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	token := ""
	for {
		page, err := s.client.ListObjectsV2(ctx, s.bucket, prefix, token, s.pageSize)
		if err != nil {
			return nil, WrapError(KindStorage, fmt.Sprintf("archive build failed: list %s", prefix), err)
		}

		for _, key := range page.Keys {
			if key == prefix {
				continue
			}
			relativePath := key[len(prefix):]
			if relativePath == "" {
				continue
			}

			if err := s.addZipEntry(ctx, zw, key, relativePath); err != nil {
				return nil, err
			}
		}

		if !page.IsTruncated {
			break
		}
		token = page.NextToken
	}

	if err := zw.Close(); err != nil {
		return nil, WrapError(KindStorage, "archive build failed: finalize", err)
	}
	return buf.Bytes(), nil
}

func (s *Service) addZipEntry(ctx context.Context, zw *zip.Writer, key, relativePath string) error {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return WrapError(KindStorage, fmt.Sprintf("archive build failed: fetch %s", key), err)
	}
	defer obj.Close()

	entry, err := zw.Create(relativePath)
	if err != nil {
		return WrapError(KindStorage, fmt.Sprintf("archive build failed: entry %s", relativePath), err)
	}
	if _, err := io.Copy(entry, obj); err != nil {
		return WrapError(KindStorage, fmt.Sprintf("archive build failed: copy %s", key), err)
	}
	return nil
}

func (s *Service) keyExists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return false, nil
		}
		return false, WrapError(KindStorage, fmt.Sprintf("stat object %s", key), err)
	}
	return true, nil
}
