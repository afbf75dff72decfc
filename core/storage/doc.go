// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the gateway needs: existence checks, uploads, streamed downloads
// and page-based listing. This abstraction supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Pagination
//
// ListObjectsV2 deliberately exposes the backend's continuation tokens
// instead of the minio channel API. Listing and archive building both need
// to walk every page of a prefix, and the page loop (chain NextToken while
// IsTruncated) is part of their contract, so the port surfaces it directly:
//
//	var token string
//	for {
//	    page, err := client.ListObjectsV2(ctx, bucket, prefix, token, 1000)
//	    ...
//	    if !page.IsTruncated {
//	        break
//	    }
//	    token = page.NextToken
//	}
//
// # Operations
//
//   - BucketExists / MakeBucket: startup bucket provisioning.
//   - PutObject: uploads content (with size and content type).
//   - GetObject: retrieves content as a stream.
//   - StatObject: metadata lookup, used for duplicate pre-flight checks.
//   - ListObjectsV2: one listing page with explicit continuation token.
package storage
