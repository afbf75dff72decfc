// Package notes implements the object-storage file gateway.
//
// It sits in front of an S3-compatible bucket and provides the operations
// the HTTP layer exposes: single-file upload, folder upload preserving
// relative paths, listing with case-insensitive search, single download and
// folder download as a zip archive.
//
// # Keys
//
// Every client-supplied name or path goes through SanitizeKey before it
// touches the backend: traversal segments are stripped, backslashes are
// normalized and whitespace runs become underscores. Keys are case-sensitive
// and unique within the bucket; uploads are rejected when the target key
// already exists.
//
// # Duplicate checks
//
// Uniqueness is enforced by a check-then-write sequence (StatObject before
// PutObject). Two concurrent uploads of the same key can both pass the check
// and race to the backend, where last-write-wins decides. This is a known,
// accepted limitation; see Service.UploadFile.
//
// # Errors
//
// All failures are classified into a small kind taxonomy (conflict, bad
// input, not found, storage) that the HTTP handlers map onto status codes.
// Batch uploads are not transactional: a mid-batch failure is reported as a
// BatchError carrying every key stored before the failure.
package notes
