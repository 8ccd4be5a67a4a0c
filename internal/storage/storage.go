// Package storage contains S3-compatible object storage used for student exports.
// Implementations stream from readers and never touch local disk.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"
)

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known, or -1 to let the backend chunk.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	// ContentDisposition is served back on plain GETs; see Attachment.
	ContentDisposition string
	CacheControl       string
	Metadata           map[string]string
}

// Attachment builds a Content-Disposition value that makes browsers save key under its base name.
func Attachment(key string) string {
	return fmt.Sprintf("attachment; filename=%q", path.Base(key))
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
	Metadata    map[string]string
}

// Storage is the object store surface the export service needs.
type Storage interface {
	// Put uploads an object under key from r.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL that needs no credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
