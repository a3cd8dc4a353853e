// Package blobstore narrows the object-storage client to the operations the
// asset signer uses: existence check, V4 signed download URL, upload from a
// local file, and delete.
package blobstore

import (
	"context"
	"time"
)

type Bucket interface {
	Exists(ctx context.Context, key string) (bool, error)
	// SignedURL produces a time-limited GET URL for the object at key.
	SignedURL(key string, ttl time.Duration) (string, error)
	UploadFile(ctx context.Context, key, localPath, contentType string) error
	Delete(ctx context.Context, key string) error
}
