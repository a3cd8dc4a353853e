package blobstore

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"cloud.google.com/go/storage"
)

type gcsBucket struct {
	handle *storage.BucketHandle
}

// NewGCS adapts a GCS bucket handle to the Bucket interface.
func NewGCS(client *storage.Client, bucket string) Bucket {
	return &gcsBucket{handle: client.Bucket(bucket)}
}

func (b *gcsBucket) Exists(ctx context.Context, key string) (bool, error) {
	_, err := b.handle.Object(key).Attrs(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (b *gcsBucket) SignedURL(key string, ttl time.Duration) (string, error) {
	return b.handle.SignedURL(key, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(ttl),
	})
}

func (b *gcsBucket) UploadFile(ctx context.Context, key, localPath, contentType string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := b.handle.Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, f); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func (b *gcsBucket) Delete(ctx context.Context, key string) error {
	return b.handle.Object(key).Delete(ctx)
}
