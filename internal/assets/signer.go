// Package assets derives time-limited download URLs for 3D model assets and
// manages their lifecycle in object storage. Every operation absorbs storage
// failures into a sentinel return (empty URL, false) with logging; nothing
// here returns an error to its caller.
package assets

import (
	"context"
	"os"
	"time"

	"github.com/carinspectinator/car-service/pkg/blobstore"
	"go.uber.org/zap"
)

const (
	// Models are stored as models/<volumeId>.usdz.
	modelPrefix = "models/"
	modelExt    = ".usdz"

	// ModelContentType is the registered media type of the USDZ payload.
	ModelContentType = "model/vnd.usdz+zip"

	// DefaultURLExpiration applies when no TTL is configured.
	DefaultURLExpiration = 24 * time.Hour
)

// ModelKey derives the storage key for a volumeId. The derivation is the
// only coupling between a catalog record and its 3D asset.
func ModelKey(volumeID string) string {
	return modelPrefix + volumeID + modelExt
}

// Signer signs and manages model assets in the configured bucket.
type Signer struct {
	bucket blobstore.Bucket
	log    *zap.Logger
	ttl    time.Duration
}

func New(bucket blobstore.Bucket, log *zap.Logger, ttl time.Duration) *Signer {
	if ttl <= 0 {
		ttl = DefaultURLExpiration
	}
	return &Signer{
		bucket: bucket,
		log:    log.Named("assets.signer"),
		ttl:    ttl,
	}
}

// SignModelURL returns a signed download URL for the volume's model, or ""
// when the volumeId is empty, the asset is absent, or signing fails.
func (s *Signer) SignModelURL(ctx context.Context, volumeID string) string {
	if volumeID == "" {
		return ""
	}
	return s.SignURL(ctx, ModelKey(volumeID), 0)
}

// SignURL signs a download URL for an asset key. A non-positive ttl falls
// back to the configured default.
func (s *Signer) SignURL(ctx context.Context, key string, ttl time.Duration) string {
	if ttl <= 0 {
		ttl = s.ttl
	}

	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		s.log.Error("asset existence check failed", zap.String("key", key), zap.Error(err))
		return ""
	}
	if !exists {
		s.log.Warn("asset does not exist", zap.String("key", key))
		return ""
	}

	url, err := s.bucket.SignedURL(key, ttl)
	if err != nil {
		s.log.Error("signing asset url failed", zap.String("key", key), zap.Error(err))
		return ""
	}

	s.log.Info("signed asset url", zap.String("key", key), zap.Duration("ttl", ttl))
	return url
}

// Upload stores a local model file under the volume's derived key. It fails
// fast when the local file cannot be found.
func (s *Signer) Upload(ctx context.Context, localPath, volumeID string) bool {
	if _, err := os.Stat(localPath); err != nil {
		s.log.Error("local model file not found", zap.String("path", localPath), zap.Error(err))
		return false
	}

	key := ModelKey(volumeID)
	if err := s.bucket.UploadFile(ctx, key, localPath, ModelContentType); err != nil {
		s.log.Error("model upload failed", zap.String("key", key), zap.Error(err))
		return false
	}

	s.log.Info("model uploaded", zap.String("key", key), zap.String("path", localPath))
	return true
}

// Delete removes the volume's model from storage.
func (s *Signer) Delete(ctx context.Context, volumeID string) bool {
	key := ModelKey(volumeID)
	if err := s.bucket.Delete(ctx, key); err != nil {
		s.log.Error("model delete failed", zap.String("key", key), zap.Error(err))
		return false
	}
	s.log.Info("model deleted", zap.String("key", key))
	return true
}

// Exists reports whether the volume's model is present in storage. A failed
// check reports false.
func (s *Signer) Exists(ctx context.Context, volumeID string) bool {
	exists, err := s.bucket.Exists(ctx, ModelKey(volumeID))
	if err != nil {
		s.log.Error("asset existence check failed", zap.String("key", ModelKey(volumeID)), zap.Error(err))
		return false
	}
	return exists
}
