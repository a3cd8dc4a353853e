package assets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBucket struct {
	objects map[string]string // key -> content type

	existsErr error
	signErr   error
	uploadErr error
	deleteErr error

	lastSignedTTL time.Duration
}

func newFakeBucket() *fakeBucket {
	return &fakeBucket{objects: map[string]string{}}
}

func (b *fakeBucket) Exists(ctx context.Context, key string) (bool, error) {
	if b.existsErr != nil {
		return false, b.existsErr
	}
	_, ok := b.objects[key]
	return ok, nil
}

func (b *fakeBucket) SignedURL(key string, ttl time.Duration) (string, error) {
	if b.signErr != nil {
		return "", b.signErr
	}
	b.lastSignedTTL = ttl
	return fmt.Sprintf("https://storage.example/%s?sig=abc", key), nil
}

func (b *fakeBucket) UploadFile(ctx context.Context, key, localPath, contentType string) error {
	if b.uploadErr != nil {
		return b.uploadErr
	}
	b.objects[key] = contentType
	return nil
}

func (b *fakeBucket) Delete(ctx context.Context, key string) error {
	if b.deleteErr != nil {
		return b.deleteErr
	}
	delete(b.objects, key)
	return nil
}

func TestModelKey(t *testing.T) {
	assert.Equal(t, "models/vw_golf_5_gti.usdz", ModelKey("vw_golf_5_gti"))
}

func TestSignModelURLReturnsSignedURL(t *testing.T) {
	bucket := newFakeBucket()
	bucket.objects["models/vw_golf_5_gti.usdz"] = ModelContentType
	signer := New(bucket, zap.NewNop(), time.Hour)

	url := signer.SignModelURL(context.Background(), "vw_golf_5_gti")
	assert.Equal(t, "https://storage.example/models/vw_golf_5_gti.usdz?sig=abc", url)
	assert.Equal(t, time.Hour, bucket.lastSignedTTL)
}

func TestSignModelURLEmptyVolumeID(t *testing.T) {
	bucket := newFakeBucket()
	signer := New(bucket, zap.NewNop(), time.Hour)

	assert.Equal(t, "", signer.SignModelURL(context.Background(), ""))
}

func TestSignModelURLMissingAsset(t *testing.T) {
	bucket := newFakeBucket()
	signer := New(bucket, zap.NewNop(), time.Hour)

	assert.Equal(t, "", signer.SignModelURL(context.Background(), "vw_golf_5_gti"))
}

func TestSignModelURLExistenceCheckFailure(t *testing.T) {
	bucket := newFakeBucket()
	bucket.existsErr = errors.New("storage unavailable")
	signer := New(bucket, zap.NewNop(), time.Hour)

	assert.Equal(t, "", signer.SignModelURL(context.Background(), "vw_golf_5_gti"))
}

func TestSignModelURLSigningFailure(t *testing.T) {
	bucket := newFakeBucket()
	bucket.objects["models/vw_golf_5_gti.usdz"] = ModelContentType
	bucket.signErr = errors.New("no signing key")
	signer := New(bucket, zap.NewNop(), time.Hour)

	assert.Equal(t, "", signer.SignModelURL(context.Background(), "vw_golf_5_gti"))
}

func TestSignURLDefaultTTL(t *testing.T) {
	bucket := newFakeBucket()
	bucket.objects["models/x.usdz"] = ModelContentType
	signer := New(bucket, zap.NewNop(), 0)

	signer.SignURL(context.Background(), "models/x.usdz", 0)
	assert.Equal(t, DefaultURLExpiration, bucket.lastSignedTTL)
}

func TestUpload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vw_golf_5_gti.usdz")
	require.NoError(t, os.WriteFile(path, []byte("usdz"), 0o644))

	bucket := newFakeBucket()
	signer := New(bucket, zap.NewNop(), time.Hour)

	assert.True(t, signer.Upload(context.Background(), path, "vw_golf_5_gti"))
	assert.Equal(t, ModelContentType, bucket.objects["models/vw_golf_5_gti.usdz"])
}

func TestUploadMissingLocalFile(t *testing.T) {
	bucket := newFakeBucket()
	signer := New(bucket, zap.NewNop(), time.Hour)

	ok := signer.Upload(context.Background(), filepath.Join(t.TempDir(), "absent.usdz"), "vw_golf_5_gti")
	assert.False(t, ok)
	assert.Empty(t, bucket.objects)
}

func TestDeleteAndExists(t *testing.T) {
	bucket := newFakeBucket()
	signer := New(bucket, zap.NewNop(), time.Hour)

	path := filepath.Join(t.TempDir(), "m.usdz")
	require.NoError(t, os.WriteFile(path, []byte("usdz"), 0o644))
	require.True(t, signer.Upload(context.Background(), path, "Toyota_Supra"))

	assert.True(t, signer.Exists(context.Background(), "Toyota_Supra"))
	assert.True(t, signer.Delete(context.Background(), "Toyota_Supra"))
	assert.False(t, signer.Exists(context.Background(), "Toyota_Supra"))
}

func TestExistsReportsFalseOnStorageFailure(t *testing.T) {
	bucket := newFakeBucket()
	bucket.existsErr = errors.New("storage unavailable")
	signer := New(bucket, zap.NewNop(), time.Hour)

	assert.False(t, signer.Exists(context.Background(), "Toyota_Supra"))
}
