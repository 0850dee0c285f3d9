// Package storage implements item image persistence on top of gocloud.dev
// blob buckets, so local disk and cloud object stores share one code path.
package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"campuskart/config"
	"campuskart/internal/domain/lifecycle"
	"campuskart/internal/domain/service"
	"campuskart/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers registered by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// blobImageStore implements service.ImageStore over a gocloud bucket.
type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// New opens the configured bucket and wires its lifetime into the app.
func New(params Params) (service.ImageStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobImageStore(bucket, cfg.PublicBaseURL), nil
}

// NewBlobImageStore wraps an already-open bucket. Split out from New so
// tests can inject an in-memory bucket.
func NewBlobImageStore(bucket *blob.Bucket, publicBaseURL string) service.ImageStore {
	return &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Save writes the image under a unique key derived from filename.
func (s *blobImageStore) Save(ctx context.Context, filename, contentType string, body io.Reader) (*service.StoredImage, error) {
	key := "items/" + uuid.NewString() + path.Ext(filename)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, body); err != nil {
		_ = writer.Close()

		return nil, errors.Wrap(err, "failed to write image")
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize image write")
	}

	return &service.StoredImage{
		Key: key,
		URL: s.publicBaseURL + "/" + key,
	}, nil
}

// Delete removes a previously stored image. Missing keys are ignored so
// callers can clean up without first checking existence.
func (s *blobImageStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}
