package service

import (
	"context"
	"io"
)

// StoredImage identifies an uploaded item image.
type StoredImage struct {
	Key string // storage key, kept so the blob can be deleted later
	URL string // public URL served to clients
}

// ImageStore defines the interface for persisting item images in blob storage.
type ImageStore interface {
	// Save writes the image under a unique key derived from filename and
	// returns its storage identity.
	Save(ctx context.Context, filename, contentType string, body io.Reader) (*StoredImage, error)

	// Delete removes a previously stored image. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
