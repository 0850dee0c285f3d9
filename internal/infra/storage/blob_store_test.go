package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobImageStore_SaveAndDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobImageStore(bucket, "https://img.example.com/")

	stored, err := store.Save(ctx, "photo.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored.Key, "items/"))
	assert.True(t, strings.HasSuffix(stored.Key, ".png"))
	assert.Equal(t, "https://img.example.com/"+stored.Key, stored.URL)

	// The blob round-trips through the bucket.
	data, err := bucket.ReadAll(ctx, stored.Key)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	attrs, err := bucket.Attributes(ctx, stored.Key)
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	require.NoError(t, store.Delete(ctx, stored.Key))

	exists, err := bucket.Exists(ctx, stored.Key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobImageStore_SaveGeneratesUniqueKeys(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobImageStore(bucket, "https://img.example.com")

	first, err := store.Save(ctx, "photo.jpg", "image/jpeg", strings.NewReader("a"))
	require.NoError(t, err)

	second, err := store.Save(ctx, "photo.jpg", "image/jpeg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first.Key, second.Key)
}

func TestBlobImageStore_DeleteMissingKeyIsNoop(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobImageStore(bucket, "https://img.example.com")

	assert.NoError(t, store.Delete(ctx, "items/does-not-exist.png"))
	assert.NoError(t, store.Delete(ctx, ""))
}
