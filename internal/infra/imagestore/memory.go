package imagestore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/alyoshka-app/alyoshka/internal/domain/clubs"
)

// MemoryStore keeps post images in memory. Useful for tests and local dev.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string]storedBlob
}

type storedBlob struct {
	data     []byte
	mimeType string
}

// NewMemoryStore constructs the store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string]storedBlob)}
}

// Put stores the blob and returns its serving URL.
func (s *MemoryStore) Put(_ context.Context, key string, data []byte, mimeType string) (clubs.StoredImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = storedBlob{data: data, mimeType: mimeType}
	return clubs.StoredImage{
		Key:  key,
		URL:  "/api/media/" + key,
		Size: int64(len(data)),
	}, nil
}

// Get returns a reader for the stored blob and its mime type.
func (s *MemoryStore) Get(_ context.Context, key string) (io.ReadCloser, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[key]
	if !ok {
		return nil, "", fmt.Errorf("image not found")
	}
	return io.NopCloser(bytes.NewReader(blob.data)), blob.mimeType, nil
}

var _ clubs.ImageStore = (*MemoryStore)(nil)
