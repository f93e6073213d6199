package search

import (
	"fmt"
	"os"
	"sync"

	"github.com/blevesearch/bleve/v2"
)

// Handle owns one tenant's index and serializes its mutations. bleve
// always searches the latest committed generation, so there is no
// separate reader-reload step; Search, Browse and Stats still route
// through a single method each to keep that contract explicit at the
// call site.
type Handle struct {
	index bleve.Index
	mu    sync.Mutex
}

// openOrCreate opens the index rooted at path, creating it with the
// shared mapping if it does not already exist.
func openOrCreate(path string) (*Handle, error) {
	idx, err := bleve.Open(path)
	if err == nil {
		return &Handle{index: idx}, nil
	}

	if mkErr := os.MkdirAll(path, 0o755); mkErr != nil {
		return nil, fmt.Errorf("create index directory %q: %w", path, mkErr)
	}

	idx, err = bleve.New(path, buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index at %q: %w", path, err)
	}
	return &Handle{index: idx}, nil
}

// upsert deletes any existing document with the given id and adds doc
// as a single atomic batch.
func (h *Handle) upsert(docID string, doc map[string]interface{}) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	batch := h.index.NewBatch()
	batch.Delete(docID)
	if err := batch.Index(docID, doc); err != nil {
		return fmt.Errorf("build index batch entry: %w", err)
	}
	return h.index.Batch(batch)
}

// delete removes the document with the given id, if present. Deleting a
// missing id is not an error.
func (h *Handle) delete(docID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.index.Delete(docID)
}

// search executes req against the tenant's index.
func (h *Handle) search(req *bleve.SearchRequest) (*bleve.SearchResult, error) {
	return h.index.Search(req)
}

// docCount returns the tenant's current document count.
func (h *Handle) docCount() (uint64, error) {
	return h.index.DocCount()
}

// reopen closes and reopens the underlying index, forcing bleve to
// reconcile its on-disk state. Used by the reindex maintenance command.
func (h *Handle) reopen(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.index.Close(); err != nil {
		return fmt.Errorf("close index at %q: %w", path, err)
	}
	idx, err := bleve.Open(path)
	if err != nil {
		return fmt.Errorf("reopen index at %q: %w", path, err)
	}
	h.index = idx
	return nil
}

// close releases the underlying index's resources.
func (h *Handle) close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index.Close()
}
