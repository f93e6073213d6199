package search

import (
	"fmt"
	"path/filepath"
	"sync"
)

// Registry maps tenant id to its Handle, creating handles lazily on
// first access via double-checked locking. The map is append-only for
// the life of the process; there is no eviction.
type Registry struct {
	baseDir string
	mu      sync.RWMutex
	handles map[string]*Handle
}

// NewRegistry returns a Registry rooted at baseDir. baseDir must already
// exist and be writable; that is the caller's (bootstrap's)
// responsibility, not the registry's.
func NewRegistry(baseDir string) *Registry {
	return &Registry{
		baseDir: baseDir,
		handles: make(map[string]*Handle),
	}
}

// GetOrCreate resolves the handle for tenantID, creating the on-disk
// index directory and opening a new handle the first time any tenant is
// seen.
func (r *Registry) GetOrCreate(tenantID string) (*Handle, error) {
	r.mu.RLock()
	h, ok := r.handles[tenantID]
	r.mu.RUnlock()
	if ok {
		return h, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := r.handles[tenantID]; ok {
		return h, nil
	}

	path := r.indexPath(tenantID)
	h, err := openOrCreate(path)
	if err != nil {
		return nil, fmt.Errorf("open index for tenant %s: %w", tenantID, err)
	}

	r.handles[tenantID] = h
	return h, nil
}

// Reopen closes and reopens the handle for tenantID, if one is open.
// Used by the reindex maintenance command; it is not reachable from the
// HTTP surface.
func (r *Registry) Reopen(tenantID string) error {
	r.mu.RLock()
	h, ok := r.handles[tenantID]
	r.mu.RUnlock()
	if !ok {
		return nil
	}
	return h.reopen(r.indexPath(tenantID))
}

// Close closes every open handle. Called from the bootstrap's graceful
// shutdown path only.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for tenantID, h := range r.handles {
		if err := h.close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close index for tenant %s: %w", tenantID, err)
		}
	}
	return firstErr
}

func (r *Registry) indexPath(tenantID string) string {
	return filepath.Join(r.baseDir, tenantID, "index")
}
