package location

import (
	"context"
	"fmt"
	"sync"

	"github.com/helloakshay27/hi-society-backend-go/internal/domain/location"
)

type cacheKey struct {
	level    location.Level
	parentID int64
}

// catalogImpl caches location children per (level, parent id). The cache is
// shared by every checkpoint selector but holds options only; selection
// state belongs to the callers.
type catalogImpl struct {
	repo location.Repository

	mu       sync.Mutex
	children map[cacheKey][]location.Location
	inflight map[location.Level]int
}

func NewCatalog(repo location.Repository) location.Catalog {
	return &catalogImpl{
		repo:     repo,
		children: make(map[cacheKey][]location.Location),
		inflight: make(map[location.Level]int),
	}
}

// Children implements location.Catalog. Loads are idempotent per parent id:
// the repository is queried once and the cached list served afterwards.
// Failed loads are not cached, so the next call retries. Fetches for
// different parents may run concurrently; only the per-level in-flight
// counter and the cache map itself are guarded.
func (c *catalogImpl) Children(ctx context.Context, level location.Level, parentID int64) ([]location.Location, error) {
	if parentID <= 0 {
		return nil, location.ErrInvalidParentID
	}
	key := cacheKey{level: level, parentID: parentID}

	c.mu.Lock()
	if cached, ok := c.children[key]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.inflight[level]++
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inflight[level]--
		c.mu.Unlock()
	}()

	loaded, err := c.repo.Children(ctx, level, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s options: %w", level, err)
	}
	if loaded == nil {
		loaded = []location.Location{}
	}

	c.mu.Lock()
	// Another caller may have finished the same load first; keep whichever
	// list landed, they are identical reads.
	if cached, ok := c.children[key]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.children[key] = loaded
	c.mu.Unlock()

	return loaded, nil
}

// Loaded implements location.Catalog.
func (c *catalogImpl) Loaded(level location.Level, parentID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.children[cacheKey{level: level, parentID: parentID}]
	return ok
}

// Loading implements location.Catalog.
func (c *catalogImpl) Loading(level location.Level) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight[level] > 0
}
