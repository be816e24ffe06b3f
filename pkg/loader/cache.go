package loader

import (
	"errors"
	"sync"

	"github.com/bft-labs/modbridge/pkg/log"
)

// Cache opens each library path once and shares the result.
// Several modules usually live in one shared object, so the dynamic host
// resolves them all through a single Cache.
type Cache struct {
	logger log.Logger

	mu   sync.Mutex
	libs map[string]*Library
}

// NewCache creates an empty cache.
func NewCache(logger log.Logger) *Cache {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Cache{
		logger: logger,
		libs:   make(map[string]*Library),
	}
}

// Open returns the library at path, loading it on first use.
func (c *Cache) Open(path string) (*Library, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if lib, ok := c.libs[path]; ok {
		return lib, nil
	}
	lib, err := Open(path)
	if err != nil {
		return nil, err
	}
	c.libs[path] = lib
	c.logger.Info("library loaded", log.String("path", path))
	return lib, nil
}

// Len returns the number of open libraries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.libs)
}

// Close closes every cached library and empties the cache.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	for path, lib := range c.libs {
		if err := lib.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(c.libs, path)
	}
	return errors.Join(errs...)
}
