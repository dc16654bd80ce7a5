// Package cache holds large derived objects that are expensive to rebuild
// between operations, such as parsed word lists and their anagram indexes.
// Cached objects must be treated as read-only once stored; every operation
// over them is idempotent, so caching is an optimization only.
package cache

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// LoadFunc builds the object for a key on a cache miss.
type LoadFunc func(key string) (interface{}, error)

type Cache struct {
	mu      sync.Mutex
	objects map[string]interface{}
}

func New() *Cache {
	return &Cache{objects: make(map[string]interface{})}
}

// Get returns the cached object for key, building and storing it with load
// on a miss. A failed load caches nothing.
func (c *Cache) Get(key string, load LoadFunc) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("cache hit")
		return obj, nil
	}
	log.Debug().Str("key", key).Msg("loading into cache")
	obj, err := load(key)
	if err != nil {
		return nil, err
	}
	c.objects[key] = obj
	return obj, nil
}

var global = New()

// Load fetches from the process-wide cache.
func Load(key string, load LoadFunc) (interface{}, error) {
	return global.Get(key, load)
}
