package querycache

import (
	"context"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Keys de queries conocidas. Cada pantalla lee su colección por key;
// el resultado se reemplaza entero en cada fetch, nunca se mergea.
const (
	KeyAccessGrants   = "accessGrants"
	KeyAccessRequests = "accessRequests"
	KeyFiles          = "files"
)

// FetchFunc trae la colección fresca desde el backend.
type FetchFunc func(ctx context.Context) (any, error)

// Cache es el handle explícito de queries del cliente: fetchers
// registrados por key, invalidación manual y tracking de mutations
// en vuelo (para el loading indicator).
type Cache struct {
	mu       sync.Mutex
	data     *gocache.Cache
	fetchers map[string]FetchFunc
	inflight map[string]int
}

func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &Cache{
		data:     gocache.New(ttl, 10*time.Minute),
		fetchers: make(map[string]FetchFunc),
		inflight: make(map[string]int),
	}
}

// Register asocia el fetcher de una key. El último registro gana.
func (c *Cache) Register(key string, fn FetchFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchers[key] = fn
}

// Get devuelve el valor cacheado, o hace fetch si no hay nada.
func (c *Cache) Get(ctx context.Context, key string) (any, error) {
	if v, ok := c.data.Get(key); ok {
		return v, nil
	}
	return c.Refetch(ctx, key)
}

// Refetch siempre va al backend y reemplaza lo cacheado entero.
func (c *Cache) Refetch(ctx context.Context, key string) (any, error) {
	c.mu.Lock()
	fn, ok := c.fetchers[key]
	c.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("querycache: no fetcher for %q", key)
	}

	v, err := fn(ctx)
	if err != nil {
		return nil, err
	}
	c.data.SetDefault(key, v)
	return v, nil
}

// Invalidate descarta lo cacheado; el próximo Get refetchea.
func (c *Cache) Invalidate(key string) {
	c.data.Delete(key)
}

// Clear tira todo el cache (logout).
func (c *Cache) Clear() {
	c.data.Flush()
}

// Begin marca una mutation en vuelo bajo un tag; el done devuelto
// la cierra. Siempre llamar done, también en error.
func (c *Cache) Begin(tag string) (done func()) {
	c.mu.Lock()
	c.inflight[tag]++
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			if c.inflight[tag] > 0 {
				c.inflight[tag]--
			}
			c.mu.Unlock()
		})
	}
}

// InFlight responde si hay alguna mutation activa bajo el tag.
func (c *Cache) InFlight(tag string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight[tag] > 0
}
