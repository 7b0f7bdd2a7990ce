// Package blob is the secondary core: a small LRU cache of Azure Storage blob clients, keyed by the
// connection the invocation asked for, plus the environment-variable probe that picks between a literal
// connection string and a managed-identity credential for building one.
package blob

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
)

// maxCacheSize resolves the spec's 5/10/100 inconsistency in favor of the largest documented value.
const maxCacheSize = 100

// CacheKey hashes the (connection, container, blob) triple a client is scoped to down to the first 16 hex
// characters of its SHA-256 digest, so the cache doesn't hold connection strings in memory as map keys.
func CacheKey(connection, container, blobName string) string {
	sum := sha256.Sum256([]byte(connection + "|" + container + "|" + blobName))
	return hex.EncodeToString(sum[:])[:16]
}

// Client is the subset of *azblob.Client the cache needs; kept as an interface so tests can stand in a fake
// without dialing a real storage account.
type Client interface{}

// Disposable is implemented by cached clients that hold resources worth releasing explicitly on eviction.
// *azblob.Client exposes none today, so eviction is a no-op for it in practice — but the cache still checks,
// since the spec's LRU is documented in terms of a dispose hook and a future client type may need it.
type Disposable interface {
	Dispose()
}

type entry struct {
	key    string
	client Client
}

// Cache is a process-wide, size-bounded LRU from CacheKey to a blob client. Put/Get/evict all happen under a
// single mutex: concurrent invocations in a parallel-threads runtime must serialize on it, exactly as the
// teacher serializes access to its own shared state.
type Cache struct {
	mu       sync.Mutex
	size     int
	ll       *list.List
	elements map[string]*list.Element
}

// NewCache builds an empty cache bounded at maxCacheSize.
func NewCache() *Cache {
	return &Cache{
		size:     maxCacheSize,
		ll:       list.New(),
		elements: make(map[string]*list.Element),
	}
}

// Get returns the cached client for key, if any, and marks it most-recently-used.
func (c *Cache) Get(key string) (Client, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.elements[key]
	if !ok {
		return nil, false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*entry).client, true
}

// Put inserts or refreshes key's client, evicting the least-recently-used entry and disposing it if the
// cache was already at capacity.
func (c *Cache) Put(key string, client Client) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.elements[key]; ok {
		c.ll.MoveToFront(el)
		el.Value.(*entry).client = client
		return
	}

	el := c.ll.PushFront(&entry{key: key, client: client})
	c.elements[key] = el

	if c.ll.Len() > c.size {
		c.evictOldest()
	}
}

// Len reports how many clients are currently cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (c *Cache) evictOldest() {
	oldest := c.ll.Back()
	if oldest == nil {
		return
	}
	c.ll.Remove(oldest)
	ev := oldest.Value.(*entry)
	delete(c.elements, ev.key)
	if d, ok := ev.client.(Disposable); ok {
		d.Dispose()
	}
}

// GetOrCreate returns the cached client for (connection, container, blobName), building one with factory on
// a miss. factory runs without the cache lock held, so concurrent misses for the same key may each invoke
// factory; the cache then keeps the client from the last Put.
func (c *Cache) GetOrCreate(connection, container, blobName string, factory func() (Client, error)) (Client, error) {
	key := CacheKey(connection, container, blobName)
	if client, ok := c.Get(key); ok {
		return client, nil
	}

	client, err := factory()
	if err != nil {
		return nil, fmt.Errorf("building blob client for %s/%s: %w", container, blobName, err)
	}
	c.Put(key, client)
	return client, nil
}
