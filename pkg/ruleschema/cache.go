package ruleschema

import (
	"container/list"
	"crypto/sha256"
	"sync"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type cacheEntry struct {
	key  [sha256.Size]byte
	rule validator.Rule
}

// Cache compiles schemas once and keeps the most recently used rule trees.
// Rule trees are immutable, so one compiled tree can serve concurrent runs.
type Cache struct {
	capacity int
	items    map[[sha256.Size]byte]*list.Element
	eviction *list.List
	mu       sync.Mutex
}

// NewCache creates a cache holding up to capacity compiled schemas.
// It panics if capacity is not positive.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		panic("ruleschema: cache capacity must be positive")
	}
	return &Cache{
		capacity: capacity,
		items:    make(map[[sha256.Size]byte]*list.Element),
		eviction: list.New(),
	}
}

// Compile returns the cached rule for data or compiles and stores it.
// Schemas that fail to compile are not cached.
func (c *Cache) Compile(data []byte) (validator.Rule, error) {
	key := sha256.Sum256(data)

	c.mu.Lock()
	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		rule := elem.Value.(*cacheEntry).rule
		c.mu.Unlock()
		return rule, nil
	}
	c.mu.Unlock()

	rule, err := Compile(data)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have compiled the same schema meanwhile.
	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*cacheEntry).rule, nil
	}
	c.items[key] = c.eviction.PushFront(&cacheEntry{key: key, rule: rule})
	if c.eviction.Len() > c.capacity {
		oldest := c.eviction.Back()
		c.eviction.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).key)
	}
	return rule, nil
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Clear drops every cached rule.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[[sha256.Size]byte]*list.Element)
	c.eviction.Init()
}
