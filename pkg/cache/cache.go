package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const (
	janitorInterval = 2 * time.Minute
	driverMemory    = "memory"
)

type entry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

func (e *entry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// LRUCache хранит сериализованные заказы в памяти процесса.
// Самый давно прочитанный ключ вытесняется при переполнении, просроченные удаляются при чтении и janitor'ом.
type LRUCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	order    *list.List
	items    map[string]*list.Element
	now      func() time.Time
}

func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		order:    list.New(),
		items:    make(map[string]*list.Element, capacity),
		now:      time.Now,
	}
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		cacheLookups.WithLabelValues(driverMemory, "miss").Inc()
		return nil, false
	}

	ent := el.Value.(*entry)
	if ent.expired(c.now()) {
		c.remove(el)
		cacheLookups.WithLabelValues(driverMemory, "expired").Inc()
		return nil, false
	}

	c.order.MoveToFront(el)
	cacheLookups.WithLabelValues(driverMemory, "hit").Inc()
	return ent.value, true
}

func (c *LRUCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		ent := el.Value.(*entry)
		ent.value, ent.expiresAt = value, expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&entry{key: key, value: value, expiresAt: expiresAt})
	cacheEntries.Inc()

	for c.order.Len() > c.capacity {
		c.remove(c.order.Back())
		cacheEvictions.Inc()
	}
}

// Delete вызывается после смены статуса, чтобы трекинг не отдал устаревший заказ.
func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.remove(el)
	}
}

func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *LRUCache) remove(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*entry).key)
	cacheEntries.Dec()
}

// Start launches the janitor; it stops with ctx.
func (c *LRUCache) Start(ctx context.Context) error {
	c.StartJanitor(ctx)
	return nil
}

func (c *LRUCache) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (c *LRUCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if el.Value.(*entry).expired(now) {
			c.remove(el)
		}
		el = prev
	}
}
