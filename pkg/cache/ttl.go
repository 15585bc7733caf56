package cache

import (
	"sync"
	"time"
)

// TTL é um cache chave-valor em memória com expiração por entrada. O
// relógio é injetável para que testes controlem a passagem do tempo.
type TTL[V any] struct {
	ttl time.Duration
	now func() time.Time

	mutex   sync.RWMutex
	entries map[string]entry[V]
}

type entry[V any] struct {
	value     V
	fetchedAt time.Time
}

func NewTTL[V any](ttl time.Duration) *TTL[V] {
	return &TTL[V]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry[V]),
	}
}

// NewTTLWithClock cria um cache com relógio customizado, para testes
func NewTTLWithClock[V any](ttl time.Duration, now func() time.Time) *TTL[V] {
	cache := NewTTL[V](ttl)
	cache.now = now
	return cache
}

// Get devolve o valor da chave quando presente e ainda não expirado
func (c *TTL[V]) Get(key string) (V, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	cached, ok := c.entries[key]
	if !ok || c.now().Sub(cached.fetchedAt) >= c.ttl {
		var zero V
		return zero, false
	}

	return cached.value, true
}

func (c *TTL[V]) Set(key string, value V) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = entry[V]{value: value, fetchedAt: c.now()}
}

func (c *TTL[V]) Delete(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.entries, key)
}
