package cache

import (
	"errors"
	"time"
)

// Item represents a cache item with its value and metadata
type Item[T any] struct {
	Value      T
	Expiration *time.Time
}

// Cache interface defines the standard operations for a cache implementation
type Cache[T any] interface {
	// Set stores a value in the cache with an optional TTL
	// If ttl is 0, the item never expires
	Set(key string, value T, ttl time.Duration) error

	// Get retrieves a value from the cache
	// Returns ErrKeyNotFound if the key doesn't exist
	Get(key string) (T, error)

	// Has checks if a key exists in the cache
	Has(key string) bool

	// Delete removes a specific item from the cache
	Delete(key string) error

	// Clear removes all items from the cache
	Clear() error
}

// Common cache errors
var (
	ErrKeyNotFound  = errors.New("key not found in cache")
	ErrKeyExpired   = errors.New("key has expired")
	ErrInvalidTTL   = errors.New("invalid TTL value")
	ErrInvalidKey   = errors.New("invalid key")
	ErrInvalidValue = errors.New("invalid value")
)
