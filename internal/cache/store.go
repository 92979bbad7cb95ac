package cache

import "time"

// Store persists upstream API responses so repeated queries within the TTL
// window do not hit the remote source again.
type Store interface {
	// Get returns the payload for key if present and unexpired.
	Get(key string) (payload []byte, ok bool, err error)
	// Put stores a payload under key with the given lifetime.
	Put(key string, payload []byte, ttl time.Duration) error
	// Prune removes expired entries and reports how many were deleted.
	Prune() (int64, error)
	Close() error
}
