package cache

import "time"

// NoopStore is a no-op implementation used when no cache path is configured.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) Get(_ string) ([]byte, bool, error)            { return nil, false, nil }
func (n *NoopStore) Put(_ string, _ []byte, _ time.Duration) error { return nil }
func (n *NoopStore) Prune() (int64, error)                         { return 0, nil }
func (n *NoopStore) Close() error                                  { return nil }
