package storage

import (
	"errors"
	"fmt"

	"pos_terminal/pkg/utils"
)

var (
	// ErrKeyNotFound is returned by Read when no value exists for the key.
	ErrKeyNotFound = errors.New("key not found in store")
)

// Store is the persistent store adapter: durable key-value read/write of
// serialized state. It abstracts over synchronous backends (bbolt file)
// and networked ones (redis); callers treat both uniformly.
type Store interface {
	Read(key string) (string, error)
	Write(key, value string) error
	Close() error
}

// Open selects and opens a backend from environment configuration.
// STORE_BACKEND=bolt (default) uses a local file under STORE_PATH;
// STORE_BACKEND=redis connects to REDIS_ADDR.
func Open() (Store, error) {
	backend := utils.Getenv("STORE_BACKEND", "bolt")
	switch backend {
	case "bolt":
		path := utils.Getenv("STORE_PATH", "terminal.db")
		return OpenBolt(path)
	case "redis":
		addr := utils.Getenv("REDIS_ADDR", "localhost:6379")
		return OpenRedis(addr)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
