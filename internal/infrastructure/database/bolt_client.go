package database

import (
	"time"

	bolt "go.etcd.io/bbolt"
)

// OpenBoltDB opens (or creates) the local database file that holds the
// working copy of every collection plus the durable sync queue.
//
// Supported env vars:
//   - LOCAL_STORE_PATH (default: invoicing.db)
func OpenBoltDB() (*bolt.DB, error) {
	path := getenvDefault("LOCAL_STORE_PATH", "invoicing.db")
	return bolt.Open(path, 0o600, &bolt.Options{Timeout: 5 * time.Second})
}
