package repositories

import (
	"github.com/dgraph-io/badger/v4"
)

// OpenDB opens the badger store at path with the tuning used across the
// application. Badger's own logger is silenced; request-level logging
// happens in the HTTP layer.
func OpenDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithSyncWrites(false).
		WithNumVersionsToKeep(1).
		WithNumGoroutines(1)
	return badger.Open(opts)
}
