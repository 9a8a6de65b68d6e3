// Package sqlite provides the public API for the SQLite task store while
// keeping implementation details internal.
package sqlite

import (
	"github.com/daylist-app/daylist/internal/sqlite"
	"github.com/daylist-app/daylist/pkg/types"
)

// Open creates the data directory if needed, opens the database described by
// cfg, and initializes the schema.
//
// Example:
//
//	store, err := sqlite.Open(types.Config{DataDir: ".daylist-db"})
//	if err != nil {
//	    // the store is unavailable; the application cannot function
//	}
//	defer store.Close()
func Open(cfg types.Config) (types.Store, error) {
	return sqlite.Open(cfg)
}
