package storage

import (
	"context"
	"fmt"
)

// Open constructs a Store for the given driver name. Supported drivers are
// "sqlite", "file" and "memory"; path is ignored by the memory driver.
func Open(ctx context.Context, driver, path string) (Store, error) {
	switch driver {
	case "sqlite":
		return OpenSQLite(ctx, path)
	case "file":
		return NewFileStore(path), nil
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver: %q", driver)
	}
}
