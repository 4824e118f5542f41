// Package metadata is the key/value table of the local sqlite file. The
// credential store keeps its slots here.
package metadata

import (
	"context"
)

// Repository reads and writes string values by key. Get reports whether the
// key exists; a missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
