// Package keyvalue provides the persistent key-value table backing the
// token store and the pending-profile blobs.
package keyvalue

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
