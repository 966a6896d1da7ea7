package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrVersionConflict is returned by CompareAndSet when the stored version moved on.
var ErrVersionConflict = errors.New("kv version conflict")

// KVStore is the durable string key-value primitive behind carts and wishlists.
// Get reports found=false for a missing key without an error.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// VersionedKVStore is a KVStore that can make writes conditional, so two
// processes editing the same key cannot silently overwrite each other.
type VersionedKVStore interface {
	KVStore

	// GetVersioned returns the value with its version; a missing key has version 0.
	GetVersioned(ctx context.Context, key string) (value string, version int64, found bool, err error)

	// CompareAndSet writes value only if the stored version equals expected
	// (0 meaning the key was never written) and returns the new version.
	CompareAndSet(ctx context.Context, key, value string, expected int64) (int64, error)
}
