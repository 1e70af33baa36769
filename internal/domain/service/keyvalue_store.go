package service

import "context"

// KeyValueStore is the persistence port for small per-user application state
// (favorites). Implementations exist for Redis and in-memory; swapping one in
// is a wiring decision, never an ambient global.
type KeyValueStore interface {
	// SetAdd adds a member to the set stored under key.
	SetAdd(ctx context.Context, key, member string) error

	// SetRemove removes a member from the set stored under key.
	SetRemove(ctx context.Context, key, member string) error

	// SetMembers returns all members of the set stored under key. A missing
	// key yields an empty slice, not an error.
	SetMembers(ctx context.Context, key string) ([]string, error)
}
