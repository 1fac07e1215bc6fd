// Package redis persists per-user state (session, saved items,
// preferences, notification flags) as small JSON blobs and hashes. It is
// the server-side stand-in for browser localStorage, so every operation is
// a whole-value read or write.
package redis

import (
	"github.com/redis/go-redis/v9"
)

// Store handles Redis operations for user ledgers and sessions.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}
