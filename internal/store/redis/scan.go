package redis

import (
	"context"
	"fmt"
	"strings"
)

// Users lists the users that currently hold a key under the given prefix.
// It walks the keyspace with SCAN so large deployments never block Redis.
func (s *Store) Users(ctx context.Context, prefix string) ([]string, error) {
	var users []string

	iter := s.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		users = append(users, strings.TrimPrefix(iter.Val(), prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan keys: %w", err)
	}

	return users, nil
}
