// Package redis backs the devserver's login throttle. The throttle counters
// are the only data kept here; everything else lives in MongoDB.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout = 5 * time.Second
	clientName  = "storefront-devserver"
)

// Connect dials Redis and verifies connectivity with a ping. The throttle is
// load-bearing for login, so an unreachable Redis fails startup instead of
// surfacing on the first authentication attempt.
func Connect(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:       addr,
		DB:         db,
		ClientName: clientName,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	return client, nil
}
