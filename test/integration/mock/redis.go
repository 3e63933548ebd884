//go:build integration

package mock

import (
	"context"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Redis is a miniredis server with a connected client.
type Redis struct {
	Client *redis.Client
	server *miniredis.Miniredis
}

// NewRedis starts a miniredis server.
func NewRedis() (*Redis, error) {
	server, err := miniredis.Run()
	if err != nil {
		return nil, err
	}

	return &Redis{
		Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
		server: server,
	}, nil
}

// Clear drops every key.
func (r *Redis) Clear() error {
	return r.Client.FlushAll(context.TODO()).Err()
}

// FastForward advances miniredis' clock so keys with a TTL expire.
func (r *Redis) FastForward(d time.Duration) {
	r.server.FastForward(d)
}

// Close stops the server and the client.
func (r *Redis) Close() {
	_ = r.Client.Close()
	r.server.Close()
}
