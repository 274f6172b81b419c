package storage

import (
	"fmt"

	"github.com/go-redis/redis"
	"github.com/takimet-io/takimet/pkg/config"
)

// NewRedis connects to the Redis instance backing the refresh token ledger.
// The connection is verified with a ping so a bad address fails at startup
// instead of on the first sign in.
func NewRedis(c config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", c.Host, c.Port),
	})

	if _, err := client.Ping().Result(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %v", err)
	}

	return client, nil
}
