package driver

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

var ctx = context.Background()

// RedisClient .
type RedisClient struct {
	conn *redis.Client
}

// NewRedisClient create a redis client
func NewRedisClient(host string, port int, password string) *RedisClient {
	conn := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
	})
	return &RedisClient{
		conn: conn,
	}
}

// Set implement KeyValueDB, the key never expires
func (rdb *RedisClient) Set(key string, value string) error {
	return rdb.conn.Set(ctx, key, value, 0).Err()
}

// Get implement KeyValueDB
func (rdb *RedisClient) Get(key string) (string, error) {
	cmd := rdb.conn.Get(ctx, key)
	return cmd.Result()
}

// Ping check the connection
func (rdb *RedisClient) Ping() error {
	return rdb.conn.Ping(ctx).Err()
}

// IsNilError tell a missing key apart from a transport failure
func IsNilError(err error) bool {
	return err == redis.Nil
}
