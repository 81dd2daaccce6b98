package helpers

import (
	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes a redis client
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// Redis key builders. Kept in one place so the worker, the services, and
// the middleware agree on the namespace.

// KeySession is the per-user session hash written at login.
func KeySession(uid string) string { return "user:session:" + uid }

// KeyResetToken maps a password reset token to a user id.
func KeyResetToken(t string) string { return "pwd:reset:token:" + t }
