package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/escrow/base/ctx"
)

// Forever means the key never expires.
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis: key not found")
	// ErrNoTTL is returned by TTL when the key has no expiry
	ErrNoTTL = errors.New("redis: key has no ttl")
	// ErrGapTime is returned when no pool serves the command
	ErrGapTime = errors.New("redis: no pool available")
	// ErrExpireNotExistOrTimeout is returned when EXPIRE did not apply
	ErrExpireNotExistOrTimeout = errors.New("redis: key does not exist or timeout could not be set")
	// ErrKeyExists is returned by SetNX when the key is already set
	ErrKeyExists = errors.New("redis: key already exists")
)

// Service is the subset of redis commands the escrow service uses.
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	// SetNX sets key only if it does not exist. ErrKeyExists otherwise.
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, keys ...string) (int, error)
	Expire(context ctx.Ctx, key string, ttl time.Duration) error
	Exists(context ctx.Ctx, key string) (bool, error)
	TTL(context ctx.Ctx, key string) (int, error)
	Ping(context ctx.Ctx) error

	GetConn() (redis.Conn, error)
	Name() string
}
