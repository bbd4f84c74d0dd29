package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "resolveGuard:abc", RedisKey(PfxResolveGuard, "abc"))
	assert.Equal(t, "a", RedisKey("a"))
}

func TestGetPrefix(t *testing.T) {
	assert.Equal(t, "", GetPrefix("single"))
	assert.Equal(t, "resolveGuard", GetPrefix("resolveGuard:abc"))
	assert.Equal(t, "a:b", GetPrefix("a:b:c:d"))
}
