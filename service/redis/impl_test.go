package redis

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/base/database/redisclient"
	"github.com/x-xyz/escrow/base/metrics"
	"github.com/x-xyz/escrow/domain/keys"
)

type redisSuite struct {
	suite.Suite

	ctx ctx.Ctx
	im  Service
}

func TestRedisSuite(t *testing.T) {
	if os.Getenv("REDIS_URI") == "" {
		t.Skip("REDIS_URI not set")
	}
	suite.Run(t, new(redisSuite))
}

func (s *redisSuite) SetupSuite() {
	pool := redisclient.MustConnectRedis(os.Getenv("REDIS_URI"), "")
	s.ctx = ctx.Background()
	s.im = New("test", metrics.New("redis"), &Pools{Src: pool})
}

func (s *redisSuite) TestSetGetDel() {
	key := keys.RedisKey(keys.PfxHealthCheck, "set-get")
	s.Require().NoError(s.im.Set(s.ctx, key, []byte("1"), 10*time.Second))

	val, err := s.im.Get(s.ctx, key)
	s.Require().NoError(err)
	s.Equal([]byte("1"), val)

	n, err := s.im.Del(s.ctx, key)
	s.Require().NoError(err)
	s.Equal(1, n)

	_, err = s.im.Get(s.ctx, key)
	s.ErrorIs(err, ErrNotFound)
}

func (s *redisSuite) TestSetNX() {
	key := keys.RedisKey(keys.PfxResolveGuard, "setnx")
	defer s.im.Del(s.ctx, key)

	s.Require().NoError(s.im.SetNX(s.ctx, key, []byte("a"), 10*time.Second))
	s.ErrorIs(s.im.SetNX(s.ctx, key, []byte("b"), 10*time.Second), ErrKeyExists)

	ttl, err := s.im.TTL(s.ctx, key)
	s.Require().NoError(err)
	s.True(ttl > 0)
}

func (s *redisSuite) TestPing() {
	s.NoError(s.im.Ping(s.ctx))
}

func TestNoPool(t *testing.T) {
	im := New("test", metrics.New("redis"), &Pools{})
	_, err := im.Get(ctx.Background(), "k")
	if err != ErrGapTime {
		t.Fatalf("want ErrGapTime, got %v", err)
	}
}
