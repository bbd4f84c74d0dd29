package primitive

import (
	"testing"
	"time"

	"github.com/coocood/freecache"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/service/cache/provider"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im *impl
}

func (ts *testsuite) SetupTest() {
	ts.im = NewPrimitive("", 1, 0).(*impl)
}

func (ts *testsuite) TearDownTest() {
	ts.im.cache.Clear()
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	k := "key"
	v := []byte("value")

	ts.NoError(ts.im.Set(mockCtx, k, v, time.Second))
	r, e := ts.im.cache.Get([]byte(k))
	ts.NoError(e)
	ts.Equal(v, r)

	time.Sleep(1100 * time.Millisecond)
	_, e = ts.im.cache.Get([]byte(k))
	ts.Equal(freecache.ErrNotFound, e)
}

func (ts *testsuite) TestSetCapsTtl() {
	im := NewPrimitive("capped", 1, time.Second).(*impl)
	ts.NoError(im.Set(mockCtx, "key", []byte("v"), time.Hour))

	_, ttl, err := im.Get(mockCtx, "key")
	ts.NoError(err)
	ts.True(ttl <= time.Second, ttl)

	// no ttl is capped as well
	ts.NoError(im.Set(mockCtx, "forever", []byte("v"), 0))
	_, ttl, err = im.Get(mockCtx, "forever")
	ts.NoError(err)
	ts.True(ttl > 0 && ttl <= time.Second, ttl)
}

func (ts *testsuite) TestGet() {
	cases := []struct {
		Desc string
		Key  string
		Val  string
		Err  error
	}{
		{
			Desc: "Success",
			Key:  "key",
			Val:  "value",
			Err:  nil,
		},
		{
			Desc: "Not found",
			Err:  provider.ErrNotFound,
		},
	}

	for _, c := range cases {
		if len(c.Key) > 0 {
			ts.NoError(ts.im.cache.Set([]byte(c.Key), []byte(c.Val), 10), c.Desc)
		}

		v, ttl, e := ts.im.Get(mockCtx, c.Key)
		ts.Equal(c.Val, string(v), c.Desc)
		ts.Equal(c.Err, e, c.Desc)
		ts.True(ttl <= 10*time.Second, c.Desc)
	}
}

func (ts *testsuite) TestDel() {
	ts.NoError(ts.im.Set(mockCtx, "key", []byte("v"), time.Minute))
	ts.NoError(ts.im.Del(mockCtx, "key"))
	_, _, e := ts.im.Get(mockCtx, "key")
	ts.Equal(provider.ErrNotFound, e)
}
