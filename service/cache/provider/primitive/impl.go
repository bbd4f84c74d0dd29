package primitive

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/service/cache/provider"
)

var timeNow = time.Now

type impl struct {
	name   string
	maxTtl time.Duration
	cache  *freecache.Cache
}

// NewPrimitive creates an in-process cache of sizeMB megabytes. Entries live
// at most maxTtl, whatever ttl they are set with. Zero maxTtl means no cap.
func NewPrimitive(name string, sizeMB int, maxTtl time.Duration) provider.Provider {
	return &impl{
		name:   name,
		maxTtl: maxTtl,
		cache:  freecache.NewCache(sizeMB * 1024 * 1024),
	}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, expireAt, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Get failed")
		return nil, 0, err
	}
	if expireAt == 0 {
		return val, 0, nil
	}
	ttl := time.Unix(int64(expireAt), 0).Sub(timeNow())
	if ttl <= 0 {
		return nil, 0, provider.ErrNotFound
	}
	return val, ttl, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if im.maxTtl > 0 && (ttl <= 0 || ttl > im.maxTtl) {
		ttl = im.maxTtl
	}
	// freecache expiry is in whole seconds and 0 means never
	seconds := int(ttl / time.Second)
	if ttl > 0 && seconds == 0 {
		seconds = 1
	}
	if err := im.cache.Set([]byte(key), value, seconds); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
