package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/base/database/mongoclient"
	hcdomain "github.com/x-xyz/escrow/domain/healthcheck"
	"github.com/x-xyz/escrow/service/redis"
)

const pingTimeout = 2 * time.Second

type impl struct {
	mgoClient *mongoclient.Client
	redis     redis.Service
}

func New(
	mgoClient *mongoclient.Client,
	redis redis.Service,
) hcdomain.HealthCheckRepo {
	return &impl{
		mgoClient: mgoClient,
		redis:     redis,
	}
}

func (im *impl) PingDB(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.mgoClient.Ping(ctx, readpref.Primary()); err != nil {
		context.WithField("err", err).Error("ping mongo error")
		return err
	}
	return nil
}

func (im *impl) PingCache(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.redis.Ping(ctx); err != nil {
		context.WithField("err", err).Error("ping redis error")
		return err
	}
	return nil
}
