package repository

import (
	bCtx "github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/base/database/mongoclient"
	"github.com/x-xyz/escrow/base/log"
	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/domain/config"
	"github.com/x-xyz/escrow/service/query"
)

// document is the stored form of the single marketplace config.
type document struct {
	Key                string `bson:"key"`
	config.Marketplace `bson:",inline"`
}

type configRepo struct {
	q query.Mongo
}

func NewConfigRepo(q query.Mongo) config.Repo {
	return &configRepo{q: q}
}

func (r *configRepo) Get(ctx bCtx.Ctx) (*config.Marketplace, error) {
	res := &document{}
	if err := r.q.FindOne(ctx, domain.TableMarketplace, config.DefaultId, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &res.Marketplace, nil
}

// Init stores m as the config. domain.ErrConflict if one already exists.
func (r *configRepo) Init(ctx bCtx.Ctx, m *config.Marketplace) error {
	doc := document{Key: config.DefaultId.Key, Marketplace: *m}
	if err := r.q.Insert(ctx, domain.TableMarketplace, doc); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"config": m,
			"err":    err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *configRepo) Patch(ctx bCtx.Ctx, patchable config.Patchable) error {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithFields(log.Fields{
			"patchable": patchable,
			"err":       err,
		}).Error("MakeBsonM failed")
		return err
	}
	if err := r.q.Patch(ctx, domain.TableMarketplace, config.DefaultId, updater); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"patchable": patchable,
			"err":       err,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
