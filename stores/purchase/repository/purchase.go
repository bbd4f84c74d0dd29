package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/base/database/mongoclient"
	"github.com/x-xyz/escrow/base/log"
	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/domain/purchase"
	"github.com/x-xyz/escrow/service/query"
)

type purchaseRepo struct {
	q query.Mongo
}

func NewPurchaseRepo(q query.Mongo) purchase.Repo {
	return &purchaseRepo{q: q}
}

func (r *purchaseRepo) Insert(ctx bCtx.Ctx, p *purchase.Purchase) error {
	if err := r.q.Insert(ctx, domain.TablePurchases, p); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"purchase": p,
			"err":      err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *purchaseRepo) FindOne(ctx bCtx.Ctx, id purchase.Id) (*purchase.Purchase, error) {
	res := &purchase.Purchase{}
	if err := r.q.FindOne(ctx, domain.TablePurchases, id, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (r *purchaseRepo) FindAll(ctx bCtx.Ctx, optsFns ...purchase.FindAllOptionsFunc) ([]*purchase.Purchase, error) {
	opts, err := purchase.GetFindAllOptions(optsFns...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"optsFns": optsFns,
			"err":     err,
		}).Error("purchase.GetFindAllOptions failed")
		return nil, err
	}
	var (
		offset int = 0
		limit  int = 0
	)
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}
	qry := bson.M{}
	if opts.Buyer != nil {
		qry["buyer"] = *opts.Buyer
	}
	if opts.State != nil {
		qry["state"] = *opts.State
	}
	if opts.UpdatedBefore != nil {
		qry["updatedAt"] = bson.M{"$lt": *opts.UpdatedBefore}
	}
	res := []*purchase.Purchase{}
	if err := r.q.Search(ctx, domain.TablePurchases, offset, limit, "updatedAt", qry, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *purchaseRepo) Remove(ctx bCtx.Ctx, id purchase.Id) error {
	if err := r.q.Remove(ctx, domain.TablePurchases, id); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("q.Remove failed")
		return err
	}
	return nil
}

// Transition is a compare-and-set on the purchase state: of two concurrent
// transitions out of the same state exactly one succeeds.
func (r *purchaseRepo) Transition(ctx bCtx.Ctx, id purchase.Id, from purchase.State, patchable purchase.Patchable) error {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithFields(log.Fields{
			"patchable": patchable,
			"err":       err,
		}).Error("MakeBsonM failed")
		return err
	}
	sel := bson.M{
		"id":    id.Id,
		"state": from,
	}
	if err := r.q.Patch(ctx, domain.TablePurchases, sel, updater); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"id":        id,
			"from":      from,
			"patchable": patchable,
			"err":       err,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
