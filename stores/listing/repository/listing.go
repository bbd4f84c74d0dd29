package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/base/database/mongoclient"
	"github.com/x-xyz/escrow/base/log"
	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/domain/listing"
	"github.com/x-xyz/escrow/service/query"
)

type listingRepo struct {
	q query.Mongo
}

func NewListingRepo(q query.Mongo) listing.Repo {
	return &listingRepo{q: q}
}

func (r *listingRepo) FindAll(ctx bCtx.Ctx, optsFns ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	opts, err := listing.GetFindAllOptions(optsFns...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"optsFns": optsFns,
			"err":     err,
		}).Error("listing.GetFindAllOptions failed")
		return nil, err
	}
	var (
		offset int    = 0
		limit  int    = 0
		sort   string = "assetId"
	)
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}
	if opts.Sort != nil {
		sort = *opts.Sort
	}
	qry := bson.M{}
	if opts.OwnerId != nil {
		qry["ownerId"] = *opts.OwnerId
	}
	res := []*listing.Listing{}
	if err := r.q.Search(ctx, domain.TableListings, offset, limit, sort, qry, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *listingRepo) FindOne(ctx bCtx.Ctx, id listing.Id) (*listing.Listing, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("MakeBsonM failed")
		return nil, err
	}
	res := &listing.Listing{}
	if err := r.q.FindOne(ctx, domain.TableListings, qry, res); err == query.ErrNotFound {
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

func (r *listingRepo) Upsert(ctx bCtx.Ctx, l *listing.Listing) error {
	if err := r.q.Upsert(ctx, domain.TableListings, l.ToId(), l); err != nil {
		ctx.WithFields(log.Fields{
			"listing": l,
			"err":     err,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *listingRepo) Remove(ctx bCtx.Ctx, id listing.Id) error {
	if err := r.q.Remove(ctx, domain.TableListings, id); err == query.ErrNotFound {
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

func (r *listingRepo) Patch(ctx bCtx.Ctx, s listing.Snapshot, patchable listing.Patchable) error {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithFields(log.Fields{
			"patchable": patchable,
			"err":       err,
		}).Error("MakeBsonM failed")
		return err
	}
	if err := r.q.Patch(ctx, domain.TableListings, snapshotSelector(s), updater); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"snapshot":  s,
			"patchable": patchable,
			"err":       err,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

// snapshotSelector matches every field of the snapshot, zero amounts
// included, so a listing changed since the snapshot was read never matches.
func snapshotSelector(s listing.Snapshot) bson.M {
	return bson.M{
		"assetId":    s.AssetId,
		"ownerId":    s.OwnerId,
		"approvalId": s.ApprovalId,
		"price":      s.Price,
		"donation":   s.Donation,
	}
}

func (r *listingRepo) Reserve(ctx bCtx.Ctx, s listing.Snapshot) (*listing.Listing, error) {
	res := &listing.Listing{}
	if err := r.q.FindOneAndRemove(ctx, domain.TableListings, snapshotSelector(s), res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"snapshot": s,
			"err":      err,
		}).Error("q.FindOneAndRemove failed")
		return nil, err
	}
	return res, nil
}
