package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/base/log"
	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/domain/ledger"
	"github.com/x-xyz/escrow/service/query"
)

type ledgerRepo struct {
	q query.Mongo
}

func NewLedgerRepo(q query.Mongo) ledger.Repo {
	return &ledgerRepo{q: q}
}

func (r *ledgerRepo) Insert(ctx bCtx.Ctx, entry *ledger.Entry) error {
	if err := r.q.Insert(ctx, domain.TableLedgerEntries, entry); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"entry": entry,
			"err":   err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

// FindAll returns entries in the order they were recorded.
func (r *ledgerRepo) FindAll(ctx bCtx.Ctx, optsFns ...ledger.FindAllOptionsFunc) ([]*ledger.Entry, error) {
	opts, err := ledger.GetFindAllOptions(optsFns...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"optsFns": optsFns,
			"err":     err,
		}).Error("ledger.GetFindAllOptions failed")
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
	if opts.PurchaseId != nil {
		qry["purchaseId"] = *opts.PurchaseId
	}
	if opts.Kind != nil {
		qry["kind"] = *opts.Kind
	}
	if opts.Status != nil {
		qry["status"] = *opts.Status
	}
	res := []*ledger.Entry{}
	if err := r.q.SearchNSorts(ctx, domain.TableLedgerEntries, offset, limit, []string{"createdAt", "_id"}, qry, &res); err != nil {
		ctx.WithField("err", err).Error("q.SearchNSorts failed")
		return nil, err
	}
	return res, nil
}
