package usecase

import (
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/base/log"
	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/domain/config"
	"github.com/x-xyz/escrow/domain/listing"
)

var timeNow = time.Now

type ListingUseCaseCfg struct {
	Repo   listing.Repo
	Config config.Reader
}

type impl struct {
	repo   listing.Repo
	config config.Reader
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	return &impl{
		repo:   cfg.Repo,
		config: cfg.Config,
	}
}

// List handles the registry's approval callback. It must be relayed by the
// configured registry on behalf of the owner.
func (im *impl) List(ctx bCtx.Ctx, caller domain.Caller, req listing.ListRequest) (*listing.Listing, error) {
	action, err := listing.ParseListAction(req.Msg)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"msg": req.Msg,
		}).Warn("listing.ParseListAction failed")
		return nil, err
	}

	cfg, err := im.config.Get(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("config.Get failed")
		return nil, err
	}
	if caller.Predecessor != cfg.Registry {
		return nil, xerrors.Errorf("list relayed by %s, not the registry: %w", caller.Predecessor, domain.ErrUnauthorized)
	}
	if caller.Signer != req.OwnerId {
		return nil, xerrors.Errorf("list signed by %s, not the owner: %w", caller.Signer, domain.ErrUnauthorized)
	}
	if err := checkMinPrice(cfg, action.Price); err != nil {
		return nil, err
	}

	now := timeNow()
	l := &listing.Listing{
		OwnerId:    req.OwnerId,
		ApprovalId: req.ApprovalId,
		AssetId:    req.AssetId,
		Price:      action.Price,
		Donation:   action.Donation,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if existing, err := im.repo.FindOne(ctx, l.ToId()); err == nil {
		l.CreatedAt = existing.CreatedAt
	} else if err != domain.ErrNotFound {
		ctx.WithFields(log.Fields{
			"err":     err,
			"assetId": req.AssetId,
		}).Error("repo.FindOne failed")
		return nil, err
	}

	if err := im.repo.Upsert(ctx, l); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": l,
		}).Error("repo.Upsert failed")
		return nil, err
	}
	return l, nil
}

// Update overwrites the terms of an existing listing. Ownership is not
// checked again.
func (im *impl) Update(ctx bCtx.Ctx, caller domain.Caller, assetId domain.AssetId, price, donation domain.Amount) (*listing.Listing, error) {
	l, err := im.repo.FindOne(ctx, listing.Id{AssetId: assetId})
	if err != nil {
		if err != domain.ErrNotFound {
			ctx.WithFields(log.Fields{
				"err":     err,
				"assetId": assetId,
			}).Error("repo.FindOne failed")
		}
		return nil, err
	}
	if err := listing.ValidateTerms(price, donation); err != nil {
		return nil, err
	}
	cfg, err := im.config.Get(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("config.Get failed")
		return nil, err
	}
	if err := checkMinPrice(cfg, price); err != nil {
		return nil, err
	}

	now := timeNow()
	patchable := listing.Patchable{
		Price:     &price,
		Donation:  &donation,
		UpdatedAt: &now,
	}
	if err := im.repo.Patch(ctx, l.Snapshot(), patchable); err != nil {
		if err != domain.ErrNotFound {
			ctx.WithFields(log.Fields{
				"err":     err,
				"assetId": assetId,
			}).Error("repo.Patch failed")
		}
		return nil, err
	}

	l.Price = price
	l.Donation = donation
	l.UpdatedAt = now
	return l, nil
}

func (im *impl) Delete(ctx bCtx.Ctx, caller domain.Caller, assetId domain.AssetId) error {
	l, err := im.repo.FindOne(ctx, listing.Id{AssetId: assetId})
	if err != nil {
		if err != domain.ErrNotFound {
			ctx.WithFields(log.Fields{
				"err":     err,
				"assetId": assetId,
			}).Error("repo.FindOne failed")
		}
		return err
	}
	if caller.Signer != l.OwnerId {
		return xerrors.Errorf("delete signed by %s, not the owner: %w", caller.Signer, domain.ErrUnauthorized)
	}
	if err := im.repo.Remove(ctx, l.ToId()); err != nil {
		if err != domain.ErrNotFound {
			ctx.WithFields(log.Fields{
				"err":     err,
				"assetId": assetId,
			}).Error("repo.Remove failed")
		}
		return err
	}
	return nil
}

func (im *impl) Get(ctx bCtx.Ctx, assetId domain.AssetId) (*listing.Listing, error) {
	return im.repo.FindOne(ctx, listing.Id{AssetId: assetId})
}

func (im *impl) FindAll(ctx bCtx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	return im.repo.FindAll(ctx, opts...)
}

func checkMinPrice(cfg *config.Marketplace, price domain.Amount) error {
	if !price.Gt(cfg.MinPrice) {
		return xerrors.Errorf("price %s not above min %s: %w", price, cfg.MinPrice, domain.ErrPriceTooLow)
	}
	return nil
}
