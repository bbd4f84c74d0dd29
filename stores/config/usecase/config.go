package usecase

import (
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/base/log"
	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/domain/config"
	"github.com/x-xyz/escrow/domain/payout"
	"github.com/x-xyz/escrow/service/cache"
)

const cacheKey = "marketplace"

var timeNow = time.Now

type ConfigUseCaseCfg struct {
	Repo config.Repo
	// Cache serves reads. Setters drop the entry, other processes see the
	// change once their copy expires.
	Cache cache.Service
}

type impl struct {
	repo  config.Repo
	cache cache.Service
}

func New(cfg *ConfigUseCaseCfg) config.UseCase {
	return &impl{
		repo:  cfg.Repo,
		cache: cfg.Cache,
	}
}

func (im *impl) Get(ctx bCtx.Ctx) (*config.Marketplace, error) {
	res := &config.Marketplace{}
	err := im.cache.GetByFunc(ctx, cacheKey, res, func() (interface{}, error) {
		return im.repo.Get(ctx)
	})
	if err != nil {
		if err != domain.ErrNotFound {
			ctx.WithField("err", err).Error("cache.GetByFunc failed")
		}
		return nil, err
	}
	return res, nil
}

func (im *impl) Bootstrap(ctx bCtx.Ctx, m *config.Marketplace) (*config.Marketplace, error) {
	if m.RoyaltyBps > payout.BpsDenominator {
		return nil, xerrors.Errorf("royalty %d bps: %w", m.RoyaltyBps, domain.ErrMalformedRequest)
	}
	if m.MaxRecipients <= 0 {
		m.MaxRecipients = config.DefaultMaxRecipients
	}
	m.UpdatedAt = timeNow()

	if err := im.repo.Init(ctx, m); err != nil && err != domain.ErrConflict {
		ctx.WithFields(log.Fields{
			"err":    err,
			"config": m,
		}).Error("repo.Init failed")
		return nil, err
	}
	res, err := im.repo.Get(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("repo.Get failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) SetOwner(ctx bCtx.Ctx, caller domain.Caller, owner domain.AccountId) error {
	if !owner.IsValid() {
		return xerrors.Errorf("owner %q: %w", owner, domain.ErrMalformedRequest)
	}
	return im.patch(ctx, caller, config.Patchable{Owner: &owner})
}

func (im *impl) ChangeMinPrice(ctx bCtx.Ctx, caller domain.Caller, minPrice domain.Amount) error {
	return im.patch(ctx, caller, config.Patchable{MinPrice: &minPrice})
}

func (im *impl) UpdateCharityAccount(ctx bCtx.Ctx, caller domain.Caller, charity domain.AccountId) error {
	if !charity.IsValid() {
		return xerrors.Errorf("charity %q: %w", charity, domain.ErrMalformedRequest)
	}
	return im.patch(ctx, caller, config.Patchable{Charity: &charity})
}

func (im *impl) UpdateRoyalty(ctx bCtx.Ctx, caller domain.Caller, bps uint64) error {
	if bps > payout.BpsDenominator {
		return xerrors.Errorf("royalty %d bps: %w", bps, domain.ErrMalformedRequest)
	}
	return im.patch(ctx, caller, config.Patchable{RoyaltyBps: &bps})
}

func (im *impl) UpdateRegistry(ctx bCtx.Ctx, caller domain.Caller, registry domain.AccountId) error {
	if !registry.IsValid() {
		return xerrors.Errorf("registry %q: %w", registry, domain.ErrMalformedRequest)
	}
	return im.patch(ctx, caller, config.Patchable{Registry: &registry})
}

// patch checks the caller against the stored config, never the cached one,
// so a replaced owner loses access immediately.
func (im *impl) patch(ctx bCtx.Ctx, caller domain.Caller, patchable config.Patchable) error {
	current, err := im.repo.Get(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("repo.Get failed")
		return err
	}
	if !current.IsOwner(caller) {
		return xerrors.Errorf("%s is not the owner: %w", caller.Signer, domain.ErrUnauthorized)
	}

	now := timeNow()
	patchable.UpdatedAt = &now
	if err := im.repo.Patch(ctx, patchable); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": patchable,
		}).Error("repo.Patch failed")
		return err
	}
	if err := im.cache.Del(ctx, cacheKey); err != nil {
		ctx.WithField("err", err).Warn("cache.Del failed")
	}
	return nil
}
