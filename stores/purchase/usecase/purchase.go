package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/base/log"
	"github.com/x-xyz/escrow/base/metrics"
	"github.com/x-xyz/escrow/base/ptr"
	pricefomatter "github.com/x-xyz/escrow/base/price_fomatter"
	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/domain/config"
	"github.com/x-xyz/escrow/domain/ledger"
	"github.com/x-xyz/escrow/domain/listing"
	"github.com/x-xyz/escrow/domain/payout"
	"github.com/x-xyz/escrow/domain/purchase"
)

var (
	timeNow = time.Now
	newId   = func() domain.PurchaseId { return domain.PurchaseId(uuid.NewString()) }
)

type PurchaseUseCaseCfg struct {
	Repo        purchase.Repo
	ListingRepo listing.Repo
	Config      config.Reader
	Ledger      ledger.UseCase
	Scheduler   purchase.Scheduler
	Tx          domain.Transactor
}

type impl struct {
	repo        purchase.Repo
	listingRepo listing.Repo
	config      config.Reader
	ledger      ledger.UseCase
	scheduler   purchase.Scheduler
	tx          domain.Transactor
	met         metrics.Service
}

func New(cfg *PurchaseUseCaseCfg) purchase.UseCase {
	return &impl{
		repo:        cfg.Repo,
		listingRepo: cfg.ListingRepo,
		config:      cfg.Config,
		ledger:      cfg.Ledger,
		scheduler:   cfg.Scheduler,
		tx:          cfg.Tx,
		met:         metrics.New("purchase"),
	}
}

// Buy collects deposit from caller.Predecessor, reserves the listing for
// them and dispatches the transfer. The purchase is returned in
// StateTransferPending; its outcome is settled in the background. Only the
// amount the payment service actually collected is ever paid back.
func (im *impl) Buy(ctx bCtx.Ctx, caller domain.Caller, assetId domain.AssetId, deposit domain.Amount) (*purchase.Purchase, error) {
	buyer := caller.Predecessor
	if buyer.IsEmpty() {
		return nil, xerrors.Errorf("buy without caller: %w", domain.ErrUnauthorized)
	}

	l, err := im.listingRepo.FindOne(ctx, listing.Id{AssetId: assetId})
	if err != nil {
		if err != domain.ErrNotFound {
			ctx.WithFields(log.Fields{
				"err":     err,
				"assetId": assetId,
			}).Error("listingRepo.FindOne failed")
		}
		return nil, err
	}
	if deposit.Lt(l.Price) {
		return nil, xerrors.Errorf("deposit %s below price %s: %w", deposit, l.Price, domain.ErrInsufficientPayment)
	}

	cfg, err := im.config.Get(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("config.Get failed")
		return nil, err
	}

	id := newId()
	entry, err := im.ledger.Collect(ctx, id, buyer, deposit)
	if err != nil {
		return nil, err
	}
	collected := entry.Amount
	if collected.Lt(deposit) {
		im.met.BumpSum("collect.short", 1)
		ctx.WithFields(log.Fields{
			"purchaseId": id,
			"claimed":    deposit,
			"collected":  collected,
		}).Warn("deposit not fully collected")
		im.giveBack(ctx, id, buyer, collected)
		return nil, xerrors.Errorf("collected %s of %s: %w", collected, deposit, domain.ErrInsufficientPayment)
	}

	now := timeNow()
	p := &purchase.Purchase{
		Id:        id,
		AssetId:   l.AssetId,
		Buyer:     buyer,
		Deposit:   collected,
		State:     purchase.StateTransferPending,
		Settled:   domain.ZeroAmount,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := im.tx.RunWithTransaction(ctx, func(txCtx bCtx.Ctx) error {
		reserved, err := im.listingRepo.Reserve(txCtx, l.Snapshot())
		if err != nil {
			return err
		}
		p.Listing = *reserved
		return im.repo.Insert(txCtx, p)
	}); xerrors.Is(err, domain.ErrNotFound) {
		im.met.BumpSum("reserve.lost", 1)
		im.giveBack(ctx, id, buyer, collected)
		return nil, err
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"purchase": p,
		}).Error("reserve and insert failed")
		im.giveBack(ctx, id, buyer, collected)
		return nil, err
	}

	reserved := &p.Listing
	req := purchase.TransferRequest{
		PurchaseId:    p.Id,
		Receiver:      buyer,
		AssetId:       reserved.AssetId,
		ApprovalId:    reserved.ApprovalId,
		Balance:       reserved.Price,
		MaxRecipients: cfg.MaxRecipients,
	}
	state := purchase.ContinuationState{
		PurchaseId: p.Id,
		BuyerId:    buyer,
		Listing:    *reserved,
		Deposit:    collected,
	}
	cont := func(ctx bCtx.Ctx, outcome purchase.Outcome) {
		im.resolvePurchase(ctx, state, outcome)
	}
	if err := im.scheduler.Dispatch(ctx, req, cont); err != nil {
		ctx.WithFields(log.Fields{
			"err":        err,
			"purchaseId": p.Id,
		}).Error("scheduler.Dispatch failed")
		if im.unwind(ctx, p) {
			im.giveBack(ctx, id, buyer, collected)
		}
		return nil, err
	}

	im.met.BumpSum("buy", 1)
	return p, nil
}

// unwind drops a purchase that never got dispatched and puts its listing
// back. A purchase that could not be dropped stays pending and its deposit
// is later held by Reconcile.
func (im *impl) unwind(ctx bCtx.Ctx, p *purchase.Purchase) bool {
	if err := im.tx.RunWithTransaction(ctx, func(txCtx bCtx.Ctx) error {
		if err := im.repo.Remove(txCtx, p.ToId()); err != nil {
			return err
		}
		return im.listingRepo.Upsert(txCtx, &p.Listing)
	}); err != nil {
		im.met.BumpSum("unwind.err", 1)
		ctx.WithFields(log.Fields{
			"err":      err,
			"purchase": p,
		}).Error("unwind failed")
		return false
	}
	return true
}

// giveBack returns a collected deposit when no purchase came of it.
func (im *impl) giveBack(ctx bCtx.Ctx, id domain.PurchaseId, buyer domain.AccountId, amount domain.Amount) {
	if amount.IsZero() {
		return
	}
	// a failed transfer is already recorded and held by the ledger
	_, _ = im.ledger.Pay(ctx, id, buyer, amount, ledger.KindRefund)
}

// resolvePurchase settles a dispatched purchase once the registry answered.
// Only the caller that moves the purchase out of StateTransferPending
// proceeds.
func (im *impl) resolvePurchase(ctx bCtx.Ctx, state purchase.ContinuationState, outcome purchase.Outcome) {
	defer im.met.BumpTime("resolve.time").End()

	id := purchase.Id{Id: state.PurchaseId}
	claim := purchase.Patchable{State: ptr.Of(purchase.StateResolving), UpdatedAt: ptr.Of(timeNow())}
	if err := im.repo.Transition(ctx, id, purchase.StateTransferPending, claim); err == domain.ErrNotFound {
		ctx.WithField("purchaseId", state.PurchaseId).Warn("purchase already resolved")
		return
	} else if err != nil {
		// left pending for the reconciler
		ctx.WithFields(log.Fields{
			"err":        err,
			"purchaseId": state.PurchaseId,
		}).Error("repo.Transition failed")
		return
	}

	final, reason, settled := im.settle(ctx, state, outcome)

	if final != purchase.StateStuck {
		im.returnExcess(ctx, state)
	}

	patch := purchase.Patchable{State: &final, Settled: &settled, UpdatedAt: ptr.Of(timeNow())}
	if reason != "" {
		patch.Reason = ptr.String(reason)
	}
	if err := im.repo.Transition(ctx, id, purchase.StateResolving, patch); err != nil {
		ctx.WithFields(log.Fields{
			"err":        err,
			"purchaseId": state.PurchaseId,
			"state":      final,
		}).Error("repo.Transition failed")
	}
	im.met.BumpSum("resolve", 1, "state", string(final))
}

func (im *impl) settle(ctx bCtx.Ctx, state purchase.ContinuationState, outcome purchase.Outcome) (purchase.State, string, domain.Amount) {
	l := &state.Listing

	if outcome.TimedOut {
		// the asset may have moved, so nothing is refunded
		ctx.WithFields(log.Fields{
			"err":        outcome.Err,
			"purchaseId": state.PurchaseId,
		}).Warn("transfer outcome unknown, holding deposit")
		im.hold(ctx, state.PurchaseId, state.BuyerId, state.Deposit, purchase.ReasonTransferUnknown)
		return purchase.StateStuck, purchase.ReasonTransferUnknown, domain.ZeroAmount
	}

	if !outcome.Succeeded() {
		ctx.WithFields(log.Fields{
			"err":        outcome.Err,
			"purchaseId": state.PurchaseId,
		}).Warn("transfer failed, refunding")
		im.refund(ctx, state)
		return purchase.StateRefunded, purchase.ReasonTransferFailed, domain.ZeroAmount
	}

	cfg, err := im.config.Get(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("config.Get failed")
		im.hold(ctx, state.PurchaseId, l.OwnerId, l.Price, purchase.ReasonInternalInconsistency)
		im.holdExcess(ctx, state, purchase.ReasonInternalInconsistency)
		return purchase.StateStuck, purchase.ReasonInternalInconsistency, domain.ZeroAmount
	}

	var candidate *payout.Breakdown
	if b, err := payout.Decode(outcome.Value, cfg.MaxRecipients); err != nil {
		ctx.WithFields(log.Fields{
			"err":        err,
			"purchaseId": state.PurchaseId,
		}).Warn("payout.Decode failed")
	} else {
		candidate = &b
	}
	if payout.Resolve(l, candidate) == payout.Untrusted {
		// the asset has moved but the seller is not paid
		ctx.WithFields(log.Fields{
			"purchaseId": state.PurchaseId,
			"payout":     string(outcome.Value),
		}).Warn("payout untrusted, refunding")
		im.refund(ctx, state)
		im.hold(ctx, state.PurchaseId, l.OwnerId, l.Price, purchase.ReasonSellerUnpaid)
		return purchase.StateRefunded, purchase.ReasonPayoutUntrusted, domain.ZeroAmount
	}

	legs, err := payout.Distribute(l, *candidate, cfg.Parties())
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":        err,
			"purchaseId": state.PurchaseId,
		}).Error("payout.Distribute failed")
		im.hold(ctx, state.PurchaseId, l.OwnerId, l.Price, purchase.ReasonInternalInconsistency)
		im.holdExcess(ctx, state, purchase.ReasonInternalInconsistency)
		return purchase.StateStuck, purchase.ReasonInternalInconsistency, domain.ZeroAmount
	}
	remainder, err := payout.Unallocated(l.Price, legs)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":        err,
			"purchaseId": state.PurchaseId,
		}).Error("payout.Unallocated failed")
		im.hold(ctx, state.PurchaseId, l.OwnerId, l.Price, purchase.ReasonInternalInconsistency)
		im.holdExcess(ctx, state, purchase.ReasonInternalInconsistency)
		return purchase.StateStuck, purchase.ReasonInternalInconsistency, domain.ZeroAmount
	}

	reason := ""
	for _, leg := range legs {
		if _, err := im.ledger.Pay(ctx, state.PurchaseId, leg.Recipient, leg.Amount, leg.Kind); err != nil {
			reason = purchase.ReasonLegFailed
		}
	}
	if !remainder.IsZero() {
		im.hold(ctx, state.PurchaseId, "", remainder, purchase.ReasonUnallocated)
	}
	im.met.BumpSum("volume", pricefomatter.ToFloat(l.Price, pricefomatter.NativeDecimals))
	return purchase.StateSettled, reason, l.Price
}

func (im *impl) refund(ctx bCtx.Ctx, state purchase.ContinuationState) {
	// a failed refund is already recorded and held by the ledger
	_, _ = im.ledger.Pay(ctx, state.PurchaseId, state.BuyerId, state.Listing.Price, ledger.KindRefund)
}

func (im *impl) excess(state purchase.ContinuationState) domain.Amount {
	excess, underflow := state.Deposit.Sub(state.Listing.Price)
	if underflow {
		return domain.ZeroAmount
	}
	return excess
}

func (im *impl) returnExcess(ctx bCtx.Ctx, state purchase.ContinuationState) {
	if excess := im.excess(state); !excess.IsZero() {
		_, _ = im.ledger.Pay(ctx, state.PurchaseId, state.BuyerId, excess, ledger.KindOverpayment)
	}
}

func (im *impl) holdExcess(ctx bCtx.Ctx, state purchase.ContinuationState, reason string) {
	if excess := im.excess(state); !excess.IsZero() {
		im.hold(ctx, state.PurchaseId, state.BuyerId, excess, reason)
	}
}

func (im *impl) hold(ctx bCtx.Ctx, purchaseId domain.PurchaseId, recipient domain.AccountId, amount domain.Amount, reason string) {
	if _, err := im.ledger.Hold(ctx, purchaseId, recipient, amount, reason); err != nil {
		ctx.WithFields(log.Fields{
			"err":        err,
			"purchaseId": purchaseId,
			"amount":     amount,
			"reason":     reason,
		}).Error("ledger.Hold failed")
	}
}

func (im *impl) Reconcile(ctx bCtx.Ctx, olderThan time.Duration) (int, error) {
	pending, err := im.repo.FindAll(ctx, purchase.WithState(purchase.StateTransferPending), purchase.WithUpdatedBefore(timeNow().Add(-olderThan)))
	if err != nil {
		ctx.WithField("err", err).Error("repo.FindAll failed")
		return 0, err
	}

	moved := 0
	for _, p := range pending {
		patch := purchase.Patchable{
			State:     ptr.Of(purchase.StateStuck),
			Reason:    ptr.String(purchase.ReasonTransferExpired),
			UpdatedAt: ptr.Of(timeNow()),
		}
		if err := im.repo.Transition(ctx, p.ToId(), purchase.StateTransferPending, patch); err == domain.ErrNotFound {
			continue
		} else if err != nil {
			ctx.WithFields(log.Fields{
				"err":        err,
				"purchaseId": p.Id,
			}).Error("repo.Transition failed")
			return moved, err
		}
		im.hold(ctx, p.Id, p.Buyer, p.Deposit, purchase.ReasonTransferExpired)
		moved++
	}
	if moved > 0 {
		im.met.BumpSum("reconcile.stuck", float64(moved))
		ctx.WithField("count", moved).Warn("expired purchases moved to stuck")
	}
	return moved, nil
}

func (im *impl) Get(ctx bCtx.Ctx, id domain.PurchaseId) (*purchase.Purchase, error) {
	return im.repo.FindOne(ctx, purchase.Id{Id: id})
}

func (im *impl) FindAll(ctx bCtx.Ctx, opts ...purchase.FindAllOptionsFunc) ([]*purchase.Purchase, error) {
	return im.repo.FindAll(ctx, opts...)
}
