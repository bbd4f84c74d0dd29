package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	bCtx "github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/base/log"
	"github.com/x-xyz/escrow/base/metrics"
	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/domain/ledger"
)

var (
	timeNow = time.Now
	newId   = func() string { return uuid.NewString() }
)

type LedgerUseCaseCfg struct {
	Repo       ledger.Repo
	Transferer ledger.Transferer
}

type impl struct {
	repo       ledger.Repo
	transferer ledger.Transferer
	met        metrics.Service
}

func New(cfg *LedgerUseCaseCfg) ledger.UseCase {
	return &impl{
		repo:       cfg.Repo,
		transferer: cfg.Transferer,
		met:        metrics.New("ledger"),
	}
}

// Memo identifies one disbursement. It is stable across retries of the
// same leg, so the payment side can deduplicate on it.
func Memo(purchaseId domain.PurchaseId, kind ledger.Kind, recipient domain.AccountId) string {
	return fmt.Sprintf("%s:%s:%s", purchaseId, kind, recipient)
}

func (im *impl) Pay(ctx bCtx.Ctx, purchaseId domain.PurchaseId, recipient domain.AccountId, amount domain.Amount, kind ledger.Kind) (*ledger.Entry, error) {
	entry := im.entry(purchaseId, recipient, amount, kind)

	if !amount.IsZero() {
		if err := im.transferer.Transfer(ctx, recipient, amount, Memo(purchaseId, kind, recipient)); err != nil {
			im.met.BumpSum("pay.err", 1, "kind", string(kind))
			ctx.WithFields(log.Fields{
				"err":        err,
				"purchaseId": purchaseId,
				"recipient":  recipient,
				"amount":     amount,
				"kind":       kind,
			}).Error("transferer.Transfer failed")

			entry.Status = ledger.StatusFailed
			entry.Reason = err.Error()
			im.insert(ctx, entry)
			if _, holdErr := im.Hold(ctx, purchaseId, recipient, amount, ledger.ReasonLegFailed); holdErr != nil {
				ctx.WithField("err", holdErr).Error("Hold failed")
			}
			return entry, err
		}
	}

	entry.Status = ledger.StatusPaid
	im.insert(ctx, entry)
	return entry, nil
}

func (im *impl) Hold(ctx bCtx.Ctx, purchaseId domain.PurchaseId, recipient domain.AccountId, amount domain.Amount, reason string) (*ledger.Entry, error) {
	entry := im.entry(purchaseId, recipient, amount, ledger.KindHolding)
	entry.Status = ledger.StatusHeld
	entry.Reason = reason

	im.met.BumpSum("hold", 1, "reason", reason)
	ctx.WithFields(log.Fields{
		"purchaseId": purchaseId,
		"recipient":  recipient,
		"amount":     amount,
		"reason":     reason,
	}).Warn("funds held for manual resolution")

	if err := im.repo.Insert(ctx, entry); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"entry": entry,
		}).Error("repo.Insert failed")
		return nil, err
	}
	return entry, nil
}

func (im *impl) Collect(ctx bCtx.Ctx, purchaseId domain.PurchaseId, from domain.AccountId, amount domain.Amount) (*ledger.Entry, error) {
	entry := im.entry(purchaseId, from, amount, ledger.KindDeposit)

	collected, err := im.transferer.Collect(ctx, from, amount, Memo(purchaseId, ledger.KindDeposit, from))
	if err != nil {
		im.met.BumpSum("collect.err", 1)
		ctx.WithFields(log.Fields{
			"err":        err,
			"purchaseId": purchaseId,
			"from":       from,
			"amount":     amount,
		}).Error("transferer.Collect failed")

		entry.Status = ledger.StatusFailed
		entry.Reason = err.Error()
		im.insert(ctx, entry)
		return entry, err
	}

	entry.Amount = collected
	entry.Status = ledger.StatusCollected
	im.insert(ctx, entry)
	return entry, nil
}

func (im *impl) FindAll(ctx bCtx.Ctx, opts ...ledger.FindAllOptionsFunc) ([]*ledger.Entry, error) {
	return im.repo.FindAll(ctx, opts...)
}

func (im *impl) entry(purchaseId domain.PurchaseId, recipient domain.AccountId, amount domain.Amount, kind ledger.Kind) *ledger.Entry {
	return &ledger.Entry{
		Id:         newId(),
		PurchaseId: purchaseId,
		Recipient:  recipient,
		Amount:     amount,
		Kind:       kind,
		CreatedAt:  timeNow(),
	}
}

func (im *impl) insert(ctx bCtx.Ctx, entry *ledger.Entry) {
	if err := im.repo.Insert(ctx, entry); err != nil {
		im.met.BumpSum("insert.err", 1)
		ctx.WithFields(log.Fields{
			"err":   err,
			"entry": entry,
		}).Error("repo.Insert failed")
	}
}
