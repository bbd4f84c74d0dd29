package ledger

import (
	"time"

	"github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/domain"
)

type Kind string

const (
	KindSeller      Kind = "seller"
	KindTreasury    Kind = "treasury"
	KindCharity     Kind = "charity"
	KindRoyalty     Kind = "royalty"
	KindRefund      Kind = "refund"
	KindOverpayment Kind = "overpayment"
	// KindDeposit records funds collected from the buyer.
	KindDeposit Kind = "deposit"
	// KindHolding marks funds kept by the service until someone resolves
	// them by hand.
	KindHolding Kind = "holding"
)

// ReasonLegFailed is the holding reason recorded for a failed transfer.
const ReasonLegFailed = "leg_failed"

type Status string

const (
	StatusPaid   Status = "paid"
	StatusFailed Status = "failed"
	StatusHeld   Status = "held"
	// StatusCollected is set on deposits the service took in.
	StatusCollected Status = "collected"
)

// Entry is one disbursement attempt, or one amount put on hold, for a
// purchase.
type Entry struct {
	Id         string            `json:"id" bson:"id"`
	PurchaseId domain.PurchaseId `json:"purchaseId" bson:"purchaseId"`
	Recipient  domain.AccountId  `json:"recipient" bson:"recipient"`
	Amount     domain.Amount     `json:"amount" bson:"amount"`
	Kind       Kind              `json:"kind" bson:"kind"`
	Status     Status            `json:"status" bson:"status"`
	Reason     string            `json:"reason,omitempty" bson:"reason,omitempty"`
	CreatedAt  time.Time         `json:"createdAt" bson:"createdAt"`
}

type FindAllOptions struct {
	PurchaseId *domain.PurchaseId
	Kind       *Kind
	Status     *Status
	Offset     *int32
	Limit      *int32
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithPurchase(id domain.PurchaseId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.PurchaseId = &id
		return nil
	}
}

func WithKind(kind Kind) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Kind = &kind
		return nil
	}
}

func WithStatus(status Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Status = &status
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		if offset < 0 || limit < 0 {
			return domain.ErrBadParamInput
		}
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

// Transferer moves funds between accounts and the service.
type Transferer interface {
	// Transfer pays amount from the service to an account.
	Transfer(ctx ctx.Ctx, to domain.AccountId, amount domain.Amount, memo string) error
	// Collect takes up to amount from an account into the service and
	// returns how much was actually collected.
	Collect(ctx ctx.Ctx, from domain.AccountId, amount domain.Amount, memo string) (domain.Amount, error)
}

type Repo interface {
	Insert(ctx ctx.Ctx, entry *Entry) error
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Entry, error)
}

type UseCase interface {
	// Pay transfers amount to recipient and records the attempt. A failed
	// transfer is recorded as failed together with a holding entry, and the
	// transfer error is returned. A zero amount is recorded without a
	// transfer. Bookkeeping failures are logged, never returned, since the
	// transfer outcome is already final.
	Pay(ctx ctx.Ctx, purchaseId domain.PurchaseId, recipient domain.AccountId, amount domain.Amount, kind Kind) (*Entry, error)
	// Hold records amount as kept by the service. recipient is who the funds
	// were meant for, if known.
	Hold(ctx ctx.Ctx, purchaseId domain.PurchaseId, recipient domain.AccountId, amount domain.Amount, reason string) (*Entry, error)
	// Collect takes amount from the buyer and records what was collected.
	// The returned entry carries the collected amount, which may be less
	// than requested. A failed collection is recorded and its error returned.
	Collect(ctx ctx.Ctx, purchaseId domain.PurchaseId, from domain.AccountId, amount domain.Amount) (*Entry, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Entry, error)
}
