package purchase

import (
	"time"

	"github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/domain/ledger"
	"github.com/x-xyz/escrow/domain/listing"
)

type State string

const (
	StateRequested       State = "requested"
	StateReserved        State = "reserved"
	StateTransferPending State = "transferPending"
	// StateResolving is held by the one continuation that claimed the
	// purchase.
	StateResolving State = "resolving"
	StateSettled   State = "settled"
	StateRefunded  State = "refunded"
	// StateStuck leaves funds on hold for manual resolution.
	StateStuck State = "stuck"
)

func (s State) IsTerminal() bool {
	return s == StateSettled || s == StateRefunded || s == StateStuck
}

const (
	ReasonTransferFailed        = "transfer_failed"
	ReasonPayoutUntrusted       = "payout_untrusted"
	ReasonInternalInconsistency = "internal_inconsistency"
	ReasonTransferExpired       = "transfer_expired"
	ReasonTransferUnknown       = "transfer_unknown"
	ReasonLegFailed             = ledger.ReasonLegFailed
	ReasonUnallocated           = "unallocated_remainder"
	ReasonSellerUnpaid          = "seller_unpaid"
)

// Purchase is the in-flight record of one buy attempt.
type Purchase struct {
	Id      domain.PurchaseId `json:"id" bson:"id"`
	AssetId domain.AssetId    `json:"assetId" bson:"assetId"`
	Buyer   domain.AccountId  `json:"buyer" bson:"buyer"`
	Listing listing.Listing   `json:"listing" bson:"listing"`
	Deposit domain.Amount     `json:"deposit" bson:"deposit"`
	State   State             `json:"state" bson:"state"`
	Reason  string            `json:"reason,omitempty" bson:"reason,omitempty"`
	Settled domain.Amount     `json:"settled" bson:"settled"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (p *Purchase) ToId() Id {
	return Id{Id: p.Id}
}

type Id struct {
	Id domain.PurchaseId `json:"id" bson:"id"`
}

type Patchable struct {
	State     *State         `bson:"state,omitempty"`
	Reason    *string        `bson:"reason,omitempty"`
	Settled   *domain.Amount `bson:"settled,omitempty"`
	UpdatedAt *time.Time     `bson:"updatedAt,omitempty"`
}

type FindAllOptions struct {
	Buyer         *domain.AccountId
	State         *State
	UpdatedBefore *time.Time
	Offset        *int32
	Limit         *int32
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

func WithBuyer(buyer domain.AccountId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Buyer = &buyer
		return nil
	}
}

func WithState(state State) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.State = &state
		return nil
	}
}

func WithUpdatedBefore(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.UpdatedBefore = &t
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

// TransferRequest is the outbound call asking the registry to move the asset
// to the buyer and report how the price should be split.
type TransferRequest struct {
	PurchaseId    domain.PurchaseId `json:"-"`
	Receiver      domain.AccountId  `json:"receiver_id"`
	AssetId       domain.AssetId    `json:"token_id"`
	ApprovalId    uint64            `json:"approval_id"`
	Balance       domain.Amount     `json:"balance"`
	MaxRecipients int               `json:"max_len_payout"`
}

// ContinuationState is captured at reservation time and handed back to the
// continuation together with the outcome.
type ContinuationState struct {
	PurchaseId domain.PurchaseId
	BuyerId    domain.AccountId
	Listing    listing.Listing
	Deposit    domain.Amount
}

// Outcome of the outbound transfer call. Err is set when the call failed
// and Value holds the raw, untrusted response otherwise. TimedOut marks a
// call that got no answer before its deadline: the registry may still have
// moved the asset.
type Outcome struct {
	Value    []byte
	Err      error
	TimedOut bool
}

func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// Continuation runs once with the outcome of a dispatched request.
type Continuation func(ctx ctx.Ctx, outcome Outcome)

// Scheduler performs a TransferRequest in the background and calls the
// continuation exactly once with its outcome. Dispatch returns an error only
// if the request could not be scheduled; the continuation is then never run.
type Scheduler interface {
	Dispatch(ctx ctx.Ctx, req TransferRequest, cont Continuation) error
}

// Registry is the external asset registry.
type Registry interface {
	TransferAndReportPayout(ctx ctx.Ctx, req TransferRequest) ([]byte, error)
}

type Repo interface {
	Insert(ctx ctx.Ctx, p *Purchase) error
	FindOne(ctx ctx.Ctx, id Id) (*Purchase, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Purchase, error)
	Remove(ctx ctx.Ctx, id Id) error
	// Transition patches the purchase only if it is currently in state from.
	// domain.ErrNotFound otherwise.
	Transition(ctx ctx.Ctx, id Id, from State, patchable Patchable) error
}

type UseCase interface {
	Buy(ctx ctx.Ctx, caller domain.Caller, assetId domain.AssetId, deposit domain.Amount) (*Purchase, error)
	Get(ctx ctx.Ctx, id domain.PurchaseId) (*Purchase, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Purchase, error)
	// Reconcile moves purchases left in StateTransferPending longer than
	// olderThan to StateStuck and returns how many it moved.
	Reconcile(ctx ctx.Ctx, olderThan time.Duration) (int, error)
}
