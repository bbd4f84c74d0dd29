package listing

import (
	"encoding/json"
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/domain"
)

// Listing is one active sale offer for an asset.
type Listing struct {
	OwnerId    domain.AccountId `json:"ownerId" bson:"ownerId"`
	ApprovalId uint64           `json:"approvalId" bson:"approvalId"`
	AssetId    domain.AssetId   `json:"assetId" bson:"assetId"`
	Price      domain.Amount    `json:"price" bson:"price"`
	Donation   domain.Amount    `json:"donation" bson:"donation"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (l *Listing) ToId() Id {
	return Id{AssetId: l.AssetId}
}

// Snapshot selects this exact listing version. Reserving by snapshot fails
// if the listing was updated, deleted or bought after it was read.
func (l *Listing) Snapshot() Snapshot {
	return Snapshot{
		AssetId:    l.AssetId,
		OwnerId:    l.OwnerId,
		ApprovalId: l.ApprovalId,
		Price:      l.Price,
		Donation:   l.Donation,
	}
}

type Id struct {
	AssetId domain.AssetId `json:"assetId" bson:"assetId"`
}

type Snapshot struct {
	AssetId    domain.AssetId   `bson:"assetId"`
	OwnerId    domain.AccountId `bson:"ownerId"`
	ApprovalId uint64           `bson:"approvalId"`
	Price      domain.Amount    `bson:"price"`
	Donation   domain.Amount    `bson:"donation"`
}

// ListAction is the {price, donation} pair carried by the registry's
// approval message.
type ListAction struct {
	Price    domain.Amount `json:"price"`
	Donation domain.Amount `json:"donation"`
}

// ParseListAction decodes the approval message. Both fields are required
// decimal strings and the donation cannot exceed the price.
func ParseListAction(msg string) (ListAction, error) {
	raw := struct {
		Price    *domain.Amount `json:"price"`
		Donation *domain.Amount `json:"donation"`
	}{}
	if err := json.Unmarshal([]byte(msg), &raw); err != nil {
		return ListAction{}, xerrors.Errorf("list message: %v: %w", err, domain.ErrMalformedRequest)
	}
	if raw.Price == nil || raw.Donation == nil {
		return ListAction{}, xerrors.Errorf("list message requires price and donation: %w", domain.ErrMalformedRequest)
	}
	action := ListAction{Price: *raw.Price, Donation: *raw.Donation}
	if err := ValidateTerms(action.Price, action.Donation); err != nil {
		return ListAction{}, err
	}
	return action, nil
}

// ValidateTerms checks 0 <= donation <= price.
func ValidateTerms(price, donation domain.Amount) error {
	if donation.Gt(price) {
		return xerrors.Errorf("donation %s exceeds price %s: %w", donation, price, domain.ErrMalformedRequest)
	}
	return nil
}

type Patchable struct {
	Price     *domain.Amount `bson:"price,omitempty"`
	Donation  *domain.Amount `bson:"donation,omitempty"`
	UpdatedAt *time.Time     `bson:"updatedAt,omitempty"`
}

type FindAllOptions struct {
	OwnerId *domain.AccountId
	Offset  *int32
	Limit   *int32
	Sort    *string
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

func WithOwner(owner domain.AccountId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.OwnerId = &owner
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

func WithSort(sort string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Sort = &sort
		return nil
	}
}

type Repo interface {
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	FindOne(ctx ctx.Ctx, id Id) (*Listing, error)
	Upsert(ctx ctx.Ctx, listing *Listing) error
	Remove(ctx ctx.Ctx, id Id) error
	// Patch applies patchable to the listing matching snapshot.
	// domain.ErrNotFound if it changed or disappeared since it was read.
	Patch(ctx ctx.Ctx, snapshot Snapshot, patchable Patchable) error
	// Reserve atomically removes the listing matching snapshot and returns
	// the removed document. domain.ErrNotFound if nothing matched.
	Reserve(ctx ctx.Ctx, snapshot Snapshot) (*Listing, error)
}

type UseCase interface {
	List(ctx ctx.Ctx, caller domain.Caller, req ListRequest) (*Listing, error)
	Update(ctx ctx.Ctx, caller domain.Caller, assetId domain.AssetId, price, donation domain.Amount) (*Listing, error)
	Delete(ctx ctx.Ctx, caller domain.Caller, assetId domain.AssetId) error
	Get(ctx ctx.Ctx, assetId domain.AssetId) (*Listing, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
}

// ListRequest is the registry's approval notification.
type ListRequest struct {
	AssetId    domain.AssetId   `json:"assetId" validate:"required"`
	OwnerId    domain.AccountId `json:"ownerId" validate:"required,accountid"`
	ApprovalId uint64           `json:"approvalId"`
	Msg        string           `json:"msg" validate:"required"`
}
