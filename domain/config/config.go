package config

import (
	"time"

	"github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/domain/payout"
)

const DefaultMaxRecipients = 10

// Marketplace holds the process-wide settings read by listing and purchase
// flows. Only the admin setters mutate it.
type Marketplace struct {
	Owner         domain.AccountId `json:"owner" bson:"owner"`
	MinPrice      domain.Amount    `json:"minPrice" bson:"minPrice"`
	RoyaltyBps    uint64           `json:"royaltyBps" bson:"royaltyBps"`
	Registry      domain.AccountId `json:"registry" bson:"registry"`
	Charity       domain.AccountId `json:"charity" bson:"charity"`
	MaxRecipients int              `json:"maxRecipients" bson:"maxRecipients"`

	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Id is the selector of the single config document.
type Id struct {
	Key string `bson:"key"`
}

var DefaultId = Id{Key: "marketplace"}

func (m *Marketplace) Parties() payout.Parties {
	return payout.Parties{
		RoyaltyBps:    m.RoyaltyBps,
		PlatformOwner: m.Owner,
		Charity:       m.Charity,
	}
}

// IsOwner reports whether caller signed as the current platform owner.
func (m *Marketplace) IsOwner(caller domain.Caller) bool {
	return !caller.Signer.IsEmpty() && caller.Signer == m.Owner
}

type Patchable struct {
	Owner      *domain.AccountId `bson:"owner,omitempty"`
	MinPrice   *domain.Amount    `bson:"minPrice,omitempty"`
	RoyaltyBps *uint64           `bson:"royaltyBps,omitempty"`
	Registry   *domain.AccountId `bson:"registry,omitempty"`
	Charity    *domain.AccountId `bson:"charity,omitempty"`
	UpdatedAt  *time.Time        `bson:"updatedAt,omitempty"`
}

type Repo interface {
	// Get returns domain.ErrNotFound before the config is initialized.
	Get(ctx ctx.Ctx) (*Marketplace, error)
	Init(ctx ctx.Ctx, m *Marketplace) error
	Patch(ctx ctx.Ctx, patchable Patchable) error
}

// Reader is what listing and purchase flows need from the config.
type Reader interface {
	Get(ctx ctx.Ctx) (*Marketplace, error)
}

type UseCase interface {
	Reader
	// Bootstrap writes m if no config exists yet and returns the stored one.
	Bootstrap(ctx ctx.Ctx, m *Marketplace) (*Marketplace, error)
	SetOwner(ctx ctx.Ctx, caller domain.Caller, owner domain.AccountId) error
	ChangeMinPrice(ctx ctx.Ctx, caller domain.Caller, minPrice domain.Amount) error
	UpdateCharityAccount(ctx ctx.Ctx, caller domain.Caller, charity domain.AccountId) error
	UpdateRoyalty(ctx ctx.Ctx, caller domain.Caller, bps uint64) error
	UpdateRegistry(ctx ctx.Ctx, caller domain.Caller, registry domain.AccountId) error
}
