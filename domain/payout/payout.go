// Package payout decides whether a payout breakdown reported by the asset
// registry can be trusted and splits a sale into transfer legs.
//
// Everything here is pure: no storage, no transfers.
package payout

import (
	"encoding/json"
	"sort"

	"golang.org/x/xerrors"

	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/domain/ledger"
	"github.com/x-xyz/escrow/domain/listing"
)

// Tolerance is the slack allowed between the listing price and the summed
// breakdown. It absorbs rounding dust from the registry's own split.
const Tolerance = 100

// BpsDenominator is 100% in basis points.
const BpsDenominator = 10000

// Breakdown maps recipient to amount owed.
type Breakdown map[domain.AccountId]domain.Amount

// Sum returns the total of all entries and whether it overflowed.
func (b Breakdown) Sum() (domain.Amount, bool) {
	sum := domain.ZeroAmount
	for _, amount := range b {
		var overflow bool
		sum, overflow = sum.Add(amount)
		if overflow {
			return domain.ZeroAmount, true
		}
	}
	return sum, false
}

// Recipients returns the breakdown's keys in ascending order.
func (b Breakdown) Recipients() []domain.AccountId {
	res := make([]domain.AccountId, 0, len(b))
	for id := range b {
		res = append(res, id)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

type wireBreakdown struct {
	Payout map[string]domain.Amount `json:"payout"`
}

// Decode parses the registry response {"payout": {"<account>": "<amount>"}}.
// Any decode error, a missing payout object, an empty recipient or more than
// maxRecipients entries is ErrMalformedRequest.
func Decode(raw []byte, maxRecipients int) (Breakdown, error) {
	var wire wireBreakdown
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, xerrors.Errorf("payout: %v: %w", err, domain.ErrMalformedRequest)
	}
	if wire.Payout == nil {
		return nil, xerrors.Errorf("payout object missing: %w", domain.ErrMalformedRequest)
	}
	if maxRecipients > 0 && len(wire.Payout) > maxRecipients {
		return nil, xerrors.Errorf("payout has %d recipients, max %d: %w", len(wire.Payout), maxRecipients, domain.ErrMalformedRequest)
	}
	res := make(Breakdown, len(wire.Payout))
	for recipient, amount := range wire.Payout {
		if len(recipient) == 0 {
			return nil, xerrors.Errorf("payout has empty recipient: %w", domain.ErrMalformedRequest)
		}
		res[domain.AccountId(recipient)] = amount
	}
	return res, nil
}

type Decision int

const (
	Untrusted Decision = iota
	Trusted
)

func (d Decision) String() string {
	if d == Trusted {
		return "trusted"
	}
	return "untrusted"
}

// Resolve trusts candidate iff it is present and price - sum lies in
// [0, Tolerance]. An overflowing sum or a sum above the price is untrusted.
func Resolve(l *listing.Listing, candidate *Breakdown) Decision {
	if candidate == nil {
		return Untrusted
	}
	sum, overflow := candidate.Sum()
	if overflow {
		return Untrusted
	}
	remainder, underflow := l.Price.Sub(sum)
	if underflow {
		return Untrusted
	}
	if remainder.Gt(domain.NewAmount(Tolerance)) {
		return Untrusted
	}
	return Trusted
}

// Leg is one transfer of the final distribution.
type Leg struct {
	Recipient domain.AccountId `json:"recipient"`
	Amount    domain.Amount    `json:"amount"`
	Kind      ledger.Kind      `json:"kind"`
}

// Parties carries the marketplace settings the split depends on.
type Parties struct {
	RoyaltyBps    uint64
	PlatformOwner domain.AccountId
	Charity       domain.AccountId
}

// TreasuryFee is floor(price * bps / 10000).
func TreasuryFee(price domain.Amount, bps uint64) (domain.Amount, error) {
	if bps > BpsDenominator {
		return domain.ZeroAmount, xerrors.Errorf("royalty %d bps: %w", bps, domain.ErrInternalInconsistency)
	}
	fee, overflow := price.MulDiv(bps, BpsDenominator)
	if overflow {
		return domain.ZeroAmount, xerrors.Errorf("treasury fee overflow: %w", domain.ErrInternalInconsistency)
	}
	return fee, nil
}

// Distribute turns a trusted breakdown into transfer legs. The owner's entry
// is split into seller, treasury and charity legs. Every other recipient is
// paid its amount unchanged. Legs are ordered by recipient, with the owner's
// three legs kept together.
//
// If the owner's entry cannot cover the fee plus the donation, no legs are
// returned and the error wraps ErrInternalInconsistency.
func Distribute(l *listing.Listing, b Breakdown, p Parties) ([]Leg, error) {
	fee, err := TreasuryFee(l.Price, p.RoyaltyBps)
	if err != nil {
		return nil, err
	}

	legs := make([]Leg, 0, len(b)+2)
	for _, recipient := range b.Recipients() {
		amount := b[recipient]
		if recipient != l.OwnerId {
			legs = append(legs, Leg{Recipient: recipient, Amount: amount, Kind: ledger.KindRoyalty})
			continue
		}

		afterFee, underflow := amount.Sub(fee)
		if underflow {
			return nil, xerrors.Errorf("owner amount %s below treasury fee %s: %w", amount, fee, domain.ErrInternalInconsistency)
		}
		sellerAmount, underflow := afterFee.Sub(l.Donation)
		if underflow {
			return nil, xerrors.Errorf("owner amount %s below fee %s plus donation %s: %w", amount, fee, l.Donation, domain.ErrInternalInconsistency)
		}
		legs = append(legs, Leg{Recipient: recipient, Amount: sellerAmount, Kind: ledger.KindSeller})
		if !fee.IsZero() {
			legs = append(legs, Leg{Recipient: p.PlatformOwner, Amount: fee, Kind: ledger.KindTreasury})
		}
		if !l.Donation.IsZero() {
			legs = append(legs, Leg{Recipient: p.Charity, Amount: l.Donation, Kind: ledger.KindCharity})
		}
	}
	return legs, nil
}

// Total sums the legs.
func Total(legs []Leg) (domain.Amount, error) {
	total := domain.ZeroAmount
	for _, leg := range legs {
		var overflow bool
		total, overflow = total.Add(leg.Amount)
		if overflow {
			return domain.ZeroAmount, xerrors.Errorf("legs total overflow: %w", domain.ErrInternalInconsistency)
		}
	}
	return total, nil
}

// Unallocated is price minus the legs total: the part of the sale no leg
// pays out.
func Unallocated(price domain.Amount, legs []Leg) (domain.Amount, error) {
	total, err := Total(legs)
	if err != nil {
		return domain.ZeroAmount, err
	}
	remainder, underflow := price.Sub(total)
	if underflow {
		return domain.ZeroAmount, xerrors.Errorf("legs total %s exceeds price %s: %w", total, price, domain.ErrInternalInconsistency)
	}
	return remainder, nil
}
