package domain

import "github.com/x-xyz/escrow/base/ctx"

type Table string

const (
	TableListings      Table = "listings"
	TablePurchases     Table = "purchases"
	TableLedgerEntries Table = "ledger_entries"
	TableMarketplace   Table = "marketplace_config"
)

// Transactor runs writes against several tables in one transaction. run may
// be retried and must only touch the database through the ctx it is given.
type Transactor interface {
	RunWithTransaction(ctx ctx.Ctx, run func(ctx.Ctx) error) error
}
