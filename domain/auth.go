package domain

import (
	"github.com/golang-jwt/jwt"
	"github.com/x-xyz/escrow/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"` // name data for backward compatibility
	// Signer is set when Address relays a call signed by another account,
	// e.g. the asset registry forwarding an owner's approval.
	Signer string `json:"signer,omitempty"`
	jwt.StandardClaims
}

// Caller is who triggered an operation. Predecessor is the account that
// made the call, Signer the account that authorized it. They are the same
// for direct calls.
type Caller struct {
	Predecessor AccountId `json:"predecessor"`
	Signer      AccountId `json:"signer"`
}

func DirectCaller(id AccountId) Caller {
	return Caller{Predecessor: id, Signer: id}
}

type AuthUsecase interface {
	SignToken(ctx ctx.Ctx, account AccountId, signer AccountId) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (Caller, error)
}
