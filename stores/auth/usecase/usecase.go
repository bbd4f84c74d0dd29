package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/xerrors"

	"github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/domain"
)

const defaultTokenTtl = 24 * time.Hour

type impl struct {
	jwtSecret []byte
	ttl       time.Duration
}

func New(jwtSecret string, ttl time.Duration) domain.AuthUsecase {
	if ttl <= 0 {
		ttl = defaultTokenTtl
	}
	return &impl{
		jwtSecret: []byte(jwtSecret),
		ttl:       ttl,
	}
}

// SignToken issues a token for account. signer is set when account relays
// calls authorized by someone else and may be empty.
func (im *impl) SignToken(ctx ctx.Ctx, account domain.AccountId, signer domain.AccountId) (string, error) {
	if !account.IsValid() {
		return "", xerrors.Errorf("account %q: %w", account, domain.ErrInvalidAccountId)
	}
	if !signer.IsEmpty() && !signer.IsValid() {
		return "", xerrors.Errorf("signer %q: %w", signer, domain.ErrInvalidAccountId)
	}

	claims := domain.JwtCustomClaims{
		Address: account.String(),
		Signer:  signer.String(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(im.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

// ParseToken returns the caller carried by the token. The signer defaults
// to the token's account.
func (im *impl) ParseToken(ctx ctx.Ctx, str string) (domain.Caller, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return domain.Caller{}, xerrors.Errorf("%v: %w", err, domain.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*domain.JwtCustomClaims)
	if !ok || !token.Valid {
		return domain.Caller{}, domain.ErrUnauthorized
	}
	caller := domain.DirectCaller(domain.AccountId(claims.Address))
	if claims.Signer != "" {
		caller.Signer = domain.AccountId(claims.Signer)
	}
	return caller, nil
}
