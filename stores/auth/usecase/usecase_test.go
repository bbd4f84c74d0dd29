package usecase_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"

	"github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/stores/auth/usecase"
)

func TestSignAndParseToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret", time.Hour)

	tkn, err := u.SignToken(ctx, "alice.near", "")
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)
	caller, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, domain.DirectCaller("alice.near"), caller)
}

func TestSignAndParseRelayedToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret", time.Hour)

	tkn, err := u.SignToken(ctx, "registry.near", "alice.near")
	assert.NoError(t, err)
	caller, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, domain.Caller{Predecessor: "registry.near", Signer: "alice.near"}, caller)
}

func TestSignTokenInvalidAccount(t *testing.T) {
	u := usecase.New("jwt-secret", time.Hour)

	_, err := u.SignToken(ctx.Background(), "Not Valid", "")
	assert.ErrorIs(t, err, domain.ErrInvalidAccountId)

	_, err = u.SignToken(ctx.Background(), "alice.near", "-x")
	assert.ErrorIs(t, err, domain.ErrInvalidAccountId)
}

func TestParseTokenRejects(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret", time.Hour)

	other, err := usecase.New("other-secret", time.Hour).SignToken(ctx, "alice.near", "")
	assert.NoError(t, err)
	_, err = u.ParseToken(ctx, other)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.JwtCustomClaims{
		Address:        "alice.near",
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(-time.Minute).Unix()},
	})
	ss, err := expired.SignedString([]byte("jwt-secret"))
	assert.NoError(t, err)
	_, err = u.ParseToken(ctx, ss)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = u.ParseToken(ctx, "garbage")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
