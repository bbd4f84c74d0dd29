package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/base/delivery"
	"github.com/x-xyz/escrow/domain"
)

type authHandler struct {
	auth domain.AuthUsecase
}

// New registers the token endpoint. It hands out tokens to anyone and is
// only mounted on development deployments.
func New(e *echo.Echo, auth domain.AuthUsecase) {
	handler := &authHandler{
		auth: auth,
	}
	g := e.Group("/auth")
	g.POST("/sign", handler.sign)
}

// sign issues a token for account, relaying for signer when set.
func (h *authHandler) sign(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Account domain.AccountId `json:"account"`
		Signer  domain.AccountId `json:"signer"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if tkn, err := h.auth.SignToken(ctx, p.Account, p.Signer); err != nil {
		ctx.WithField("err", err).Error("auth.SignToken failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
	}
}
