package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/base/delivery"
	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/domain/config"
	authMiddleware "github.com/x-xyz/escrow/stores/auth/delivery/http/middleware"
)

type handler struct {
	config config.UseCase
}

func New(e *echo.Echo, config config.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{config}

	e.GET("/config", h.get)

	g := e.Group("/admin", authMiddleware.Auth())
	g.PUT("/owner", h.setOwner)
	g.PUT("/minPrice", h.changeMinPrice)
	g.PUT("/charity", h.updateCharity)
	g.PUT("/royalty", h.updateRoyalty)
	g.PUT("/registry", h.updateRegistry)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.config.Get(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

type accountPayload struct {
	Account domain.AccountId `json:"account"`
}

func (h *handler) setOwner(c echo.Context) error {
	return h.withAccount(c, h.config.SetOwner)
}

func (h *handler) updateCharity(c echo.Context) error {
	return h.withAccount(c, h.config.UpdateCharityAccount)
}

func (h *handler) updateRegistry(c echo.Context) error {
	return h.withAccount(c, h.config.UpdateRegistry)
}

func (h *handler) withAccount(c echo.Context, set func(ctx.Ctx, domain.Caller, domain.AccountId) error) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller, _ := authMiddleware.Caller(c)

	p := &accountPayload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := set(ctx, caller, p.Account); err != nil {
		ctx.WithField("err", err).Warn("config setter failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) changeMinPrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller, _ := authMiddleware.Caller(c)

	type payload struct {
		MinPrice *domain.Amount `json:"minPrice"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.MinPrice == nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrMalformedRequest)
	}
	if err := h.config.ChangeMinPrice(ctx, caller, *p.MinPrice); err != nil {
		ctx.WithField("err", err).Warn("config.ChangeMinPrice failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) updateRoyalty(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller, _ := authMiddleware.Caller(c)

	type payload struct {
		Bps *uint64 `json:"bps"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Bps == nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrMalformedRequest)
	}
	if err := h.config.UpdateRoyalty(ctx, caller, *p.Bps); err != nil {
		ctx.WithField("err", err).Warn("config.UpdateRoyalty failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
