package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/base/delivery"
	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/domain/purchase"
	authMiddleware "github.com/x-xyz/escrow/stores/auth/delivery/http/middleware"
)

const defaultLimit = 50

type handler struct {
	purchase purchase.UseCase
}

func New(e *echo.Echo, purchase purchase.UseCase, authMiddleware *authMiddleware.AuthMiddleware, browse ...echo.MiddlewareFunc) {
	h := &handler{purchase}

	e.POST("/listings/:assetId/buy", h.buy, authMiddleware.Auth())

	e.GET("/purchases", h.findAll, browse...)
	e.GET("/purchases/:id", h.get)
}

// buy answers 202: the purchase settles in the background and its state is
// read back through GET /purchases/:id. deposit is the amount the caller
// authorizes; the use case collects it from the payment service.
func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller, _ := authMiddleware.Caller(c)

	type payload struct {
		Deposit *domain.Amount `json:"deposit"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Deposit == nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrMalformedRequest)
	}

	res, err := h.purchase.Buy(ctx, caller, domain.AssetId(c.Param("assetId")), *p.Deposit)
	if err != nil {
		ctx.WithField("err", err).Warn("purchase.Buy failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusAccepted, res)
}

func (h *handler) findAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Buyer  domain.AccountId `query:"buyer"`
		State  purchase.State   `query:"state"`
		Offset int32            `query:"offset"`
		Limit  int32            `query:"limit"`
	}

	p := &params{Limit: defaultLimit}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []purchase.FindAllOptionsFunc{purchase.WithPagination(p.Offset, p.Limit)}
	if !p.Buyer.IsEmpty() {
		opts = append(opts, purchase.WithBuyer(p.Buyer))
	}
	if p.State != "" {
		opts = append(opts, purchase.WithState(p.State))
	}
	res, err := h.purchase.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithField("err", err).Error("purchase.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.purchase.Get(ctx, domain.PurchaseId(c.Param("id")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
