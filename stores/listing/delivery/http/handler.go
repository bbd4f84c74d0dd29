package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/base/delivery"
	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/domain/listing"
	authMiddleware "github.com/x-xyz/escrow/stores/auth/delivery/http/middleware"
)

const defaultLimit = 50

type handler struct {
	listing listing.UseCase
}

// New registers the listing routes. browse wraps the public listing search,
// e.g. with a response cache.
func New(e *echo.Echo, listing listing.UseCase, authMiddleware *authMiddleware.AuthMiddleware, browse ...echo.MiddlewareFunc) {
	h := &handler{listing}

	e.POST("/registry/approve", h.approve, authMiddleware.Auth())

	e.GET("/listings", h.findAll, browse...)
	e.GET("/listings/:assetId", h.get)
	e.PUT("/listings/:assetId", h.update, authMiddleware.Auth())
	e.DELETE("/listings/:assetId", h.delete, authMiddleware.Auth())
}

// approve is called by the asset registry once an owner approves the
// escrow for an asset.
func (h *handler) approve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller, _ := authMiddleware.Caller(c)

	req := listing.ListRequest{}
	if err := c.Bind(&req); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.listing.List(ctx, caller, req)
	if err != nil {
		ctx.WithField("err", err).Warn("listing.List failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) findAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Owner  domain.AccountId `query:"owner"`
		Offset int32            `query:"offset"`
		Limit  int32            `query:"limit"`
	}

	p := &params{Limit: defaultLimit}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []listing.FindAllOptionsFunc{listing.WithPagination(p.Offset, p.Limit)}
	if !p.Owner.IsEmpty() {
		opts = append(opts, listing.WithOwner(p.Owner))
	}
	res, err := h.listing.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithField("err", err).Error("listing.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.listing.Get(ctx, domain.AssetId(c.Param("assetId")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller, _ := authMiddleware.Caller(c)

	type payload struct {
		Price    *domain.Amount `json:"price"`
		Donation *domain.Amount `json:"donation"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Price == nil || p.Donation == nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrMalformedRequest)
	}

	res, err := h.listing.Update(ctx, caller, domain.AssetId(c.Param("assetId")), *p.Price, *p.Donation)
	if err != nil {
		ctx.WithField("err", err).Warn("listing.Update failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller, _ := authMiddleware.Caller(c)

	if err := h.listing.Delete(ctx, caller, domain.AssetId(c.Param("assetId"))); err != nil {
		ctx.WithField("err", err).Warn("listing.Delete failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
