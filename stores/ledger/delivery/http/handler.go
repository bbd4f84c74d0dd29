package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/base/delivery"
	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/domain/ledger"
)

type handler struct {
	ledger ledger.UseCase
}

func New(e *echo.Echo, ledger ledger.UseCase) {
	h := &handler{ledger}

	e.GET("/purchases/:id/ledger", h.findByPurchase)
}

func (h *handler) findByPurchase(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.ledger.FindAll(ctx, ledger.WithPurchase(domain.PurchaseId(c.Param("id"))))
	if err != nil {
		ctx.WithField("err", err).Error("ledger.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
