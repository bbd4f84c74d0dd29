package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/domain/mocks"
	"github.com/x-xyz/escrow/domain/purchase"
	purchaseMocks "github.com/x-xyz/escrow/domain/purchase/mocks"
	authMiddleware "github.com/x-xyz/escrow/stores/auth/delivery/http/middleware"
)

var bob = domain.DirectCaller("bob.near")

func newServer(uc purchase.UseCase) *echo.Echo {
	auth := &mocks.AuthUsecase{}
	auth.On("ParseToken", mock.Anything, "token").Return(bob, nil)

	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, uc, authMiddleware.New(auth))
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestBuy(t *testing.T) {
	uc := &purchaseMocks.UseCase{}
	e := newServer(uc)

	uc.On("Buy", mock.Anything, bob, domain.AssetId("token-1"), domain.NewAmount(10000)).
		Return(&purchase.Purchase{Id: "p1", State: purchase.StateTransferPending}, nil).Once()
	rec := do(e, http.MethodPost, "/listings/token-1/buy", `{"deposit":"10000"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Contains(t, rec.Body.String(), `"transferPending"`)
	uc.AssertExpectations(t)
}

func TestBuyRejects(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "missing deposit", body: `{}`, status: http.StatusBadRequest},
		{name: "bad deposit", body: `{"deposit":"1.5"}`, status: http.StatusBadRequest},
		{name: "not listed", body: `{"deposit":"10000"}`, err: domain.ErrNotFound, status: http.StatusNotFound},
		{name: "deposit too low", body: `{"deposit":"10000"}`, err: domain.ErrInsufficientPayment, status: http.StatusBadRequest},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			uc := &purchaseMocks.UseCase{}
			e := newServer(uc)
			if c.err != nil {
				uc.On("Buy", mock.Anything, bob, domain.AssetId("token-1"), mock.Anything).Return(nil, c.err).Once()
			}
			rec := do(e, http.MethodPost, "/listings/token-1/buy", c.body)
			require.Equal(t, c.status, rec.Code)
			uc.AssertExpectations(t)
		})
	}
}

func TestGet(t *testing.T) {
	uc := &purchaseMocks.UseCase{}
	e := newServer(uc)

	uc.On("Get", mock.Anything, domain.PurchaseId("p1")).Return(&purchase.Purchase{Id: "p1", State: purchase.StateSettled}, nil).Once()
	rec := do(e, http.MethodGet, "/purchases/p1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"settled"`)

	uc.On("Get", mock.Anything, domain.PurchaseId("p2")).Return(nil, domain.ErrNotFound).Once()
	rec = do(e, http.MethodGet, "/purchases/p2", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFindAll(t *testing.T) {
	uc := &purchaseMocks.UseCase{}
	e := newServer(uc)

	uc.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return([]*purchase.Purchase{{Id: "p1"}}, nil).Once()
	rec := do(e, http.MethodGet, "/purchases?buyer=bob.near", "")
	require.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}
