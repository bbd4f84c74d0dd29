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
	"github.com/x-xyz/escrow/base/validator"
	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/domain/listing"
	listingMocks "github.com/x-xyz/escrow/domain/listing/mocks"
	"github.com/x-xyz/escrow/domain/mocks"
	authMiddleware "github.com/x-xyz/escrow/stores/auth/delivery/http/middleware"
)

var relayed = domain.Caller{Predecessor: "registry.near", Signer: "alice.near"}

func newServer(uc listing.UseCase) *echo.Echo {
	auth := &mocks.AuthUsecase{}
	auth.On("ParseToken", mock.Anything, "token").Return(relayed, nil)

	e := echo.New()
	e.Validator = validator.NewCustomValidator(validator.New())
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

func TestApprove(t *testing.T) {
	uc := &listingMocks.UseCase{}
	e := newServer(uc)

	want := listing.ListRequest{AssetId: "token-1", OwnerId: "alice.near", ApprovalId: 2, Msg: `{"price":"10000","donation":"0"}`}
	uc.On("List", mock.Anything, relayed, want).Return(&listing.Listing{AssetId: "token-1"}, nil).Once()

	rec := do(e, http.MethodPost, "/registry/approve", `{"assetId":"token-1","ownerId":"alice.near","approvalId":2,"msg":"{\"price\":\"10000\",\"donation\":\"0\"}"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	uc.AssertExpectations(t)
}

func TestApproveRejects(t *testing.T) {
	uc := &listingMocks.UseCase{}
	e := newServer(uc)

	rec := do(e, http.MethodPost, "/registry/approve", `{"assetId":"token-1","ownerId":"Not Valid","msg":"{}"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	uc.On("List", mock.Anything, relayed, mock.Anything).Return(nil, domain.ErrPriceTooLow).Once()
	rec = do(e, http.MethodPost, "/registry/approve", `{"assetId":"token-1","ownerId":"alice.near","msg":"{}"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	uc.On("List", mock.Anything, relayed, mock.Anything).Return(nil, domain.ErrUnauthorized).Once()
	rec = do(e, http.MethodPost, "/registry/approve", `{"assetId":"token-1","ownerId":"alice.near","msg":"{}"}`)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdate(t *testing.T) {
	uc := &listingMocks.UseCase{}
	e := newServer(uc)

	uc.On("Update", mock.Anything, relayed, domain.AssetId("token-1"), domain.NewAmount(20000), domain.NewAmount(100)).
		Return(&listing.Listing{AssetId: "token-1"}, nil).Once()
	rec := do(e, http.MethodPut, "/listings/token-1", `{"price":"20000","donation":"100"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodPut, "/listings/token-1", `{"price":"20000"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	uc.On("Update", mock.Anything, relayed, domain.AssetId("token-9"), mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound).Once()
	rec = do(e, http.MethodPut, "/listings/token-9", `{"price":"20000","donation":"0"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	uc.AssertExpectations(t)
}

func TestDeleteAndGet(t *testing.T) {
	uc := &listingMocks.UseCase{}
	e := newServer(uc)

	uc.On("Delete", mock.Anything, relayed, domain.AssetId("token-1")).Return(nil).Once()
	require.Equal(t, http.StatusOK, do(e, http.MethodDelete, "/listings/token-1", "").Code)

	uc.On("Get", mock.Anything, domain.AssetId("token-2")).Return(nil, domain.ErrNotFound).Once()
	require.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/listings/token-2", "").Code)

	uc.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return([]*listing.Listing{}, nil).Once()
	require.Equal(t, http.StatusOK, do(e, http.MethodGet, "/listings?owner=alice.near&limit=10", "").Code)
	uc.AssertExpectations(t)
}
