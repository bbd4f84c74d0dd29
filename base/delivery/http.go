package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

var statusByErr = []struct {
	err    error
	status int
}{
	{domain.ErrNotFound, http.StatusNotFound},
	{query.ErrNotFound, http.StatusNotFound},
	{domain.ErrUnauthorized, http.StatusForbidden},
	{domain.ErrPriceTooLow, http.StatusBadRequest},
	{domain.ErrInsufficientPayment, http.StatusBadRequest},
	{domain.ErrMalformedRequest, http.StatusBadRequest},
	{domain.ErrBadParamInput, http.StatusBadRequest},
	{domain.ErrInvalidNumberFormat, http.StatusBadRequest},
	{domain.ErrInvalidAccountId, http.StatusBadRequest},
	{domain.ErrConflict, http.StatusConflict},
}

// StatusOf maps err to the http status it is reported with, or fallback if
// it is not a known domain error.
func StatusOf(err error, fallback int) int {
	for _, s := range statusByErr {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return fallback
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
