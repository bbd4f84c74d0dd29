package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestValidAccountIdQuery(t *testing.T) {
	cases := []struct {
		target string
		want   int
	}{
		{target: "/purchases", want: http.StatusOK},
		{target: "/purchases?buyer=bob.near", want: http.StatusOK},
		{target: "/purchases?buyer=Bob%20Near", want: http.StatusBadRequest},
	}

	e := echo.New()
	for _, c := range cases {
		t.Run(c.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ec := e.NewContext(httptest.NewRequest(http.MethodGet, c.target, nil), rec)
			h := ValidAccountIdQuery("buyer")(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})
			require.NoError(t, h(ec))
			require.Equal(t, c.want, rec.Code)
		})
	}
}
