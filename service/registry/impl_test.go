package registry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/domain/purchase"
)

func newRequest() purchase.TransferRequest {
	return purchase.TransferRequest{
		PurchaseId:    "p1",
		Receiver:      "bob.near",
		AssetId:       "token-1",
		ApprovalId:    7,
		Balance:       domain.NewAmount(10000),
		MaxRecipients: 10,
	}
}

func TestTransferAndReportPayout(t *testing.T) {
	req := require.New(t)

	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal(http.MethodPost, r.Method)
		req.Equal("/nft_transfer_payout", r.URL.Path)
		req.Equal("Bearer secret", r.Header.Get("Authorization"))
		req.NoError(json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"payout":{"alice.near":"10000"}}`))
	}))
	defer srv.Close()

	c := NewClient(&ClientCfg{BaseUrl: srv.URL + "/", ApiKey: "secret", Timeout: time.Second})
	res, err := c.TransferAndReportPayout(bCtx.Background(), newRequest())
	req.NoError(err)
	req.JSONEq(`{"payout":{"alice.near":"10000"}}`, string(res))

	req.Equal(map[string]interface{}{
		"receiver_id":    "bob.near",
		"token_id":       "token-1",
		"approval_id":    float64(7),
		"balance":        "10000",
		"max_len_payout": float64(10),
	}, got)
}

func TestTransferAndReportPayoutFailures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		timeout time.Duration
		wantErr error
	}{
		{
			name: "non 2xx",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			timeout: time.Second,
			wantErr: ErrStatusCodeNotOk,
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(time.Second):
				}
			},
			timeout: 50 * time.Millisecond,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(c.handler)
			defer srv.Close()

			cli := NewClient(&ClientCfg{BaseUrl: srv.URL, Timeout: c.timeout})
			res, err := cli.TransferAndReportPayout(bCtx.Background(), newRequest())
			require.Error(t, err)
			require.Nil(t, res)
			if c.wantErr != nil {
				require.ErrorIs(t, err, c.wantErr)
			}
		})
	}
}

func TestTransferAndReportPayoutUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	cli := NewClient(&ClientCfg{BaseUrl: url, Timeout: time.Second})
	_, err := cli.TransferAndReportPayout(bCtx.Background(), newRequest())
	require.Error(t, err)
}
