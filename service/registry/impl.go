package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	bCtx "github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/base/log"
	"github.com/x-xyz/escrow/base/metrics"
	"github.com/x-xyz/escrow/domain/purchase"
)

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:  cfg.HttpClient,
		baseUrl: strings.TrimRight(cfg.BaseUrl, "/"),
		apiKey:  cfg.ApiKey,
		timeout: cfg.Timeout,
		met:     metrics.New("registry"),
	}
}

type client struct {
	client  http.Client
	baseUrl string
	apiKey  string
	timeout time.Duration
	met     metrics.Service
}

// TransferAndReportPayout asks the registry to move the asset to the buyer.
// The call is made once: retrying a transfer that may have happened is not
// safe. The returned body is the registry's raw payout report.
func (c *client) TransferAndReportPayout(ctx bCtx.Ctx, req purchase.TransferRequest) ([]byte, error) {
	defer c.met.BumpTime("transfer.latency").End()

	body, err := json.Marshal(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"req": req,
		}).Error("json.Marshal failed")
		return nil, err
	}

	url := fmt.Sprintf("%s/nft_transfer_payout", c.baseUrl)
	res, err := c.post(ctx, url, body)
	if err != nil {
		c.met.BumpSum("transfer.err", 1)
		ctx.WithFields(log.Fields{
			"err":        err,
			"url":        url,
			"purchaseId": req.PurchaseId,
			"assetId":    req.AssetId,
		}).Error("c.post failed")
		return nil, err
	}
	return res, nil
}

func (c *client) post(ctx bCtx.Ctx, url string, body []byte) ([]byte, error) {
	if c.timeout > 0 {
		var cancel func()
		ctx, cancel = bCtx.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Warn("registry responded non 2xx")
		return nil, ErrStatusCodeNotOk
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return data, nil
}
