package payment

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	bCtx "github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/base/log"
	"github.com/x-xyz/escrow/base/metrics"
	"github.com/x-xyz/escrow/domain"
)

const (
	defaultRetryMax  = 3
	idempotencyKey   = "Idempotency-Key"
	maxResponseBytes = 1 << 16
)

func NewClient(cfg *ClientCfg) Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = defaultRetryMax
	if cfg.RetryMax > 0 {
		retryClient.RetryMax = cfg.RetryMax
	}
	if cfg.RetryWaitMin > 0 {
		retryClient.RetryWaitMin = cfg.RetryWaitMin
	}
	if cfg.RetryWaitMax > 0 {
		retryClient.RetryWaitMax = cfg.RetryWaitMax
	}

	return &client{
		client:  retryClient,
		baseUrl: strings.TrimRight(cfg.BaseUrl, "/"),
		apiKey:  cfg.ApiKey,
		timeout: cfg.Timeout,
		met:     metrics.New("payment"),
	}
}

type client struct {
	client  *retryablehttp.Client
	baseUrl string
	apiKey  string
	timeout time.Duration
	met     metrics.Service
}

// Transfer pays amount to the account. memo identifies the disbursement and
// doubles as the idempotency key, so a retried request is paid at most once.
func (c *client) Transfer(ctx bCtx.Ctx, to domain.AccountId, amount domain.Amount, memo string) error {
	defer c.met.BumpTime("transfer.latency").End()

	body, err := json.Marshal(transferBody{
		To:     to.String(),
		Amount: amount.String(),
		Memo:   memo,
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"to":  to,
		}).Error("json.Marshal failed")
		return err
	}

	if _, err := c.post(ctx, "transfers", memo, body); err != nil {
		c.met.BumpSum("transfer.err", 1)
		ctx.WithFields(log.Fields{
			"err":    err,
			"to":     to,
			"amount": amount,
			"memo":   memo,
		}).Error("c.post failed")
		return err
	}
	return nil
}

// Collect debits up to amount from the account. The payment service answers
// with the amount it actually took, which is what the caller may spend.
func (c *client) Collect(ctx bCtx.Ctx, from domain.AccountId, amount domain.Amount, memo string) (domain.Amount, error) {
	defer c.met.BumpTime("collect.latency").End()

	body, err := json.Marshal(collectBody{
		From:   from.String(),
		Amount: amount.String(),
		Memo:   memo,
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"from": from,
		}).Error("json.Marshal failed")
		return domain.ZeroAmount, err
	}

	data, err := c.post(ctx, "collections", memo, body)
	if err != nil {
		c.met.BumpSum("collect.err", 1)
		ctx.WithFields(log.Fields{
			"err":    err,
			"from":   from,
			"amount": amount,
			"memo":   memo,
		}).Error("c.post failed")
		return domain.ZeroAmount, err
	}

	res := collectResp{}
	if err := json.Unmarshal(data, &res); err != nil || res.Collected == nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"body": string(data),
			"memo": memo,
		}).Error("invalid collect response")
		return domain.ZeroAmount, ErrBadResponse
	}
	if res.Collected.Gt(amount) {
		ctx.WithFields(log.Fields{
			"collected": res.Collected,
			"amount":    amount,
			"memo":      memo,
		}).Error("collected more than requested")
		return domain.ZeroAmount, ErrBadResponse
	}
	return *res.Collected, nil
}

func (c *client) post(ctx bCtx.Ctx, path, memo string, body []byte) ([]byte, error) {
	if c.timeout > 0 {
		var cancel func()
		ctx, cancel = bCtx.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	url := fmt.Sprintf("%s/%s", c.baseUrl, path)
	req, err := retryablehttp.NewRequest(http.MethodPost, url, body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"url": url,
		}).Error("retryablehttp.NewRequest failed")
		return nil, err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(idempotencyKey, memo)
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
			"memo":       memo,
		}).Warn("payment responded non 2xx")
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
