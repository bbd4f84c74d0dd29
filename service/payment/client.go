package payment

import (
	"errors"
	"time"

	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/domain/ledger"
)

var (
	ErrStatusCodeNotOk = errors.New("payment: http.status not 2xx")
	ErrBadResponse     = errors.New("payment: malformed response")
)

type Client interface {
	ledger.Transferer
}

type ClientCfg struct {
	BaseUrl string
	ApiKey  string
	// Timeout bounds one Transfer including its retries.
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

type collectBody struct {
	From   string `json:"from"`
	Amount string `json:"amount"`
	Memo   string `json:"memo"`
}

type collectResp struct {
	Collected *domain.Amount `json:"collected"`
}

type transferBody struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
	Memo   string `json:"memo"`
}
