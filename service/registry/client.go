package registry

import (
	"errors"
	"net/http"
	"time"

	"github.com/x-xyz/escrow/domain/purchase"
)

var (
	ErrStatusCodeNotOk = errors.New("registry: http.status not 2xx")
)

// maxResponseBytes bounds the payout response read from the registry.
const maxResponseBytes = 1 << 20

type Client interface {
	purchase.Registry
}

type ClientCfg struct {
	HttpClient http.Client
	BaseUrl    string
	// ApiKey is sent as a bearer token when set
	ApiKey  string
	Timeout time.Duration
}
