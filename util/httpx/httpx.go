package httpx

import (
	"net"
	"net/http"
	"time"
)

var defaultClient = NewClient(10 * time.Second)

// NewClient builds an outbound client with an overall request timeout.
// The feeds live behind redirect-happy download endpoints, so keep-alives
// and a per-host connection cap matter more than raw pool size.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxConnsPerHost:     100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

func Client() *http.Client { return defaultClient }
