package download

import (
	"net/http"
	"time"
)

// Transport tuning for the shared client
const (
	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 10
	IdleConnTimeout     = 90 * time.Second
)

// NewHTTPClient creates the HTTP client used for image fetches. There is no
// overall request timeout: a slow fetch blocks only its own paste operation,
// which is cancellable through the request context.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        MaxIdleConns,
			MaxIdleConnsPerHost: MaxIdleConnsPerHost,
			IdleConnTimeout:     IdleConnTimeout,
		},
	}
}
