package collector

import (
	"net/http"
	"net/url"
	"time"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=collector_test -destination=mock_http_client_test.go -source=httpclient.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// newHTTPClient builds a client with an optional proxy.
func newHTTPClient(proxyURL string, timeout time.Duration) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
