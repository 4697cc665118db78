package customHttpClient

import (
	"net/http"

	"github.com/skillsfirst/briefapi/internal/config"
)

var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

// GetPooledClient returns a client sharing the pooled transport so outbound
// sink calls reuse connections.
func GetPooledClient() *http.Client {
	return &http.Client{Transport: customTransport}
}
