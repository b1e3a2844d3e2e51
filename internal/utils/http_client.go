package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient with a default-configured resty.Client.
// Each call returns an independent client with its own connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewScriptClient creates an HTTPClient for fetching callback scripts and
// posting opaque submissions. It follows redirects like a browser loading a
// script source and never retries.
func NewScriptClient() *HTTPClient {
	client := resty.New().
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(10)).
		SetRetryCount(0).
		SetHeader("User-Agent", "go-lab-access")

	return &HTTPClient{Client: client}
}
