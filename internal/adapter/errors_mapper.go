package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapLoadError turns an HTTP error status into a load failure. A browser
// fires the script error event for these, so they never reach the callback.
func mapLoadError(resp *resty.Response) error {
	if resp.StatusCode() < http.StatusBadRequest {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	if len(body) > 200 {
		body = body[:200]
	}

	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
