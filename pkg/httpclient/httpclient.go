package httpclient

import (
	"net/http"
	"time"
)

// New builds the HTTP client shared by the feed and store calls. The
// timeout bounds the whole exchange, including reading the body.
func New(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}
