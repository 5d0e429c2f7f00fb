package fetchbridge

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-kyugo/fetchbridge/fetch"
)

// requestBufferSize bounds how much of the native request body is read ahead
// of the application handler before backpressure reaches the peer.
const requestBufferSize = 16 * 1024

// NewRequest translates a native incoming request into the standardized
// form. The absolute URL is resolved from the connection scheme, the Host
// header and the request path. For methods that permit a payload the body is
// a lazy reader over the native stream; nothing is consumed until the
// application handler reads from it. GET and HEAD requests never carry a
// body, whatever the native stream holds.
func NewRequest(r *http.Request) (*fetch.Request, error) {
	if r == nil {
		return nil, errors.New("nil request")
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	u, err := url.Parse(scheme + "://" + r.Host + r.URL.RequestURI())
	if err != nil {
		return nil, fmt.Errorf("resolving request url: %w", err)
	}

	var body io.Reader
	if fetch.HasBody(r.Method) && r.Body != nil {
		body = bufio.NewReaderSize(r.Body, requestBufferSize)
	}

	return fetch.NewRequest(r.Method, u, TranslateHeaders(r.Header), body), nil
}
