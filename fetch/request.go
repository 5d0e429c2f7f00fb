// Package fetch holds the standardized request and response values exchanged
// between a calling HTTP server and an application handler. They are the
// common interchange format: the server side is translated into them, the
// application side produces them.
package fetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// Request is the standardized request handed to an application handler. It
// is a read-only value: the bridge builds it once per incoming request and
// never mutates it afterwards.
type Request struct {
	Method  string
	URL     *url.URL
	Headers *Headers
	// Body is nil for methods that carry no payload (GET, HEAD). When set it
	// is a live stream over the native request body and may only be consumed
	// once.
	Body io.Reader
}

// NewRequest builds a Request. A nil headers container is replaced with an
// empty one so accessors never have to nil-check it.
func NewRequest(method string, u *url.URL, headers *Headers, body io.Reader) *Request {
	if headers == nil {
		headers = NewHeaders()
	}
	return &Request{Method: method, URL: u, Headers: headers, Body: body}
}

// HasBody reports whether method permits a request payload.
func HasBody(method string) bool {
	return method != http.MethodGet && method != http.MethodHead
}

// HandlerFunc is the application-side contract: the routing, data loading
// and rendering pipeline bound into the bridge. The bridge treats it as a
// black box. loadContext is the per-request value produced by the server's
// load-context hook, or nil when none is configured.
type HandlerFunc func(ctx context.Context, req *Request, loadContext interface{}) (*Response, error)
