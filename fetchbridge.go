// Package fetchbridge adapts a Fetch-style application handler so it can run
// inside a standard net/http middleware stack. The bridge translates the
// native request into the standardized form, invokes the application handler
// it was bound with, and copies the standardized response back onto the
// native writer. Routing, data loading and rendering all belong to the
// application; the bridge is a translation layer only.
package fetchbridge

import (
	"github.com/go-kyugo/fetchbridge/fetch"
	"github.com/go-kyugo/fetchbridge/logger"
)

// Re-export common types so callers can import the root package alone and
// use fetchbridge.Request, fetchbridge.Response, fetchbridge.HandlerFunc.
type Request = fetch.Request
type Response = fetch.Response
type Headers = fetch.Headers
type HandlerFunc = fetch.HandlerFunc
type Logger = logger.Logger
type Fields = logger.Fields
