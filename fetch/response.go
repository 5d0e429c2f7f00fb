package fetch

import (
	"encoding/json"
	"io"
)

// Response is the standardized response produced by an application handler.
// Exactly one body variant is set: a fully-buffered byte block or a readable
// stream. A zero-length buffered body is still a buffered body.
type Response struct {
	StatusCode int
	Headers    *Headers

	buf      []byte
	stream   io.Reader
	streamed bool
}

// NewResponse builds a response with a fully-buffered body. body may be nil
// or empty for status-only replies.
func NewResponse(status int, headers *Headers, body []byte) *Response {
	if headers == nil {
		headers = NewHeaders()
	}
	return &Response{StatusCode: status, Headers: headers, buf: body}
}

// NewStreamResponse builds a response whose body is read lazily from body.
// If body implements io.Closer it is closed once fully drained. A nil body
// degrades to an empty buffered response.
func NewStreamResponse(status int, headers *Headers, body io.Reader) *Response {
	if body == nil {
		return NewResponse(status, headers, nil)
	}
	if headers == nil {
		headers = NewHeaders()
	}
	return &Response{StatusCode: status, Headers: headers, stream: body, streamed: true}
}

// Buffered returns the buffered body. ok is false for the streamed variant.
func (r *Response) Buffered() ([]byte, bool) {
	if r == nil || r.streamed {
		return nil, false
	}
	return r.buf, true
}

// Stream returns the body stream. ok is false for the buffered variant.
func (r *Response) Stream() (io.Reader, bool) {
	if r == nil || !r.streamed {
		return nil, false
	}
	return r.stream, true
}

// JSON marshals v into a buffered response with a JSON content type.
func JSON(status int, v interface{}) (*Response, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	h := NewHeaders()
	h.Set("content-type", "application/json")
	return NewResponse(status, h, b), nil
}

// Text returns a buffered plain-text response.
func Text(status int, s string) *Response {
	h := NewHeaders()
	h.Set("content-type", "text/plain; charset=utf-8")
	return NewResponse(status, h, []byte(s))
}
