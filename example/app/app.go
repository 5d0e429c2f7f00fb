// Package app is a stand-in for a compiled application: a Fetch-style
// handler the bridge treats as opaque. It routes on the standardized request
// and answers with standardized responses, never touching net/http writers.
package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-kyugo/fetchbridge"
	"github.com/go-kyugo/fetchbridge/example/dto"
	"github.com/go-kyugo/fetchbridge/fetch"
	"github.com/go-kyugo/fetchbridge/validation"
)

// LoadContext is the per-request value the example server hands through the
// bridge to this application.
type LoadContext struct {
	RequestID  string
	RemoteAddr string
}

type successEnvelope struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

type errorBody struct {
	Type    string                  `json:"type"`
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}

type errorEnvelope struct {
	Status string    `json:"status"`
	Code   int       `json:"code"`
	Error  errorBody `json:"error"`
}

// Handler is the demo application handler bound into the bridge.
func Handler(ctx context.Context, req *fetch.Request, loadCtx interface{}) (*fetch.Response, error) {
	switch {
	case req.Method == http.MethodGet && req.URL.Path == "/":
		return index(ctx, loadCtx)
	case req.Method == http.MethodGet && req.URL.Path == "/headers":
		return echoHeaders(req)
	case req.Method == http.MethodGet && req.URL.Path == "/stream":
		return stream()
	case req.Method == http.MethodPost && req.URL.Path == "/products":
		return createProduct(req)
	}
	return errorResponse(http.StatusNotFound, "NOT_FOUND", "no such route", nil)
}

func index(ctx context.Context, loadCtx interface{}) (*fetch.Response, error) {
	mode, _ := fetchbridge.ModeFromContext(ctx)
	data := map[string]interface{}{"app": "fetchbridge example", "mode": mode}
	if lc, ok := loadCtx.(*LoadContext); ok {
		data["request_id"] = lc.RequestID
	}
	return fetch.JSON(http.StatusOK, successEnvelope{Status: "success", Data: data})
}

func echoHeaders(req *fetch.Request) (*fetch.Response, error) {
	hdrs := map[string]string{}
	for _, e := range req.Headers.Entries() {
		hdrs[e.Name] = e.Value
	}
	return fetch.JSON(http.StatusOK, successEnvelope{Status: "success", Data: hdrs})
}

// stream exercises the streamed response variant.
func stream() (*fetch.Response, error) {
	var lines []string
	for i := 1; i <= 10; i++ {
		lines = append(lines, strings.Repeat("#", i))
	}
	h := fetch.NewHeaders()
	h.Set("content-type", "text/plain; charset=utf-8")
	return fetch.NewStreamResponse(http.StatusOK, h, strings.NewReader(strings.Join(lines, "\n")+"\n")), nil
}

func createProduct(req *fetch.Request) (*fetch.Response, error) {
	if req.Body == nil {
		return errorResponse(http.StatusBadRequest, "INVALID_BODY", "request body is required", nil)
	}
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}

	var in dto.CreateProductRequest
	if err := json.Unmarshal(b, &in); err != nil {
		return errorResponse(http.StatusBadRequest, "INVALID_BODY", "invalid JSON body", nil)
	}
	if err := validation.Validate(&in); err != nil {
		fields := validation.FieldErrors(err, &in)
		return errorResponse(http.StatusUnprocessableEntity, "INVALID_ATTRIBUTES", "validation failed", fields)
	}

	product := dto.Product{ID: 1, Name: in.Name, Price: in.Price, CreatedAt: time.Now().UTC()}
	return fetch.JSON(http.StatusCreated, successEnvelope{Status: "success", Data: product})
}

func errorResponse(status int, code, message string, fields []validation.FieldError) (*fetch.Response, error) {
	env := errorEnvelope{
		Status: "error",
		Code:   status,
		Error:  errorBody{Type: "HTTP_ERROR", Code: code, Message: message, Fields: fields},
	}
	return fetch.JSON(status, env)
}
