package fetchbridge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/go-kyugo/fetchbridge/config"
	"github.com/go-kyugo/fetchbridge/fetch"
	"github.com/go-kyugo/fetchbridge/logger"
)

// LoadContextFunc produces the per-request value handed through to the
// application handler. It runs once per request, after the native request
// has been translated and before the application is invoked. The returned
// value is opaque to the bridge.
type LoadContextFunc func(w http.ResponseWriter, r *http.Request) interface{}

// ErrorHandlerFunc is the error continuation. Every failure from request
// translation, the application call or response emission is forwarded here
// exactly once; the bridge performs no recovery of its own.
type ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)

// Option configures a Handler at construction time.
type Option func(h *Handler)

// WithLoadContext installs a per-request load-context producer.
func WithLoadContext(fn LoadContextFunc) Option {
	return func(h *Handler) {
		h.loadContext = fn
	}
}

// WithMode sets the runtime mode, overriding the environment default.
func WithMode(mode string) Option {
	return func(h *Handler) {
		h.mode = mode
	}
}

// WithServerTiming toggles the Server-Timing header on successful responses,
// overriding the environment default.
func WithServerTiming(enabled bool) Option {
	return func(h *Handler) {
		h.serverTiming = enabled
	}
}

// WithErrorHandler installs the error continuation. When unset, failures are
// logged and answered with a plain 500.
func WithErrorHandler(fn ErrorHandlerFunc) Option {
	return func(h *Handler) {
		h.onError = fn
	}
}

// WithLogger sets the bridge logger. The default is a no-op logger.
func WithLogger(l *logger.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// Handler runs a Fetch-style application handler inside a net/http middleware
// stack. It is stateless after construction and safe for concurrent use: the
// bound application, mode and flags are read-only, and each request owns its
// body streams exclusively.
type Handler struct {
	build        fetch.HandlerFunc
	loadContext  LoadContextFunc
	mode         string
	serverTiming bool
	onError      ErrorHandlerFunc
	log          *logger.Logger
}

// NewHandler binds build once and returns a Handler ready to mount. Options
// left unset fall back to their environment defaults: mode from
// config.EnvMode, the timing flag from config.EnvServerTiming.
func NewHandler(build fetch.HandlerFunc, options ...Option) *Handler {
	h := &Handler{
		build:        build,
		mode:         config.Mode(),
		serverTiming: config.ServerTiming(),
		log:          logger.NewNop(),
	}
	for _, opt := range options {
		opt(h)
	}
	if h.onError == nil {
		h.onError = h.logAndFail
	}
	return h
}

// Mode returns the runtime mode the handler was bound with.
func (h *Handler) Mode() string {
	if h == nil {
		return ""
	}
	return h.mode
}

// ServeHTTP translates the native request, produces the load context,
// invokes the bound application handler and emits its response. Any failure
// along the way is forwarded to the error continuation instead of being
// written directly, so the surrounding stack's error middleware stays in
// charge of the reply.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.build == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	req, err := NewRequest(r)
	if err != nil {
		h.onError(w, r, err)
		return
	}

	var loadCtx interface{}
	if h.loadContext != nil {
		loadCtx = h.loadContext(w, r)
	}

	ctx := withMode(r.Context(), h.mode)
	start := time.Now()
	res, err := h.build(ctx, req, loadCtx)
	if err != nil {
		h.onError(w, r, fmt.Errorf("application handler: %w", err))
		return
	}
	if res == nil {
		h.onError(w, r, errors.New("application handler returned no response"))
		return
	}

	if h.serverTiming {
		dur := float64(time.Since(start).Microseconds()) / 1000
		res.Headers.Set("server-timing", fmt.Sprintf("handler;dur=%.1f", dur))
	}

	if err := EmitResponse(w, res); err != nil {
		h.onError(w, r, fmt.Errorf("emitting response: %w", err))
	}
}

// logAndFail is the default error continuation.
func (h *Handler) logAndFail(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error("request failed", logger.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"error":  err.Error(),
	})
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Mount registers h as the catch-all route on a chi router, so the bridge
// can sit at the end of an ordinary middleware chain.
func Mount(r chi.Router, h *Handler) {
	r.Handle("/*", h)
}

type contextKey string

const modeKey contextKey = "fetchbridge.mode"

func withMode(ctx context.Context, mode string) context.Context {
	if mode == "" {
		return ctx
	}
	return context.WithValue(ctx, modeKey, mode)
}

// ModeFromContext returns the runtime mode the bridge bound into the request
// context, so an application handler can branch on it without holding a
// reference to the Handler.
func ModeFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	v, ok := ctx.Value(modeKey).(string)
	return v, ok
}
