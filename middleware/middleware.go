// Package middleware carries the net/http middleware a calling server
// typically stacks in front of the bridge: request logging and CORS.
package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-kyugo/fetchbridge/config"
	"github.com/go-kyugo/fetchbridge/logger"
)

// responseRecorder captures status and size written by the wrapped handler.
type responseRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

// Unwrap exposes the underlying writer so http.ResponseController can still
// reach Flush through the recorder.
func (r *responseRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Logger logs each request as a single structured line once the wrapped
// handler returns.
func Logger(log *logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rr, r)
			log.Info("http request", logger.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"remote_addr": r.RemoteAddr,
				"status":      rr.status,
				"size":        rr.size,
				"duration_ms": time.Since(start).Milliseconds(),
			})
		})
	}
}

// CORS applies simple CORS headers from config and short-circuits preflight
// requests with 204.
func CORS(c config.CorsConfig) func(http.Handler) http.Handler {
	origin := "*"
	if len(c.AllowedOrigins) > 0 {
		origin = c.AllowedOrigins[0]
	}
	methods := "GET,POST,PUT,PATCH,DELETE,OPTIONS"
	if len(c.AllowedMethods) > 0 {
		methods = strings.Join(c.AllowedMethods, ",")
	}
	headers := strings.Join(c.AllowedHeaders, ",")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", methods)
			if headers != "" {
				w.Header().Set("Access-Control-Allow-Headers", headers)
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
