package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/go-kyugo/fetchbridge"
	"github.com/go-kyugo/fetchbridge/config"
	"github.com/go-kyugo/fetchbridge/example/app"
	"github.com/go-kyugo/fetchbridge/logger"
	"github.com/go-kyugo/fetchbridge/middleware"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var cfg config.Config
	if err := config.Load("config.json", &cfg); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	addr := ":8080"
	if cfg.Server.Host != "" || cfg.Server.Port != 0 {
		addr = fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	}

	level := logger.LevelInfo
	if cfg.App.Debug {
		level = logger.LevelDebug
	}
	log := logger.NewConsole(os.Stdout, level, true)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(cfg.Server.Cors))

	h := fetchbridge.NewHandler(app.Handler,
		fetchbridge.WithLogger(log),
		fetchbridge.WithLoadContext(func(w http.ResponseWriter, r *http.Request) interface{} {
			return &app.LoadContext{
				RequestID:  chimw.GetReqID(r.Context()),
				RemoteAddr: r.RemoteAddr,
			}
		}),
	)
	fetchbridge.Mount(r, h)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	log.Info("listening", logger.Fields{"addr": addr, "mode": h.Mode()})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
