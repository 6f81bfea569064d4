package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annakovaleva/blogview/internal/logging"
	"github.com/annakovaleva/blogview/internal/stubserver"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	log := logging.NewJSON(os.Stdout, slog.LevelInfo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              *addr,
		Handler:           stubserver.NewRouter(log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info(ctx, "stub resource starting", "addr", *addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
