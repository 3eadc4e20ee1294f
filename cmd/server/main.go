package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"github.com/croveer/minesweeper-gen/internal/config"
	"github.com/croveer/minesweeper-gen/internal/middleware"
)

func main() {
	appCfg, err := config.NewApp()
	if err != nil {
		slog.Error("failed to read app config", slog.Any("error", err))
		os.Exit(1)
	}

	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, nil)
	if appCfg.Development {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	logger := slog.New(handler)

	authCfg, err := config.NewAuth()
	if err != nil {
		logger.Error("failed to read auth config", slog.Any("error", err))
		return
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	app := &application{logger: logger}

	server := &http.Server{
		Addr:         appCfg.Addr,
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler: middleware.Wrap(app.ServeMux(),
			middleware.Cors(),
			middleware.Auth(logger, authCfg),
			middleware.Logging(logger),
		),
	}

	logger.Info("board generator listening", slog.String("addr", appCfg.Addr))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(server.ListenAndServe)
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}
