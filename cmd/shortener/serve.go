package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Totarae/shortlink/internal/config"
	"github.com/Totarae/shortlink/internal/grpc/health"
)

const healthInterval = 10 * time.Second

func newServeCmd(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP and gRPC health servers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, logger)
		},
	}
}

func runServe(cmd *cobra.Command, logger *zap.Logger) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	logger.Info("Конфигурация загружена",
		zap.String("address", cfg.ServerAddress),
		zap.String("base_url", cfg.BaseURL),
		zap.String("mode", cfg.Mode),
		zap.Bool("https", cfg.EnableHTTPS),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	bl, closeBlacklist, err := openBlacklist(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeBlacklist()

	handler, err := buildHandler(cfg, store, bl, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPCAddress, err)
	}
	hs := health.NewServer(store, logger)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Сервер запущен", zap.String("address", cfg.ServerAddress))
		var serveErr error
		if cfg.EnableHTTPS {
			serveErr = srv.ListenAndServeTLS(cfg.TLSCertPath, cfg.TLSKeyPath)
		} else {
			serveErr = srv.ListenAndServe()
		}
		if errors.Is(serveErr, http.ErrServerClosed) {
			return nil
		}
		return serveErr
	})

	g.Go(func() error {
		return hs.Serve(lis)
	})

	g.Go(func() error {
		_ = hs.Check(gctx)
		hs.Watch(gctx, healthInterval)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Остановка сервера")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		hs.Stop()
		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			return fmt.Errorf("http shutdown: %w", shutdownErr)
		}
		return nil
	})

	if err = g.Wait(); err != nil {
		return err
	}
	logger.Info("Сервер остановлен")
	return nil
}
