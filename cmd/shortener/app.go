package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/Totarae/shortlink/internal/auth"
	"github.com/Totarae/shortlink/internal/config"
	"github.com/Totarae/shortlink/internal/database"
	"github.com/Totarae/shortlink/internal/handlers"
	"github.com/Totarae/shortlink/internal/repositories"
	"github.com/Totarae/shortlink/internal/router"
	"github.com/Totarae/shortlink/internal/service"
	"github.com/Totarae/shortlink/internal/storage"
	"github.com/Totarae/shortlink/internal/util"
	"github.com/Totarae/shortlink/internal/validation"
)

// openStore выбирает хранилище по режиму. В режиме database сначала накатываются миграции.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.Store, error) {
	if cfg.Mode != config.ModeDatabase {
		logger.Info("Используется хранилище в памяти")
		return storage.NewMemory(), nil
	}

	if err := database.MigrateUp(cfg.DatabaseDSN, logger); err != nil {
		return nil, err
	}
	db, err := database.NewDB(ctx, cfg.DatabaseDSN, logger)
	if err != nil {
		return nil, err
	}
	return repositories.NewPostgres(db), nil
}

// openBlacklist возвращает чёрный список из Redis, если он настроен, иначе из конфигурации.
func openBlacklist(ctx context.Context, cfg *config.Config, logger *zap.Logger) (auth.Blacklist, func(), error) {
	if cfg.RedisURL == "" {
		return auth.StaticBlacklist(cfg.BlacklistedKeys), func() {}, nil
	}

	client, err := auth.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	logger.Info("Чёрный список читается из Redis", zap.String("key", cfg.BlacklistKey))

	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Warn("redis close", zap.Error(err))
		}
	}
	return auth.NewRedisBlacklist(client, cfg.BlacklistKey), closeFn, nil
}

// buildHandler связывает сервисы, обработчики и маршрутизатор.
func buildHandler(cfg *config.Config, store storage.Store, bl auth.Blacklist, logger *zap.Logger) (http.Handler, error) {
	gen, err := util.NewGenerator()
	if err != nil {
		return nil, fmt.Errorf("init code generator: %w", err)
	}

	urls := service.NewShortenerService(store, gen, auth.NewBcrypt(cfg.BcryptCost), logger)
	h := handlers.NewHandler(urls, service.NewUserService(store, logger), validation.New(), cfg.BaseURL, logger)

	deps := router.Deps{
		Handler:   h,
		Verifier:  auth.NewVerifier(store),
		Blacklist: bl,
		Logger:    logger,
	}
	if cfg.RequestLog {
		deps.RequestLog = store
	}
	return router.NewRouter(deps), nil
}
