package main

import (
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Fatal("Ошибка выполнения команды", zap.Error(err))
	}
}
