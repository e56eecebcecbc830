package main

import (
	"context"
	"os"

	"github.com/plancare/customer-service/internal/config"
	"github.com/plancare/customer-service/internal/customer/repository"
	"github.com/plancare/customer-service/internal/database"
	"github.com/plancare/customer-service/pkg/logger"
)

func main() {
	if err := newRootCmd(openConfiguredStore).Execute(); err != nil {
		os.Exit(1)
	}
}

// openConfiguredStore opens the same Store the HTTP service would use.
func openConfiguredStore(ctx context.Context) (repository.Store, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger.Init(cfg.LogLevel)

	rdb := database.ConnectRedis(ctx, cfg.Redis)
	store, closeStore, err := database.OpenStore(ctx, cfg, rdb)
	if err != nil {
		if rdb != nil {
			_ = rdb.Close()
		}
		return nil, nil, err
	}
	return store, func() {
		closeStore()
		if rdb != nil {
			_ = rdb.Close()
		}
	}, nil
}
