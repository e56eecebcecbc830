package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/plancare/customer-service/internal/config"
	"github.com/plancare/customer-service/internal/customer/repository"
	"github.com/plancare/customer-service/internal/storage"
	"github.com/plancare/customer-service/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const mongoConnectAttempts = 5

// OpenStore returns the configured customers Store, wrapped with latency
// metrics and, when MinIO is configured, snapshot backups. The returned func
// releases backend connections. rdb may be nil unless the redis backend is
// selected.
func OpenStore(ctx context.Context, cfg *config.Config, rdb *redis.Client) (repository.Store, func(), error) {
	var (
		store   repository.Store
		closeFn = func() {}
	)
	switch cfg.Store.Backend {
	case repository.BackendFile:
		fs, err := repository.NewFileStore(cfg.Store.DataPath)
		if err != nil {
			return nil, nil, err
		}
		logger.Infof("using customers file %s", fs.Path())
		store = fs
	case repository.BackendMemory:
		logger.Warnf("using in-memory customer store; data is lost on restart")
		store = repository.NewMemoryStore()
	case repository.BackendRedis:
		if rdb == nil {
			return nil, nil, errors.New("redis store selected but no Redis client configured")
		}
		store = repository.NewRedisStore(rdb, cfg.Store.RedisKey)
	case repository.BackendMongo:
		client, err := ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, mongoConnectAttempts, time.Second)
		if err != nil {
			return nil, nil, err
		}
		ms := repository.NewMongoStore(client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection))
		if err := ms.EnsureIndexes(ctx); err != nil {
			logger.Warnf("%v", err)
		}
		store = ms
		closeFn = func() { _ = client.Disconnect(context.Background()) }
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	store = repository.NewInstrumented(store, cfg.Store.Backend)

	if cfg.MinIO.Enabled() {
		up, err := storage.NewMinIOStorage(ctx, &cfg.MinIO)
		if err != nil {
			logger.Warnf("snapshot backups disabled: %v", err)
		} else {
			logger.Infof("snapshot backups enabled (bucket %s)", up.Bucket())
			store = repository.NewBackupStore(store, up, cfg.Store.SnapshotPrefix)
		}
	}
	return store, closeFn, nil
}
