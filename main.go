package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/plancare/customer-service/handlers"
	"github.com/plancare/customer-service/internal/config"
	"github.com/plancare/customer-service/internal/customer"
	"github.com/plancare/customer-service/internal/customer/handler"
	"github.com/plancare/customer-service/internal/customer/repository"
	"github.com/plancare/customer-service/internal/customer/service"
	"github.com/plancare/customer-service/internal/database"
	"github.com/plancare/customer-service/pkg/logger"
	"github.com/plancare/customer-service/pkg/metrics"
	"github.com/plancare/customer-service/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

var startTime = time.Now()

func main() {
	// LOG_LEVEL is read again from config once .env has been applied
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Infof("config loaded: store=%s id=%s redis=%v minio=%v rate_limit=%v",
		cfg.Store.Backend, cfg.Store.IDStrategy, cfg.Redis.Host != "", cfg.MinIO.Enabled(), cfg.RateLimit.Enabled)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := database.ConnectRedis(ctx, cfg.Redis)
	if rdb != nil {
		defer rdb.Close()
	}

	store, closeStore, err := database.OpenStore(ctx, cfg, rdb)
	if err != nil {
		logger.Fatalf("failed to initialise %s store: %v", cfg.Store.Backend, err)
	}
	defer closeStore()

	ids, err := customer.NewIDGenerator(cfg.Store.IDStrategy)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	opts := []service.Option{service.WithIDGenerator(ids)}
	if cfg.Store.SerializeWrites {
		opts = append(opts, service.WithSerializedWrites())
	}
	svc := service.New(store, opts...)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r := newRouter(cfg, svc, store, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		logger.Infof("customer service listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}

func newRouter(cfg *config.Config, svc service.Service, store repository.Store, rdb *redis.Client) *gin.Engine {
	r := gin.New()
	r.Use(middleware.CORS(), logger.Gin(), gin.Recovery())

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// ready only when the customers document can be read
	r.GET("/ready", func(c *gin.Context) {
		uptime := time.Since(startTime).String()
		list, err := store.Load(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "store": cfg.Store.Backend, "message": err.Error(), "uptime": uptime})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "store": cfg.Store.Backend, "customers": len(list), "uptime": uptime})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handlers.RegisterSwagger(r)
	handler.RegisterCustomerRoutes(r, svc)
	return r
}
