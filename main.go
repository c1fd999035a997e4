package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Timoffire/bachelor-thesis/config"
	"github.com/Timoffire/bachelor-thesis/gateway"
	"github.com/Timoffire/bachelor-thesis/handlers"
	"github.com/Timoffire/bachelor-thesis/store"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	st, err := buildStore(cfg)
	if err != nil {
		log.Fatalw("failed to initialize run store", "driver", cfg.StoreDriver, "error", err)
	}

	backend := gateway.New(cfg.BackendURL, cfg.BackendTimeout)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handlers.New(st, backend, log).Register(r)

	log.Infow("starting analysis server",
		"addr", cfg.Addr,
		"backend", cfg.BackendURL,
		"store", cfg.StoreDriver,
	)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalw("server failed", "error", err)
	}
}

func buildStore(cfg config.Config) (store.RunStore, error) {
	switch cfg.StoreDriver {
	case config.StoreSQLite:
		return store.NewGormStore(cfg.SQLitePath)
	case config.StoreFile:
		return store.NewFileStore(cfg.DataDir), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
