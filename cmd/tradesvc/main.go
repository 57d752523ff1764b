package main

import (
	"context"
	"fmt"

	"github.com/mallforge/tradesvc/internal/adapter/auth"
	"github.com/mallforge/tradesvc/internal/adapter/cache"
	"github.com/mallforge/tradesvc/internal/adapter/config"
	"github.com/mallforge/tradesvc/internal/adapter/handler/http"
	"github.com/mallforge/tradesvc/internal/adapter/logger"
	"github.com/mallforge/tradesvc/internal/adapter/metrics"
	"github.com/mallforge/tradesvc/internal/adapter/mq"
	"github.com/mallforge/tradesvc/internal/adapter/storage"
	"github.com/mallforge/tradesvc/internal/adapter/storage/repository"
	"github.com/mallforge/tradesvc/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("trade repo creating error", zap.Error(err))
		return
	}
	ledger, err := repository.NewLedger(db)
	if err != nil {
		log.Error("incentive ledger creating error", zap.Error(err))
		return
	}
	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	intentCache, err := cache.NewIntentCache(ctx, conf.Redis)
	if err != nil {
		log.Error("intent cache creating error", zap.Error(err))
		return
	}

	m := metrics.New("tradesvc")

	publisher, err := mq.NewPublisher(conf.Kafka, m, log.Named("Publisher"))
	if err != nil {
		log.Error("event publisher creating error", zap.Error(err))
		return
	}
	defer func() {
		err := publisher.Close()
		if err != nil {
			log.Error("event publisher close error", zap.Error(err))
		}
	}()

	svc, err := service.NewTradeService(repo, ledger, intentCache, publisher, log.Named("Service"))
	if err != nil {
		log.Error("trade service creating error", zap.Error(err))
		return
	}

	tradeHandler, err := http.NewTradeHandler(svc, m, log.Named("Trade handler"))
	if err != nil {
		log.Error("trade handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService, m, tradeHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
