package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/iliyamo/cafe-comptoir-api/internal/config"
	"github.com/iliyamo/cafe-comptoir-api/internal/database"
	"github.com/iliyamo/cafe-comptoir-api/internal/handler"
	"github.com/iliyamo/cafe-comptoir-api/internal/middleware"
	"github.com/iliyamo/cafe-comptoir-api/internal/model"
	"github.com/iliyamo/cafe-comptoir-api/internal/queue"
	"github.com/iliyamo/cafe-comptoir-api/internal/router"
	"github.com/iliyamo/cafe-comptoir-api/internal/service"
)

func main() {
	cfg := config.Load()

	logger := log.New("cafe-comptoir")
	logger.SetHeader(`{"time":"${time_rfc3339}","level":"${level}","prefix":"${prefix}","file":"${short_file}","line":"${line}"}`)
	logger.SetLevel(cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, err := database.OpenStores(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("store: %v", err)
	}
	defer func() {
		if err := stores.Close(context.Background()); err != nil {
			logger.Warnf("store: close: %v", err)
		}
	}()

	if err := service.Seed(ctx, stores.MenuItems, stores.Reviews, logger); err != nil {
		logger.Fatalf("seed: %v", err)
	}

	var notifier service.Notifier = queue.Discard{}
	if cfg.NotifyEnabled {
		async := queue.NewAsyncPublisher(queue.NewPublisher(cfg.RabbitURL, logger), 256, 5*time.Second, logger)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := async.Close(ctx); err != nil {
				logger.Warnf("notifications: undelivered events at shutdown: %v", err)
			}
		}()
		notifier = async
		logger.Infof("notifications: publishing to queue %s", queue.NotificationsQueue)
	}

	rdb := config.NewRedisClient(logger)
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	reservations := service.NewReservationService(stores.Reservations, notifier, logger, cfg.Location)
	contacts := service.NewContactService(stores.Contacts, notifier, logger)
	reviews := service.NewReviewService(stores.Reviews, notifier, logger)
	menu := service.NewMenuService(stores.MenuItems, logger)

	e := router.NewServer(cfg, logger)
	router.RegisterRoutes(e, router.Handlers{
		Reservations: handler.NewReservationHandler(reservations),
		Contacts:     handler.NewContactHandler(contacts),
		Reviews:      handler.NewReviewHandler(reviews),
		Menu:         handler.NewMenuHandler(menu),
		Info:         model.DefaultRestaurantInfo(),
	}, router.Middleware{
		Cache:     middleware.NewRedisCache(config.LoadCacheConfig(), rdb, logger),
		RateLimit: middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, logger),
	})

	addr := ":" + cfg.Port
	go func() {
		logger.Infof("listening on %s (env=%s, store=%s)", addr, cfg.Env, cfg.StoreDriver)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server: shutdown: %v", err)
	}
}
