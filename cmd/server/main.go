package main // entry point of the booking front end

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/iliyamo/showtime-booking/internal/apiclient"
	"github.com/iliyamo/showtime-booking/internal/config"
	"github.com/iliyamo/showtime-booking/internal/database"
	"github.com/iliyamo/showtime-booking/internal/handler"
	"github.com/iliyamo/showtime-booking/internal/middleware"
	"github.com/iliyamo/showtime-booking/internal/queue"
	"github.com/iliyamo/showtime-booking/internal/repository"
	"github.com/iliyamo/showtime-booking/internal/router"
	"github.com/iliyamo/showtime-booking/internal/service"
)

func main() {
	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(logLevel(cfg.LogLevel))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			c.Logger().Infof("%s %s %d %s rid=%s", v.Method, v.URI, v.Status, v.Latency, v.RequestID)
			return nil
		},
	}))
	e.Use(metrics.Middleware())

	rdb, err := config.NewRedisClient()
	if err != nil {
		e.Logger.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	receipts := repository.NewReceiptRepo(nil)
	if cfg.ReceiptsEnabled() {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			e.Logger.Fatalf("receipts database: %v", err)
		}
		defer db.Close()
		if err := database.EnsureSchema(ctx, db); err != nil {
			e.Logger.Fatalf("receipts schema: %v", err)
		}
		receipts = repository.NewReceiptRepo(db)

		consumer := queue.NewConsumer(cfg.AMQPURL, receipts, log.New("reservation-consumer"))
		consumer.Logger.SetLevel(logLevel(cfg.LogLevel))
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				e.Logger.Errorf("reservation consumer: %v", err)
			}
		}()
	} else {
		e.Logger.Warn("DB_HOST not set; receipts disabled")
	}

	api := apiclient.New(cfg.APIBaseURL, cfg.APITimeout)
	sessions := repository.NewSessionRepo(rdb)
	drafts := repository.NewDraftRepo(rdb, cfg.DraftTTL)
	cacheCfg := config.LoadCacheConfig()

	var events service.EventPublisher
	if cfg.ReceiptsEnabled() {
		events = service.NewPublisher(cfg.AMQPURL)
	}
	seats := service.NewSeatSelection(api, drafts, events, log.New("seat-selection"))
	seats.Logger.SetLevel(logLevel(cfg.LogLevel))
	seats.Observer = metrics

	purge := func(ctx context.Context) error { return middleware.PurgeCache(ctx, rdb, cacheCfg.Prefix) }
	guard := []echo.MiddlewareFunc{
		middleware.SessionAuth(sessions),
		middleware.RateLimit(config.LoadRateLimitConfig(), rdb),
	}

	router.RegisterRoutes(e, metrics)
	v1 := router.API(e)
	router.RegisterAuth(v1, handler.NewAuthHandler(cfg, api, sessions, drafts), guard...)
	router.RegisterCatalog(v1, handler.NewCatalogHandler(api, cfg.DisplayTZ, purge), middleware.ResponseCache(cacheCfg, rdb), guard...)
	router.RegisterBooking(v1,
		handler.NewSeatHandler(seats),
		handler.NewReservationHandler(api, receipts),
		handler.NewDashboardHandler(api, cfg.SeatPrice),
		guard...,
	)

	go func() {
		addr := ":" + cfg.Port
		e.Logger.Infof("listening on %s (env=%s, api=%s)", addr, cfg.Env, cfg.APIBaseURL)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Errorf("shutdown: %v", err)
	}
}

func logLevel(s string) log.Lvl {
	switch s {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	}
	return log.INFO
}
