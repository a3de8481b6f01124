// File: app/app.go
package app

import (
	"context"
	"fmt"
	"go-bank-accounts/config"
	"go-bank-accounts/handler"
	"go-bank-accounts/logger"
	"go-bank-accounts/metrics"
	"go-bank-accounts/notify"
	"go-bank-accounts/router"
	"go-bank-accounts/service"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

// App holds the wired components. It is built by New and used both by Run and by tests.
type App struct {
	Registry   *service.AccountRegistry
	Dispatcher *service.NotificationDispatcher
	Metrics    *metrics.Metrics
	Handler    http.Handler
}

// New wires every layer from cfg. Rendered notifications are written to out.
func New(cfg *config.Config, out io.Writer) (*App, error) {
	m := metrics.New()

	registry := service.NewAccountRegistry(m)
	for i, seed := range cfg.Accounts {
		acc, err := BuildAccount(seed)
		if err != nil {
			return nil, fmt.Errorf("account seed %d: %w", i, err)
		}
		if err := registry.Add(acc); err != nil {
			return nil, err
		}
	}

	opts := []service.DispatcherOption{service.WithMetrics(m)}
	if cfg.Notify.Parallel {
		if cfg.Notify.MaxParallel <= 0 {
			logger.Log.WithField("max_parallel", cfg.Notify.MaxParallel).Warn("Parallel delivery needs a positive max_parallel, delivering sequentially")
		}
		opts = append(opts, service.WithParallel(cfg.Notify.MaxParallel))
	}
	dispatcher := service.NewNotificationDispatcher(opts...)

	channels, err := notify.FromConfig(cfg.Notify.Channels, out)
	if err != nil {
		return nil, err
	}
	for _, ch := range channels {
		if err := dispatcher.AddChannel(ch); err != nil {
			return nil, err
		}
	}

	accountHandler := handler.NewAccountHandler(registry)
	notificationHandler := handler.NewNotificationHandler(dispatcher)

	return &App{
		Registry:   registry,
		Dispatcher: dispatcher,
		Metrics:    m,
		Handler:    router.NewRouter(accountHandler, notificationHandler, m),
	}, nil
}

func Run() {
	config.LoadConfig(".")
	logger.Init(config.AppConfig.Log.Level)
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	a, err := New(&config.AppConfig, os.Stdout)
	if err != nil {
		logger.Log.Fatalf("Error wiring application: %v", err)
	}
	logger.Log.WithFields(logrus.Fields{
		"accounts": a.Registry.Len(),
		"channels": len(a.Dispatcher.Channels()),
	}).Info("Components wired")

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           a.Handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited gracefully")
}
