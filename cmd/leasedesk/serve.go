package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leasedesk/internal/db"
	"leasedesk/internal/documenso"
	"leasedesk/internal/lease"
	"leasedesk/internal/server"
	"leasedesk/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig()
	if err != nil {
		return err
	}

	pool, err := db.Connect(ctx, config)
	if err != nil {
		return err
	}
	defer pool.Close()

	userRepo := store.NewUserRepository(pool)
	notificationRepo := store.NewNotificationRepository(pool)
	propertyRepo := store.NewPropertyRepository(pool)
	leaseRepo := store.NewLeaseRepository(pool)

	// The signing provider is selected once at startup; an absent API key
	// means offline/mock operation, not misconfiguration.
	var provider documenso.Provider
	if config.DocumensoAPIKey != "" {
		provider = documenso.NewClient(config.DocumensoBaseURL, config.DocumensoAPIKey)
	} else {
		logger.Info("documenso api key not configured, using mock signing provider")
		provider = documenso.NewMock()
	}

	pipeline := lease.NewPipeline(logger, provider, propertyRepo, leaseRepo)

	srv := server.New(config, logger, userRepo, notificationRepo, provider, pipeline)

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
