package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/match-oracle/internal/api"
	"github.com/yourusername/match-oracle/internal/health"
	applogger "github.com/yourusername/match-oracle/internal/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the prediction API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func serve() error {
	started := time.Now()
	audit := applogger.NewAuditLogger(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	healthServer := health.NewServer(health.Config{
		ServiceName: cfg.App.Name,
		Version:     Version,
		Commit:      GitCommit,
		Port:        strconv.Itoa(cfg.Server.HealthPort),
		Logger:      logger,
		Checks:      map[string]health.Checker{"prediction": svc},
	})
	if err := healthServer.Start(ctx); err != nil {
		return err
	}

	apiServer := &http.Server{
		Addr:         cfg.ListenAddress(),
		Handler:      api.NewServer(svc, api.ConfigFrom(cfg), logger).Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{
			"address":     apiServer.Addr,
			"environment": cfg.App.Environment,
			"version":     Version,
		}).Info("Prediction API listening")
		serverErrors <- apiServer.ListenAndServe()
	}()
	healthServer.SetReady(true)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	reason := ""
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("Prediction API stopped")
			return err
		}
		reason = "server closed"
	case sig := <-sigChan:
		reason = sig.String()
		logger.WithField("signal", sig).Info("Shutdown signal received")
	}

	healthServer.SetReady(false)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Error during API shutdown")
	}
	cancel()

	audit.LogShutdown(reason, time.Since(started))
	return nil
}
