package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bizops/internal/app"
	"bizops/pkg/database"
)

func runServe(cmd *cobra.Command, args []string) error {
	defer func() { _ = log.Sync() }()

	var (
		db  *gorm.DB
		err error
	)
	if autoMigrate {
		db, err = openDatabase()
	} else {
		db, err = database.InitDB(cfg.DatabaseURL, cfg.DBLogLevel)
	}
	if err != nil {
		return err
	}
	defer func() { _ = closeDatabase(db) }()

	gin.SetMode(gin.ReleaseMode)
	a := app.New(cfg, db, nil, log)

	if err := a.Tasks.Start(); err != nil {
		return err
	}
	defer a.Tasks.Stop()

	return startServer(a.Router)
}

// startServer serves until SIGINT/SIGTERM, then drains for up to 30s.
func startServer(r *gin.Engine) error {
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}
