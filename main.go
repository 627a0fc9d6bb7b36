package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-ledger/config"
	"hotel-ledger/controllers"
	"hotel-ledger/logger"
	"hotel-ledger/routes"
	"hotel-ledger/services"
)

func main() {
	cfg, envLoaded, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Sync()

	if !envLoaded {
		lg.Info(".env not found; continuing with environment variables")
	}
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDatabase(cfg, lg)
	if err != nil {
		lg.Fatal("database connect failed", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	defer func() {
		if err := config.CloseDatabase(db); err != nil {
			lg.Warn("database close failed", zap.Error(err))
		}
	}()
	lg.Info("database ready", zap.String("driver", cfg.DBDriver))

	ledger := services.NewHotelLedger(db, lg)

	// a crash between committed statements of an older build could leave drift behind
	if mismatches, err := ledger.AuditOccupancy(context.Background()); err != nil {
		lg.Warn("occupancy audit failed", zap.Error(err))
	} else {
		for _, m := range mismatches {
			lg.Warn("room status disagrees with stays",
				zap.Uint("room_id", m.RoomID),
				zap.String("status", m.Status),
				zap.Int64("stay_count", m.StayCount),
			)
		}
	}

	ledgerController := controllers.NewLedgerController(ledger, lg)
	router := routes.SetupRouter(ledgerController, cfg.CorsOrigins, lg)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		lg.Info("front desk api listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("ListenAndServe", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	lg.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		lg.Error("server forced to shutdown", zap.Error(err))
		return
	}
	lg.Info("server stopped gracefully")
}
