package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/lcorreia/bankledger/internal/adapter/rest"
	"github.com/lcorreia/bankledger/internal/adapter/scheduler"
	"github.com/lcorreia/bankledger/internal/config"
	"github.com/lcorreia/bankledger/internal/usecase/ledger"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load .env file for local development.
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("cannot load config", zap.Error(err))
	}

	checkingTerms, err := cfg.CheckingTerms()
	if err != nil {
		logger.Fatal("invalid checking terms", zap.Error(err))
	}
	savingsTerms, err := cfg.SavingsTerms()
	if err != nil {
		logger.Fatal("invalid savings terms", zap.Error(err))
	}

	// The ledger is in-memory and lives for the process lifetime.
	ledgerService := ledger.NewLedgerService(checkingTerms, savingsTerms)

	// Apply fees and interest on the configured schedule.
	monthly := scheduler.NewScheduler(ledgerService, cfg.MonthlyUpdateSchedule, logger)
	if err := monthly.Start(); err != nil {
		logger.Fatal("cannot start monthly update scheduler", zap.Error(err))
	}

	router := rest.NewRouter(ledgerService, logger)
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	waitForShutdown(server, monthly, logger)
}

// waitForShutdown waits for SIGTERM or SIGINT, then stops the scheduler
// and drains the HTTP server.
func waitForShutdown(server *http.Server, monthly *scheduler.Scheduler, logger *zap.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Info("shutting down", zap.String("signal", sig.String()))

	<-monthly.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
