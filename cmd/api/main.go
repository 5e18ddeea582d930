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

	_ "checkout_gateway/docs"
	"checkout_gateway/internal/adapter/http/routes"
	"checkout_gateway/internal/adapter/persistence/repository"
	"checkout_gateway/internal/config"
	"checkout_gateway/internal/infrastructure/database"
	"checkout_gateway/internal/infrastructure/payments"
	"checkout_gateway/internal/usecase"
	"checkout_gateway/internal/usecase/interfaces"
	"checkout_gateway/pkg/logger"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// @title           Checkout Gateway API
// @version         1.0
// @description     Payment checkout gateway in front of Transbank Webpay Plus.

// @contact.name   API Support

// @host localhost:3000

// @BasePath  /

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.L().Fatal("failed to load configuration", zap.Error(err))
	}

	if err := logger.Init(logger.Config{
		Environment: cfg.Environment,
		Level:       cfg.Log.Level,
		Filename:    cfg.Log.Filename,
		MaxSize:     cfg.Log.MaxSize,
		MaxBackups:  cfg.Log.MaxBackups,
		MaxAge:      cfg.Log.MaxAge,
		Compress:    cfg.Log.Compress,
	}); err != nil {
		logger.L().Fatal("failed to initialize logger", zap.Error(err))
	}
	defer logger.Sync()

	log := logger.L()
	log.Info("starting checkout gateway",
		zap.String("environment", cfg.Environment),
		zap.String("processor", cfg.Processor.Provider),
		zap.String("return_mode", cfg.Return.Mode),
		zap.Strings("cors_origins", cfg.CORSOrigins),
	)

	processor, err := payments.NewProcessor(cfg)
	if err != nil {
		// Keep serving /health; checkout calls fail with an upstream error.
		log.Error("payment processor not configured", zap.Error(err))
	}

	var records interfaces.ITransactionRecordRepository
	if cfg.Audit.Enabled {
		ddb, err := database.ConnectDynamoDB(context.Background(), cfg.Audit)
		if err != nil {
			log.Error("transaction audit disabled", zap.Error(err))
		} else {
			records = repository.NewTransactionDynamoRepository(ddb, cfg.Audit.TableName)
		}
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(processor, records, usecase.ReturnPolicy{
		ConfirmOnReturn: cfg.Return.ConfirmOnReturn,
		Mobile:          usecase.Destinations(cfg.Return.Mobile),
		Web:             usecase.Destinations(cfg.Return.Web),
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           routes.NewRouter(cfg, checkoutUseCase),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to startup the application", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
