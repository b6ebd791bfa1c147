package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vitos/crypto_dash/internal/config"
	"github.com/vitos/crypto_dash/internal/infrastructure/coingecko"
	"github.com/vitos/crypto_dash/internal/infrastructure/logger"
	"github.com/vitos/crypto_dash/internal/usecase"
	"github.com/vitos/crypto_dash/internal/web"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	// 1. Load Config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Init Logger
	log, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Encoding)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// 3. Init market data client
	client := coingecko.NewClient(coingecko.Config{
		BaseURL:      cfg.API.BaseURL,
		APIKey:       cfg.API.APIKey,
		APIKeyHeader: cfg.API.APIKeyHeader,
		Timeout:      cfg.API.Timeout,
	}, log.Named("coingecko"))

	// 4. Init Web Server
	viewCfg := usecase.ViewConfig{
		VsCurrency:   cfg.API.VsCurrency,
		DefaultLimit: cfg.View.DefaultLimit,
		Timeout:      cfg.API.Timeout,
		Logger:       log.Named("view"),
	}
	server := web.NewServer(cfg.Server.Port, client, viewCfg, log)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 5. Start Server
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// 6. Wait for Shutdown
	<-stop

	log.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Shutdown failed", zap.Error(err))
	}
}
