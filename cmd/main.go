package main

import (
	"log"

	"github.com/Kitan-Dara06/flashcard-generator-public/internal/client"
	"github.com/Kitan-Dara06/flashcard-generator-public/internal/config"
	"github.com/Kitan-Dara06/flashcard-generator-public/internal/extract"
	"github.com/Kitan-Dara06/flashcard-generator-public/internal/server"
	"github.com/Kitan-Dara06/flashcard-generator-public/internal/service"
	"github.com/Kitan-Dara06/flashcard-generator-public/internal/storage/cache"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	clients := client.InitClients(cfg)
	extractor := extract.NewExtractor(cfg.App.MaxPDFPages)
	services := service.InitServices(clients, extractor, cfg, logger)
	sessions := cache.NewCache()

	srv := server.New(cfg, services, sessions, logger)

	if err := srv.Start(); err != nil {
		logger.Fatal("http server stopped", zap.Error(err))
	}
}
