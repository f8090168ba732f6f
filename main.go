package main

import (
	"log"

	"github.com/a3803896/rent-split/config"
	"github.com/a3803896/rent-split/internal/api"
	"github.com/a3803896/rent-split/internal/database"
	"github.com/a3803896/rent-split/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		logger.Log.Fatal("failed to connect database", zap.Error(err))
	}

	// Migrate the schema
	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("failed to migrate database", zap.Error(err))
	}

	router := api.NewRouter(db)

	addr := ":" + cfg.ServerPort
	logger.Log.Info("server listening", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Log.Fatal("failed to run server", zap.Error(err))
	}
}
