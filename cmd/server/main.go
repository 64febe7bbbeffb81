package main

import (
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"planetarium/config"
	"planetarium/internal/app"
	"planetarium/internal/cache"
	"planetarium/internal/logger"
	"planetarium/internal/mq"
	"planetarium/internal/router"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLogger, err := logger.New("production")
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	// TranslateError turns postgres unique violations into
	// gorm.ErrDuplicatedKey, which the booking engine relies on.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		zapLogger.Fatal("failed to open database", zap.Error(err))
	}

	var redisCache *cache.RedisCache
	if cfg.CacheURL != "" {
		redisCache, err = cache.NewRedisCache(cfg.CacheURL)
		if err != nil {
			zapLogger.Fatal("failed to create redis cache", zap.Error(err))
		}
	}

	var mqConn *amqp.Connection
	if cfg.MQURL != "" {
		mqConn, err = mq.NewMQConn(cfg.MQURL)
		if err != nil {
			zapLogger.Fatal("failed to connect to rabbitmq", zap.Error(err))
		}
	}

	application := app.New(cfg, db, redisCache, mqConn, zapLogger)
	if err := application.Init(); err != nil {
		zapLogger.Fatal("failed to init app", zap.Error(err))
	}
	defer application.Close()

	r := router.New(application)
	zapLogger.Info("listening", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
