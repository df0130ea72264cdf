package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Chaitanyahoon/focusarenaa-sub001/common/cache"
	"github.com/Chaitanyahoon/focusarenaa-sub001/common/data"
	"github.com/Chaitanyahoon/focusarenaa-sub001/common/mq"
	"github.com/Chaitanyahoon/focusarenaa-sub001/common/utils"
	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/config"
	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/consumers"
	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/services"
)

func main() {
	config := config.LoadEnvironment()

	if config.ElasticUrl != "" {
		utils.InitElasticLogger(config.ElasticUrl, config.ServiceName)
	} else {
		utils.InitLogger()
	}
	defer utils.Logger.Sync()

	err := data.LoadPostgres(config.DatabaseURL, config.DatabaseName)
	if err != nil {
		log.Fatalf("Failed to load Postgres: %v\n", err)
	}

	db, err := data.NewPgDbContext()
	if err != nil {
		utils.Logger.Fatal("Failed to connect to database", utils.Logger.String("error", err.Error()))
	}
	defer db.Close()

	redis, err := cache.NewRedisCache(config.CacheURL, 0)
	if err != nil {
		utils.Logger.Fatal("Failed to connect to redis", utils.Logger.String("error", err.Error()))
	}
	defer redis.Close()

	notificationProvider, err := mq.NewEconomyMqProvider(config.MqURL)
	if err != nil {
		utils.Logger.Fatal("Failed to connect to mq", utils.Logger.String("error", err.Error()))
	}
	defer notificationProvider.Disconnect()

	// Each consumer holds its own channel so subscriptions do not clobber
	// each other's queue bindings.
	leaderboardProvider, err := mq.NewEconomyMqProvider(config.MqURL)
	if err != nil {
		utils.Logger.Fatal("Failed to connect to mq", utils.Logger.String("error", err.Error()))
	}
	defer leaderboardProvider.Disconnect()

	notificationService := services.NewNotificationService(db)
	leaderboardService := services.NewLeaderboardService(db, redis)

	// Rebuild the sorted set so ranks survive a Redis flush.
	if err := leaderboardService.Rebuild(context.Background()); err != nil {
		utils.Logger.Warn("Failed to rebuild leaderboard", utils.Logger.String("error", err.Error()))
	}

	manager := consumers.NewConsumerManager(map[string]consumers.IConsumer{
		"notifications": consumers.NewNotificationConsumer("notifications", notificationProvider, notificationService),
		"leaderboard":   consumers.NewLeaderboardConsumer("leaderboard", leaderboardProvider, leaderboardService),
	})
	manager.Start()

	utils.Logger.Info("Consumers started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Logger.Info("Consumers are shutting down...")
	manager.Shutdown()
}
