package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Chaitanyahoon/focusarenaa-sub001/common/cache"
	"github.com/Chaitanyahoon/focusarenaa-sub001/common/data"
	"github.com/Chaitanyahoon/focusarenaa-sub001/common/mq"
	"github.com/Chaitanyahoon/focusarenaa-sub001/common/utils"
	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/api"
	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/config"
	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/scheduler"
)

func main() {
	config := config.LoadEnvironment()

	if config.ElasticUrl != "" {
		utils.InitElasticLogger(config.ElasticUrl, config.ServiceName)
	} else {
		utils.InitLogger()
	}
	defer utils.Logger.Sync()

	utils.SetJWTSecret(config.JWTSecret)
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

	var mqProvider mq.IMqProvider
	if config.MqURL != "" {
		mqProvider, err = mq.NewEconomyMqProvider(config.MqURL)
		if err != nil {
			utils.Logger.Fatal("Failed to connect to mq", utils.Logger.String("error", err.Error()))
		}
		defer mqProvider.Disconnect()
	}

	server := api.NewServer(db, redis, mqProvider)

	jobs := scheduler.New(server.QuestService())
	if err := jobs.Start(); err != nil {
		utils.Logger.Fatal("Failed to start scheduler", utils.Logger.String("error", err.Error()))
	}
	defer jobs.Stop()

	go func() {
		addr := fmt.Sprintf(":%s", config.ServerPort)
		if err := server.Start(addr); err != nil {
			utils.Logger.Fatal("Failed to start server", utils.Logger.String("error", err.Error()))
		}
	}()

	utils.Logger.Info("Server started successfully", utils.Logger.String("port", config.ServerPort))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		utils.Logger.Fatal("Server forced to shutdown", utils.Logger.String("error", err.Error()))
	}

	utils.Logger.Info("Server exited gracefully")
}
