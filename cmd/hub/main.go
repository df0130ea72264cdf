package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Chaitanyahoon/focusarenaa-sub001/common/mq"
	"github.com/Chaitanyahoon/focusarenaa-sub001/common/utils"
	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/config"
	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/ws"
	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
)

const hubQueue = "focus_arena.hub"

func main() {
	config := config.LoadEnvironment()

	if config.ElasticUrl != "" {
		utils.InitElasticLogger(config.ElasticUrl, config.ServiceName)
	} else {
		utils.InitLogger()
	}
	defer utils.Logger.Sync()

	utils.SetJWTSecret(config.JWTSecret)

	server := ws.NewServer()
	go server.Run()

	mqProvider, err := mq.NewEconomyMqProvider(config.MqURL)
	if err != nil {
		utils.Logger.Fatal("Failed to connect to mq", utils.Logger.String("error", err.Error()))
	}
	defer mqProvider.Disconnect()

	err = mqProvider.Subscribe(hubQueue, func(data []byte) error {
		var event models.EconomyEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return err
		}

		server.Handler().PushEvent(&event)
		return nil
	})
	if err != nil {
		utils.Logger.Fatal("Failed to subscribe to economy events", utils.Logger.String("error", err.Error()))
	}

	http.HandleFunc("/ws", server.HandleWebSocket)

	go func() {
		addr := fmt.Sprintf(":%s", config.ServerPort)
		utils.Logger.Info("Hub started successfully", utils.Logger.String("port", config.ServerPort))
		if err := http.ListenAndServe(addr, nil); err != nil {
			utils.Logger.Fatal("Failed to start hub", utils.Logger.String("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Logger.Info("Hub is shutting down...")
}
