package consumers

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Chaitanyahoon/focusarenaa-sub001/common/mq"
	"github.com/Chaitanyahoon/focusarenaa-sub001/common/utils"
	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/services"
	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
)

const NotificationsQueue = "focus_arena.notifications"

// NotificationConsumer persists every economy event as an inbox row.
type NotificationConsumer struct {
	key                 string
	provider            mq.IMqProvider
	notificationService *services.NotificationService
}

func NewNotificationConsumer(key string, provider mq.IMqProvider, notificationService *services.NotificationService) *NotificationConsumer {
	return &NotificationConsumer{
		key:                 key,
		provider:            provider,
		notificationService: notificationService,
	}
}

func (h *NotificationConsumer) Start(key string, wg *sync.WaitGroup) error {
	utils.Logger.Info("Starting consumer", utils.Logger.String("key", key))

	wg.Add(1)
	defer wg.Done()

	return h.provider.Subscribe(NotificationsQueue, h.Consume)
}

func (h *NotificationConsumer) Consume(rawMsg []byte) error {
	var event models.EconomyEvent
	if err := json.Unmarshal(rawMsg, &event); err != nil {
		return err
	}

	_, err := h.notificationService.Record(context.Background(), &event)
	if err != nil {
		utils.Logger.Error("Failed to record notification",
			utils.Logger.String("key", h.key),
			utils.Logger.String("type", string(event.Type)),
			utils.Logger.String("error", err.Error()),
		)
	}
	return err
}
