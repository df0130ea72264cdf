package services

import (
	"time"

	"github.com/Chaitanyahoon/focusarenaa-sub001/common/mq"
	"github.com/Chaitanyahoon/focusarenaa-sub001/common/utils"
	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
)

// EconomyRoutingKey is the routing key economy events are published under.
const EconomyRoutingKey = "economy"

// EventPublisher is the notification boundary. Delivery is best-effort:
// services log publish failures and never roll back game state over them.
type EventPublisher interface {
	PublishEconomyEvent(event *models.EconomyEvent) error
}

type MqEventPublisher struct {
	provider mq.IMqProvider
}

func NewMqEventPublisher(provider mq.IMqProvider) *MqEventPublisher {
	return &MqEventPublisher{provider: provider}
}

func (p *MqEventPublisher) PublishEconomyEvent(event *models.EconomyEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	return p.provider.Publish(EconomyRoutingKey, event)
}

// NoopEventPublisher drops events; used when no MQ is configured.
type NoopEventPublisher struct{}

func (NoopEventPublisher) PublishEconomyEvent(event *models.EconomyEvent) error {
	return nil
}

func publishOrLog(publisher EventPublisher, event *models.EconomyEvent) {
	if publisher == nil {
		return
	}

	if err := publisher.PublishEconomyEvent(event); err != nil {
		utils.Logger.Warn("Failed to publish economy event",
			utils.Logger.String("type", string(event.Type)),
			utils.Logger.String("player_id", event.PlayerID),
			utils.Logger.String("error", err.Error()),
		)
	}
}
