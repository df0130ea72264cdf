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

const LeaderboardQueue = "focus_arena.leaderboard"

// LeaderboardConsumer folds xp_changed events into the Redis sorted set.
type LeaderboardConsumer struct {
	key                string
	provider           mq.IMqProvider
	leaderboardService *services.LeaderboardService
}

func NewLeaderboardConsumer(key string, provider mq.IMqProvider, leaderboardService *services.LeaderboardService) *LeaderboardConsumer {
	return &LeaderboardConsumer{
		key:                key,
		provider:           provider,
		leaderboardService: leaderboardService,
	}
}

func (h *LeaderboardConsumer) Start(key string, wg *sync.WaitGroup) error {
	utils.Logger.Info("Starting consumer", utils.Logger.String("key", key))

	wg.Add(1)
	defer wg.Done()

	return h.provider.Subscribe(LeaderboardQueue, h.Consume)
}

func (h *LeaderboardConsumer) Consume(rawMsg []byte) error {
	var event models.EconomyEvent
	if err := json.Unmarshal(rawMsg, &event); err != nil {
		return err
	}

	if event.Type != models.EventXPChanged {
		return nil
	}

	err := h.leaderboardService.UpdateScore(context.Background(), event.PlayerID, event.Username, event.TotalXP)
	if err != nil {
		utils.Logger.Error("Failed to update leaderboard",
			utils.Logger.String("key", h.key),
			utils.Logger.String("player_id", event.PlayerID),
			utils.Logger.String("error", err.Error()),
		)
	}
	return err
}
