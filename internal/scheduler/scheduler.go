package scheduler

import (
	"context"
	"time"

	"github.com/Chaitanyahoon/focusarenaa-sub001/common/utils"
	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/services"
	"github.com/robfig/cron/v3"
)

// Scheduler runs the recurring jobs. Everything ticks in UTC because the
// whole game day is a UTC calendar date.
type Scheduler struct {
	cron         *cron.Cron
	questService *services.QuestService
}

func New(questService *services.QuestService) *Scheduler {
	return &Scheduler{
		cron:         cron.New(cron.WithLocation(time.UTC)),
		questService: questService,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("0 0 * * *", func() {
		now := time.Now().UTC()
		if err := s.questService.ResetDaily(context.Background(), now); err != nil {
			utils.Logger.Error("Daily quest reset failed", utils.Logger.String("error", err.Error()))
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	utils.Logger.Info("Scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
