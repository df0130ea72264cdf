package game

import "time"

// QuestProgress is one day's state for a (quest, player) pair. The zero
// value is the implicit NotStarted state a new day begins in.
type QuestProgress struct {
	CurrentCount int
	IsCompleted  bool
	CompletedAt  *time.Time
}

// ApplyProgress sets the day's count and completes the quest when the
// target is reached. Progress is monotonic: a lower count neither rolls
// the counter back nor un-completes the quest, and the completion stamp is
// written once.
func ApplyProgress(p QuestProgress, count, targetCount int, now time.Time) QuestProgress {
	if count > p.CurrentCount {
		p.CurrentCount = count
	}

	if !p.IsCompleted && p.CurrentCount >= targetCount {
		p.IsCompleted = true
		at := now
		p.CompletedAt = &at
	}
	return p
}

// SummarizeDay aggregates today's logs. questCount is the number of active
// quests (logs may be fewer when rows have not been created yet);
// missedYesterday flags that at least one of yesterday's quests was left
// incomplete, which the caller may translate into a MissedTaskPenalty.
func SummarizeDay(logs []QuestProgress, questCount int, missedYesterday bool) QuestDayStatus {
	completed := 0
	for _, l := range logs {
		if l.IsCompleted {
			completed++
		}
	}

	return QuestDayStatus{
		TotalQuests:     questCount,
		CompletedQuests: completed,
		IsAllCompleted:  questCount > 0 && completed >= questCount,
		HasPenalty:      missedYesterday,
	}
}

// QuestDayStatus is the aggregate view of one player's day.
type QuestDayStatus struct {
	TotalQuests     int
	CompletedQuests int
	IsAllCompleted  bool
	HasPenalty      bool
}
