package models

import (
	"strconv"
	"time"

	"golang.org/x/exp/rand"
)

type User struct {
	ID         string        `json:"id"`
	Provider   SocialNetwork `json:"provider"`
	Identifier string        `json:"identifier"`
	Password   string        `json:"-"`
	Profile    Profile       `json:"profile"`
	Player     *Player       `json:"player,omitempty"`
}

type Profile struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Player carries the game-economy progress for one user. Level is derived
// from TotalXP and never stored ahead of it; TotalXP only moves through
// engine-computed deltas.
type Player struct {
	ID             string     `json:"id"`
	Username       string     `json:"username,omitempty"`
	ProfilePicURL  string     `json:"profile_pic_url,omitempty"`
	UserID         string     `json:"-"`
	TotalXP        int        `json:"total_xp"`
	Level          int        `json:"level"`
	StreakCount    int        `json:"streak_count"`
	LastActiveDate *time.Time `json:"last_active_date,omitempty"`
	Coins          int64      `json:"coins"`
	GuildID        *string    `json:"guild_id,omitempty"`
}

type UserPlayer struct {
	ID       string        `json:"id"`
	Provider SocialNetwork `json:"provider"`
	Player   Player        `json:"player"`
}

// PlayerProgress is the snapshot handed to the engine and back to clients.
type PlayerProgress struct {
	TotalXP        int        `json:"total_xp"`
	Level          int        `json:"level"`
	XPForNextLevel int        `json:"xp_for_next_level"`
	StreakCount    int        `json:"streak_count"`
	LastActiveDate *time.Time `json:"last_active_date,omitempty"`
	Coins          int64      `json:"coins"`
}

type SocialNetwork int

const (
	Guest SocialNetwork = iota
	Email
)

// NewEmailUser creates a new user with email authentication
func NewEmailUser(email string, password string) *User {
	return &User{
		Provider:   Email,
		Identifier: email,
		Password:   password,
		Profile: Profile{
			Email: email,
		},
	}
}

func NewGuestUser(identifier string) *User {
	return &User{
		Provider:   Guest,
		Identifier: identifier,
	}
}

func NewPlayer(userID string, username string, profilePicURL string) *Player {
	if username == "" {
		username = GenerateUserName()
	}

	if profilePicURL == "" {
		profilePicURL = "avatar_" + strconv.Itoa(rand.Intn(10))
	}

	return &Player{
		UserID:        userID,
		Username:      username,
		ProfilePicURL: profilePicURL,
		TotalXP:       0,
		Level:         1,
		StreakCount:   0,
		Coins:         100,
	}
}

func GenerateUserName() string {
	usernameSet := []string{"Focus", "Arena", "Quest", "Task", "Streak", "Ember", "Nova", "Drift", "Pulse", "Forge", "Tide", "Stone", "Cloud", "Rain", "Snow", "Fire", "Water", "Earth", "Wind", "Star", "Moon", "Sun"}
	username := usernameSet[rand.Intn(len(usernameSet))] + usernameSet[rand.Intn(len(usernameSet))] + strconv.Itoa(rand.Intn(100))
	return username
}
