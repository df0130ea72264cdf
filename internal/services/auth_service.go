package services

import (
	"context"
	"fmt"

	"github.com/Chaitanyahoon/focusarenaa-sub001/common/data"
	"github.com/Chaitanyahoon/focusarenaa-sub001/common/utils"
	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	db *data.PgDbContext
}

func NewAuthService(db *data.PgDbContext) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Login(ctx context.Context, request *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.getUserByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	} else if user == nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password))
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	player, err := s.getPlayerByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWTTokenWithClaims(utils.Claims{UserID: user.ID, PlayerID: player.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{
		User: models.UserPlayer{
			ID:       user.ID,
			Provider: user.Provider,
			Player:   *player,
		},
		Token: token,
	}, nil
}

func (s *AuthService) Register(ctx context.Context, request *models.RegisterRequest) (*models.LoginResponse, error) {
	existing, err := s.getUserByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, fmt.Errorf("user already exists")
	}

	if err := s.createUser(ctx, request); err != nil {
		return nil, err
	}

	return s.Login(ctx, &models.LoginRequest{Email: request.Email, Password: request.Password})
}

// GuestLogin creates the user on first sight of the device identifier and
// signs in on every later call.
func (s *AuthService) GuestLogin(ctx context.Context, request *models.GuestLoginRequest) (*models.LoginResponse, error) {
	user, err := s.getUserByIdentifier(ctx, models.Guest, request.Identifier)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = models.NewGuestUser(request.Identifier)
		user.ID = uuid.New().String()

		err = s.db.WithTransaction(ctx, func(tx data.QueryRunner) error {
			query := `
				INSERT INTO users (id, provider, identifier)
				VALUES ($1, $2, $3)
			`
			if _, err := tx.Exec(ctx, query, user.ID, user.Provider, user.Identifier); err != nil {
				return err
			}

			return s.insertPlayer(ctx, tx, models.NewPlayer(user.ID, "", ""))
		})
		if err != nil {
			return nil, err
		}
	}

	player, err := s.getPlayerByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWTTokenWithClaims(utils.Claims{UserID: user.ID, PlayerID: player.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{
		User: models.UserPlayer{
			ID:       user.ID,
			Provider: user.Provider,
			Player:   *player,
		},
		Token: token,
	}, nil
}

func (s *AuthService) createUser(ctx context.Context, request *models.RegisterRequest) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.NewEmailUser(request.Email, string(hashedPassword))
	user.ID = uuid.New().String()

	return s.db.WithTransaction(ctx, func(tx data.QueryRunner) error {
		query := `
			INSERT INTO users (id, provider, identifier, password_hash, email)
			VALUES ($1, $2, $3, $4, $5)
		`
		if _, err := tx.Exec(ctx, query, user.ID, user.Provider, user.Identifier, user.Password, user.Profile.Email); err != nil {
			return err
		}

		return s.insertPlayer(ctx, tx, models.NewPlayer(user.ID, request.Username, ""))
	})
}

func (s *AuthService) insertPlayer(ctx context.Context, tx data.QueryRunner, player *models.Player) error {
	player.ID = uuid.New().String()

	query := `
		INSERT INTO players (id, user_id, username, profile_pic_url, total_xp, level, streak_count, coins)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := tx.Exec(ctx, query, player.ID, player.UserID, player.Username, player.ProfilePicURL,
		player.TotalXP, player.Level, player.StreakCount, player.Coins)
	return err
}

func (s *AuthService) getUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUserByIdentifier(ctx, models.Email, email)
}

func (s *AuthService) getUserByIdentifier(ctx context.Context, provider models.SocialNetwork, identifier string) (*models.User, error) {
	var query = `
		SELECT id, provider, identifier, COALESCE(password_hash, ''), COALESCE(email, '')
		FROM users
		WHERE provider = $1 AND identifier = $2
	`

	var user models.User
	err := s.db.QueryRow(ctx, query, provider, identifier).Scan(&user.ID, &user.Provider, &user.Identifier, &user.Password, &user.Profile.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (s *AuthService) getPlayerByUserID(ctx context.Context, userID string) (*models.Player, error) {
	var query = `
		SELECT id, user_id, username, profile_pic_url, total_xp, level, streak_count, last_active_date, coins, guild_id
		FROM players
		WHERE user_id = $1
	`

	var player models.Player
	err := s.db.QueryRow(ctx, query, userID).Scan(&player.ID, &player.UserID, &player.Username, &player.ProfilePicURL,
		&player.TotalXP, &player.Level, &player.StreakCount, &player.LastActiveDate, &player.Coins, &player.GuildID)
	if err != nil {
		return nil, err
	}

	return &player, nil
}
