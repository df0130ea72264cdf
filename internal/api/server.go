package api

import (
	"context"
	"net/http"
	"time"

	"github.com/Chaitanyahoon/focusarenaa-sub001/common/cache"
	"github.com/Chaitanyahoon/focusarenaa-sub001/common/data"
	"github.com/Chaitanyahoon/focusarenaa-sub001/common/mq"
	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/api/handlers"
	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/api/middleware"
	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/services"
	"github.com/gin-gonic/gin"
)

type Server struct {
	router       *gin.Engine
	httpServer   *http.Server
	questService *services.QuestService
	db           *data.PgDbContext
}

func NewServer(db *data.PgDbContext, redisCache *cache.RedisCache, mqProvider mq.IMqProvider) *Server {
	var publisher services.EventPublisher = services.NoopEventPublisher{}
	if mqProvider != nil {
		publisher = services.NewMqEventPublisher(mqProvider)
	}

	authService := services.NewAuthService(db)
	playerService := services.NewPlayerService(db)
	badgeService := services.NewBadgeService(db)
	raidService := services.NewRaidService(db, playerService)
	taskService := services.NewTaskService(db, playerService, badgeService, raidService, publisher)
	questService := services.NewQuestService(db, redisCache, playerService, publisher)
	guildService := services.NewGuildService(db)
	shopService := services.NewShopService(db)
	leaderboardService := services.NewLeaderboardService(db, redisCache)
	notificationService := services.NewNotificationService(db)

	server := &Server{
		router:       gin.Default(),
		questService: questService,
		db:           db,
	}

	server.router.Use(middleware.RequestLogger())
	server.router.Use(middleware.CORSMiddleware())
	server.router.Use(middleware.ErrorMiddleware())
	server.router.Use(middleware.RateLimit(100, 200)) // 100 requests per second with burst of 200

	authHandler := handlers.NewAuthHandler(authService)
	playerHandler := handlers.NewPlayerHandler(playerService, badgeService)
	taskHandler := handlers.NewTaskHandler(taskService)
	questHandler := handlers.NewQuestHandler(questService)
	badgeHandler := handlers.NewBadgeHandler(badgeService)
	guildHandler := handlers.NewGuildHandler(guildService)
	raidHandler := handlers.NewRaidHandler(raidService, playerService)
	shopHandler := handlers.NewShopHandler(shopService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	healthHandler := handlers.NewHealthHandler()

	authMiddleware := middleware.AuthMiddleware()
	adminMiddleware := middleware.AdminAuthMiddleware()

	healthHandler.RegisterRoutes(server.router.Group(""))

	v1 := server.router.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		playerHandler.RegisterRoutes(v1, authMiddleware)
		taskHandler.RegisterRoutes(v1, authMiddleware)
		questHandler.RegisterRoutes(v1, authMiddleware, adminMiddleware)
		badgeHandler.RegisterRoutes(v1, authMiddleware, adminMiddleware)
		guildHandler.RegisterRoutes(v1, authMiddleware)
		raidHandler.RegisterRoutes(v1, authMiddleware)
		shopHandler.RegisterRoutes(v1, authMiddleware)
		leaderboardHandler.RegisterRoutes(v1, authMiddleware)
		notificationHandler.RegisterRoutes(v1, authMiddleware)
	}

	return server
}

// QuestService exposes the quest service for the scheduler wiring in main.
func (s *Server) QuestService() *services.QuestService {
	return s.questService
}

func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s.httpServer.ListenAndServe()
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
