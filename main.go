package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"deskduty-service/internal/cache"
	"deskduty-service/internal/config"
	"deskduty-service/internal/db"
	"deskduty-service/internal/event"
	"deskduty-service/internal/handlers"
	"deskduty-service/internal/repository"
	"deskduty-service/internal/service"
	"deskduty-service/pkg/discovery"
)

func main() {
	cfg := config.ServiceConfig

	db.InitMongo(cfg.MongoDB.URI)
	db.InitRedis(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" && cfg.RabbitMQ.Exchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, game events will not be published")
	}

	// Consul service registration
	registry, err := discovery.NewServiceRegistry(cfg)
	if err != nil {
		log.Printf("Warning: service discovery unavailable: %v", err)
	} else if err := registry.Register(); err != nil {
		log.Printf("Warning: failed to register with Consul: %v", err)
	} else {
		defer registry.Deregister()
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://deskduty.phrimp.io.vn"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Desk Duty Service is healthy")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	database := db.Client.Database(cfg.MongoDB.Database)

	// Scenarios
	scenarioRepo := repository.NewScenarioRepository(database)
	scenarioService := service.NewScenarioService(scenarioRepo)
	scenarioHandler := handlers.NewScenarioHandler(scenarioService)

	// Players
	playerRepo := repository.NewPlayerRepository(database)
	progressRepo := repository.NewProgressRepository(database)
	playerService := service.NewPlayerService(playerRepo, progressRepo)
	playerHandler := handlers.NewPlayerHandler(playerService)

	// Leaderboard with Redis-backed top-10 cache
	leaderboardRepo := repository.NewLeaderboardRepository(database)
	leaderboardCache := cache.NewLeaderboardCache(db.RedisClient)
	leaderboardService := service.NewLeaderboardService(leaderboardRepo, leaderboardCache)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)

	// Game sessions
	sessionRepo := repository.NewSessionRepository(database)
	gameService := service.NewGameService(
		sessionRepo,
		playerRepo,
		progressRepo,
		scenarioRepo,
		leaderboardService,
		cfg.Game.ScenarioBatchSize,
		cfg.Game.NextScenarioDelay,
	)
	gameHandler := handlers.NewGameHandler(gameService)

	// Sweep abandoned sessions so the in-memory map only holds live games
	go func() {
		ticker := time.NewTicker(cfg.Game.SessionIdleTimeout)
		defer ticker.Stop()
		for range ticker.C {
			if evicted := gameService.EvictIdle(cfg.Game.SessionIdleTimeout); evicted > 0 {
				log.Printf("Evicted %d idle sessions", evicted)
			}
		}
	}()

	// Public routes - Scenarios
	publicScenario := r.Group("/public/deskduty/scenario")
	{
		publicScenario.GET("/", func(c *gin.Context) {
			scenarioHandler.ListScenarios(c)
			if publisher != nil {
				publisher.Publish("scenario.list", nil)
			}
		})
		publicScenario.GET("/:id", func(c *gin.Context) {
			scenarioHandler.GetScenario(c)
			if publisher != nil {
				publisher.Publish("scenario.get", gin.H{"id": c.Param("id")})
			}
		})
	}

	// Protected routes - Scenario management
	protectedScenario := r.Group("/protected/deskduty/scenario")
	protectedScenario.Use(requireUserID())
	{
		protectedScenario.POST("/", scenarioHandler.CreateScenario)
		protectedScenario.PUT("/:id", scenarioHandler.UpdateScenario)
		protectedScenario.DELETE("/:id", scenarioHandler.DeleteScenario)
		protectedScenario.POST("/bulk", scenarioHandler.BulkScenarioOps)
	}

	publicPlayer := r.Group("/public/deskduty/player")
	{
		publicPlayer.GET("/:id", playerHandler.GetPlayer)
		publicPlayer.GET("/:id/progress", func(c *gin.Context) {
			playerHandler.GetPlayerProgress(c)
			if publisher != nil {
				publisher.Publish("player.progress", gin.H{"id": c.Param("id")})
			}
		})
	}

	publicLeaderboard := r.Group("/public/deskduty/leaderboard")
	{
		publicLeaderboard.GET("/", func(c *gin.Context) {
			leaderboardHandler.GetTopScores(c)
			if publisher != nil {
				publisher.Publish("leaderboard.viewed", nil)
			}
		})
	}

	setupGameRoutes(r, gameHandler, publisher)

	r.Run(":" + cfg.Server.Port)
}

func setupGameRoutes(r *gin.Engine, gameHandler *handlers.GameHandler, publisher *event.EventPublisher) {
	// Guest sessions: persistence disabled, no identity required
	publicGame := r.Group("/public/deskduty/game")
	{
		publicGame.POST("/", func(c *gin.Context) {
			gameHandler.StartGuestSession(c)
			if publisher != nil {
				publisher.Publish("game.session.guest_started", gin.H{
					"timestamp": time.Now(),
				})
			}
		})
	}

	// Protected game routes for logged-in players
	protectedGame := r.Group("/protected/deskduty/game")
	protectedGame.Use(requireUserID())

	// Request logging for game routes
	protectedGame.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("[GAME] %v | %3d | %13v | %15s | %-7s %#v\n%s",
			param.TimeStamp.Format("2006/01/02 - 15:04:05"),
			param.StatusCode,
			param.Latency,
			param.ClientIP,
			param.Method,
			param.Path,
			param.ErrorMessage,
		)
	}))

	{
		// === SESSION LIFECYCLE ===

		protectedGame.POST("/", func(c *gin.Context) {
			gameHandler.StartSession(c)
			if publisher != nil {
				publisher.Publish("game.session.started", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		protectedGame.POST("/:id/resign", func(c *gin.Context) {
			gameHandler.Resign(c)
			if publisher != nil {
				publisher.Publish("game.session.resigned", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})

		// === GAMEPLAY ===

		protectedGame.GET("/:id/next", func(c *gin.Context) {
			gameHandler.NextScenario(c)
			if publisher != nil {
				publisher.Publish("game.scenario.requested", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})

		protectedGame.POST("/:id/answer", func(c *gin.Context) {
			gameHandler.SubmitAnswer(c)
			if publisher != nil {
				publisher.Publish("game.answer.submitted", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})

		protectedGame.POST("/:id/chai", func(c *gin.Context) {
			gameHandler.DrinkChai(c)
			if publisher != nil {
				publisher.Publish("game.chai.consumed", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})

		// === STATUS ===

		protectedGame.GET("/:id/status", gameHandler.GetSessionStatus)
	}

	// Guest gameplay mirrors the protected routes without identity
	{
		publicGame.GET("/:id/next", func(c *gin.Context) {
			gameHandler.NextScenario(c)
			if publisher != nil {
				publisher.Publish("game.scenario.requested", gin.H{
					"session_id": c.Param("id"),
					"timestamp":  time.Now(),
				})
			}
		})

		publicGame.POST("/:id/answer", func(c *gin.Context) {
			gameHandler.SubmitAnswer(c)
			if publisher != nil {
				publisher.Publish("game.answer.submitted", gin.H{
					"session_id": c.Param("id"),
					"timestamp":  time.Now(),
				})
			}
		})

		publicGame.POST("/:id/chai", func(c *gin.Context) {
			gameHandler.DrinkChai(c)
			if publisher != nil {
				publisher.Publish("game.chai.consumed", gin.H{
					"session_id": c.Param("id"),
					"timestamp":  time.Now(),
				})
			}
		})

		publicGame.POST("/:id/resign", func(c *gin.Context) {
			gameHandler.Resign(c)
			if publisher != nil {
				publisher.Publish("game.session.resigned", gin.H{
					"session_id": c.Param("id"),
					"timestamp":  time.Now(),
				})
			}
		})

		publicGame.GET("/:id/status", gameHandler.GetSessionStatus)
	}
}

func requireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
