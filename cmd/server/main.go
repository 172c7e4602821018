package main

import (
	"log"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"

	"github.com/planit-app/planit-api/internal/config"
	"github.com/planit-app/planit-api/internal/database"
	"github.com/planit-app/planit-api/internal/handlers"
	"github.com/planit-app/planit-api/internal/logging"
	"github.com/planit-app/planit-api/internal/metrics"
	"github.com/planit-app/planit-api/internal/repository"
	"github.com/planit-app/planit-api/internal/services"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	gin.SetMode(cfg.GinMode)

	db, err := database.Open(cfg)
	if err != nil {
		sugar.Fatalw("failed to connect to database", "error", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		sugar.Fatalw("failed to run migrations", "error", err)
	}

	settingRepo := repository.NewSettingRepository(sugar, db)
	userRepo := repository.NewUserRepository(sugar, db)
	memberRepo := repository.NewMembershipRepository(sugar, db)
	taskRepo := repository.NewTaskRepository(sugar, db)
	boardRepo := repository.NewBoardRepository(sugar, db)
	teamRepo := repository.NewTeamRepository(sugar, db)

	// The settings row is provisioned out-of-band; its absence means a
	// misconfigured deployment, not a recoverable runtime error.
	setting, err := settingRepo.Load()
	if err != nil {
		sugar.Fatalw("failed to load settings", "error", err)
	}

	taskService := services.NewTaskService(taskRepo)
	boardService := services.NewBoardService(boardRepo)

	settingsHandler := handlers.NewSettingsHandler(setting)
	userHandler := handlers.NewUserHandler(userRepo)
	memberHandler := handlers.NewMemberHandler(memberRepo)
	taskHandler := handlers.NewTaskHandler(taskService)
	boardHandler := handlers.NewBoardHandler(boardService)
	teamHandler := handlers.NewTeamHandler(teamRepo)

	r := gin.New()
	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(metrics.GinMiddleware)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	{
		api.GET("/settings", settingsHandler.GetSettings)

		api.PUT("/users", userHandler.UpsertUser)
		api.GET("/users/:email", userHandler.GetUser)
		api.DELETE("/users/:email", userHandler.DeleteUser)

		api.POST("/members", memberHandler.AddMember)
		api.GET("/members", memberHandler.ListMembers)
		api.PATCH("/members", memberHandler.SetOwnership)
		api.DELETE("/members", memberHandler.RemoveMember)

		api.DELETE("/teams/:team", teamHandler.DeleteTeam)

		api.POST("/tasks", taskHandler.CreateTask)
		api.GET("/tasks", taskHandler.ListTasks)
		api.PATCH("/tasks", taskHandler.UpdateTask)
		api.DELETE("/tasks", taskHandler.DeleteTask)

		boards := api.Group("/boards")
		{
			boards.GET("", boardHandler.LoadBoard)
			boards.POST("/columns", boardHandler.AddColumn)
			boards.PATCH("/columns", boardHandler.RecolorColumn)
			boards.DELETE("/columns", boardHandler.DeleteColumn)
			boards.POST("/cards", boardHandler.AddCard)
			boards.DELETE("/cards", boardHandler.DeleteCard)
		}
	}

	sugar.Infow("server starting", "addr", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		sugar.Fatalw("server stopped", "error", err)
	}
}
