package main

import (
	"github.com/Botz-Nithish/VitaSoft-Task-Management/internal/config"
	"github.com/Botz-Nithish/VitaSoft-Task-Management/internal/handlers"
	"github.com/Botz-Nithish/VitaSoft-Task-Management/internal/middleware"
	"github.com/Botz-Nithish/VitaSoft-Task-Management/internal/monitoring"
	"github.com/Botz-Nithish/VitaSoft-Task-Management/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter assembles the full middleware chain and route table. Handlers stay
// thin; everything above them (recovery, CORS, rate limiting, metrics, auth)
// is composed here.
func NewRouter(
	cfg *config.Config,
	db *gorm.DB,
	registerService services.RegisterService,
	authService services.AuthService,
	taskService services.TaskService,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RecoveryWithLog())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.Use(middleware.RateLimit(cfg.RateLimit))
	router.Use(monitoring.MetricsMiddleware())

	router.GET("/health", monitoring.HealthHandler())
	router.GET("/metrics", monitoring.MetricsHandler())

	registerHandler := handlers.NewRegisterHandler(db, registerService)
	authHandler := handlers.NewAuthHandler(db, authService)
	logoutHandler := handlers.NewLogoutHandler()
	taskHandler := handlers.NewTaskHandler(db, taskService)

	guard := middleware.AuthRequired(cfg.Auth)

	auth := router.Group("/auth")
	{
		auth.POST("/register", registerHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", guard, logoutHandler.Logout)
	}

	tasks := router.Group("/tasks", guard)
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("", taskHandler.GetTasks)
		tasks.GET("/types", taskHandler.GetTaskTypes)
		tasks.GET("/:id", taskHandler.GetTaskByID)
		tasks.PATCH("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}

	return router
}
