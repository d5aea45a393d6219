package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Botz-Nithish/VitaSoft-Task-Management/internal/cache"
	"github.com/Botz-Nithish/VitaSoft-Task-Management/internal/config"
	"github.com/Botz-Nithish/VitaSoft-Task-Management/internal/database"
	"github.com/Botz-Nithish/VitaSoft-Task-Management/internal/monitoring"
	"github.com/Botz-Nithish/VitaSoft-Task-Management/internal/services"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.NewDatabasePool(database.PoolConfigFromAppConfig(cfg))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	monitoring.RegisterHealthCheck("database", func(ctx context.Context) error {
		return pool.Ping()
	})

	registerService := services.NewRegisterService(cfg.Auth.BCryptCost)
	authService := services.NewAuthService(cfg.Auth)

	var taskService services.TaskService = services.NewTaskService()
	if cfg.Cache.Enabled {
		redisCache := cache.NewRedisCache(cache.CacheConfigFromAppConfig(cfg))
		defer redisCache.Close()

		taskService = services.NewCachedTaskService(taskService, redisCache, cfg.Cache)
		monitoring.RegisterHealthCheck("redis", redisCache.Ping)
		log.Printf("Task cache enabled (redis %s)", cfg.GetRedisAddr())
	}

	router := NewRouter(cfg, pool.DB, registerService, authService, taskService)

	server := &http.Server{
		Addr:         cfg.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("Server listening on %s (environment=%s)", cfg.GetServerAddr(), cfg.Server.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}

	log.Println("Server stopped")
}
